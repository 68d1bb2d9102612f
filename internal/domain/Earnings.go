package domain

// EarningsResult é o resultado consolidado de um dia de receita de uma conta.
// DataAgeDays indica quantos dias atrás está o dado em relação à data pedida.
type EarningsResult struct {
	AccountKey      string  `json:"account_key"`
	Date            string  `json:"date"`
	EarningsDisplay float64 `json:"earnings_display"`
	EarningsMicros  int64   `json:"earnings_micros"`
	Clicks          int64   `json:"clicks"`
	Impressions     int64   `json:"impressions"`
	CTR             float64 `json:"ctr"`
	CPMDisplay      float64 `json:"cpm_display"`
	DataAgeDays     int     `json:"data_age_days"`
	Note            string  `json:"note,omitempty"`
}

// DomainBreakdown é a receita de um domínio dentro de um período
type DomainBreakdown struct {
	Domain          string  `json:"domain"`
	EarningsDisplay float64 `json:"earnings_display"`
	EarningsMicros  int64   `json:"earnings_micros"`
	Clicks          int64   `json:"clicks"`
	Impressions     int64   `json:"impressions"`
	CTR             float64 `json:"ctr"`
	CPMDisplay      float64 `json:"cpm_display"`
}

// DomainReport agrupa a receita por domínio de uma conta em um período
type DomainReport struct {
	AccountKey           string             `json:"account_key"`
	StartDate            string             `json:"start_date"`
	EndDate              string             `json:"end_date"`
	DomainFilter         string             `json:"domain_filter,omitempty"`
	Domains              []*DomainBreakdown `json:"domains"`
	TotalEarningsDisplay float64            `json:"total_earnings_display"`
	TotalEarningsMicros  int64              `json:"total_earnings_micros"`
	TotalClicks          int64              `json:"total_clicks"`
	TotalImpressions     int64              `json:"total_impressions"`
}
