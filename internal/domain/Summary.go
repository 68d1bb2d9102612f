package domain

// SummaryEntry é o resultado de uma conta dentro do resumo geral.
// Quando a resolução falha, Earnings fica nulo, Error traz a mensagem
// e ErrorKind classifica a falha (UPSTREAM ou TIMEOUT).
type SummaryEntry struct {
	AccountKey  string          `json:"account_key"`
	DisplayName string          `json:"display_name"`
	Status      AccountStatus   `json:"status"`
	Earnings    *EarningsResult `json:"earnings,omitempty"`
	Error       string          `json:"error,omitempty"`
	ErrorKind   string          `json:"error_kind,omitempty"`
}

// Summary é o resumo de receita de todas as contas em uma data
type Summary struct {
	Date                 string          `json:"date"`
	Entries              []*SummaryEntry `json:"entries"`
	TotalEarningsDisplay float64         `json:"total_earnings_display"`
	TotalEarningsMicros  int64           `json:"total_earnings_micros"`
	TotalClicks          int64           `json:"total_clicks"`
	TotalImpressions     int64           `json:"total_impressions"`
	AccountCount         int             `json:"account_count"`
	FailedCount          int             `json:"failed_count"`
}
