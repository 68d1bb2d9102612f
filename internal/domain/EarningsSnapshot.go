package domain

import (
	"time"
)

// EarningsSnapshot é o registro diário de receita persistido pelo
// sincronizador para consulta histórica.
type EarningsSnapshot struct {
	ID              int       `json:"id"`
	AccountKey      string    `json:"account_key"`
	Date            time.Time `json:"date"`
	EarningsMicros  int64     `json:"earnings_micros"`
	EarningsDisplay float64   `json:"earnings_display"`
	Clicks          int64     `json:"clicks"`
	Impressions     int64     `json:"impressions"`
	CTR             float64   `json:"ctr"`
	CPMDisplay      float64   `json:"cpm_display"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
