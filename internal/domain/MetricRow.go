package domain

import (
	"time"
)

// MetricRow é uma linha bruta do relatório de receita.
// Os valores monetários chegam em micros, onde 1000 micros
// equivalem a uma unidade da moeda de exibição.
type MetricRow struct {
	Date           time.Time `json:"date"`
	Domain         string    `json:"domain"`
	EarningsMicros int64     `json:"earnings_micros"`
	Clicks         int64     `json:"clicks"`
	Impressions    int64     `json:"impressions"`
}

func (m MetricRow) IsZero() bool {
	return m.EarningsMicros == 0 && m.Clicks == 0 && m.Impressions == 0
}
