package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Myudi422/backend-adsense/internal/domain"
)

func row(domainName string, earningsMicros, clicks, impressions int64) domain.MetricRow {
	return domain.MetricRow{
		Domain:         domainName,
		EarningsMicros: earningsMicros,
		Clicks:         clicks,
		Impressions:    impressions,
	}
}

func TestService_Aggregate(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 7, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		rows     []domain.MetricRow
		filter   string
		validate func(t *testing.T, report *domain.DomainReport)
	}{
		{
			name: "Agrupa por domínio e ordena por receita decrescente",
			rows: []domain.MetricRow{
				row("blog.example.com", 1000, 5, 100),
				row("example.com", 5000, 10, 200),
				row("blog.example.com", 2000, 5, 100),
				row("other.net", 3000, 2, 50),
			},
			validate: func(t *testing.T, report *domain.DomainReport) {
				require.Len(t, report.Domains, 3)
				assert.Equal(t, "example.com", report.Domains[0].Domain)
				assert.Equal(t, "blog.example.com", report.Domains[1].Domain)
				assert.Equal(t, "other.net", report.Domains[2].Domain)

				// As duas linhas de blog.example.com foram somadas
				assert.Equal(t, int64(3000), report.Domains[1].EarningsMicros)
				assert.Equal(t, int64(10), report.Domains[1].Clicks)
				assert.Equal(t, int64(200), report.Domains[1].Impressions)
			},
		},
		{
			name: "Totais batem com a soma dos domínios",
			rows: []domain.MetricRow{
				row("a.com", 1111, 1, 10),
				row("b.com", 2222, 2, 20),
				row("", 3333, 3, 30),
			},
			validate: func(t *testing.T, report *domain.DomainReport) {
				var sumMicros, sumClicks, sumImpressions int64
				for _, d := range report.Domains {
					sumMicros += d.EarningsMicros
					sumClicks += d.Clicks
					sumImpressions += d.Impressions
				}

				assert.Equal(t, report.TotalEarningsMicros, sumMicros)
				assert.Equal(t, report.TotalClicks, sumClicks)
				assert.Equal(t, report.TotalImpressions, sumImpressions)

				// A soma dos valores de exibição fica a no máximo um
				// centavo por domínio do total arredondado
				var sumDisplay float64
				for _, d := range report.Domains {
					sumDisplay += d.EarningsDisplay
				}
				assert.InDelta(t, report.TotalEarningsDisplay, sumDisplay, 0.01*float64(len(report.Domains)))
			},
		},
		{
			name: "Linhas sem domínio caem no balde de não atribuídos",
			rows: []domain.MetricRow{
				row("", 1500, 1, 10),
				row("example.com", 1000, 1, 10),
			},
			validate: func(t *testing.T, report *domain.DomainReport) {
				require.Len(t, report.Domains, 2)
				assert.Equal(t, UnattributedDomain, report.Domains[0].Domain)
				assert.Equal(t, int64(1500), report.Domains[0].EarningsMicros)
			},
		},
		{
			name: "Filtro aceita o domínio exato e subdomínios",
			rows: []domain.MetricRow{
				row("example.com", 1000, 1, 10),
				row("blog.example.com", 2000, 2, 20),
				row("notexample.com", 3000, 3, 30),
				row("example.com.br", 4000, 4, 40),
			},
			filter: "example.com",
			validate: func(t *testing.T, report *domain.DomainReport) {
				require.Len(t, report.Domains, 2)
				assert.Equal(t, "blog.example.com", report.Domains[0].Domain)
				assert.Equal(t, "example.com", report.Domains[1].Domain)

				// Os totais continuam cobrindo todas as linhas
				assert.Equal(t, int64(10000), report.TotalEarningsMicros)
			},
		},
		{
			name: "Domínio sem impressões zera as métricas derivadas",
			rows: []domain.MetricRow{
				row("example.com", 1000, 0, 0),
			},
			validate: func(t *testing.T, report *domain.DomainReport) {
				require.Len(t, report.Domains, 1)
				assert.Equal(t, 0.0, report.Domains[0].CTR)
				assert.Equal(t, 0.0, report.Domains[0].CPMDisplay)
				assert.Equal(t, 1.0, report.Domains[0].EarningsDisplay)
			},
		},
		{
			name: "Empate de receita desempata pelo nome do domínio",
			rows: []domain.MetricRow{
				row("zeta.com", 1000, 1, 10),
				row("alpha.com", 1000, 1, 10),
			},
			validate: func(t *testing.T, report *domain.DomainReport) {
				require.Len(t, report.Domains, 2)
				assert.Equal(t, "alpha.com", report.Domains[0].Domain)
				assert.Equal(t, "zeta.com", report.Domains[1].Domain)
			},
		},
		{
			name: "Sem linhas retorna relatório vazio",
			rows: nil,
			validate: func(t *testing.T, report *domain.DomainReport) {
				assert.Empty(t, report.Domains)
				assert.Equal(t, 0.0, report.TotalEarningsDisplay)
				assert.Equal(t, "2024-01-01", report.StartDate)
				assert.Equal(t, "2024-01-07", report.EndDate)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService()

			report := service.Aggregate("acc1", start, end, tt.filter, tt.rows)
			require.NotNil(t, report)
			assert.Equal(t, "acc1", report.AccountKey)

			tt.validate(t, report)
		})
	}
}
