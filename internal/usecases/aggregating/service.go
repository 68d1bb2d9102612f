package aggregating

import (
	"sort"
	"strings"
	"time"

	"github.com/Myudi422/backend-adsense/internal/domain"
	"github.com/Myudi422/backend-adsense/pkg/utils"
)

// UnattributedDomain é o balde das métricas sem domínio identificado
const UnattributedDomain = "(unattributed)"

const microsPerDisplayUnit = 1000

// Aggregator agrupa métricas brutas por domínio
type Aggregator interface {
	Aggregate(accountKey string, startDate, endDate time.Time, domainFilter string, rows []domain.MetricRow) *domain.DomainReport
}

type Service struct{}

func NewService() Aggregator {
	return &Service{}
}

// Aggregate agrupa as linhas por domínio, calcula as métricas derivadas
// e ordena por receita decrescente. Os totais do relatório cobrem todas
// as linhas recebidas, mesmo quando um filtro de domínio é aplicado.
func (s *Service) Aggregate(accountKey string, startDate, endDate time.Time, domainFilter string, rows []domain.MetricRow) *domain.DomainReport {
	report := &domain.DomainReport{
		AccountKey:   accountKey,
		StartDate:    startDate.Format(time.DateOnly),
		EndDate:      endDate.Format(time.DateOnly),
		DomainFilter: domainFilter,
		Domains:      make([]*domain.DomainBreakdown, 0),
	}

	grouped := make(map[string]*domain.DomainBreakdown)

	for _, row := range rows {
		name := row.Domain
		if name == "" {
			name = UnattributedDomain
		}

		report.TotalEarningsMicros += row.EarningsMicros
		report.TotalClicks += row.Clicks
		report.TotalImpressions += row.Impressions

		if !matchesDomain(name, domainFilter) {
			continue
		}

		breakdown, ok := grouped[name]
		if !ok {
			breakdown = &domain.DomainBreakdown{Domain: name}
			grouped[name] = breakdown
		}

		breakdown.EarningsMicros += row.EarningsMicros
		breakdown.Clicks += row.Clicks
		breakdown.Impressions += row.Impressions
	}

	for _, breakdown := range grouped {
		earningsDisplay := float64(breakdown.EarningsMicros) / microsPerDisplayUnit
		breakdown.EarningsDisplay = utils.RoundMoney(earningsDisplay)

		if breakdown.Impressions > 0 {
			breakdown.CTR = utils.RoundWithTwoDecimalPlace(float64(breakdown.Clicks) / float64(breakdown.Impressions) * 100)
			breakdown.CPMDisplay = utils.RoundWithTwoDecimalPlace(earningsDisplay / float64(breakdown.Impressions) * 1000)
		}

		report.Domains = append(report.Domains, breakdown)
	}

	// Receita decrescente; domínio como desempate estável
	sort.Slice(report.Domains, func(i, j int) bool {
		if report.Domains[i].EarningsMicros != report.Domains[j].EarningsMicros {
			return report.Domains[i].EarningsMicros > report.Domains[j].EarningsMicros
		}
		return report.Domains[i].Domain < report.Domains[j].Domain
	})

	report.TotalEarningsDisplay = utils.RoundMoney(float64(report.TotalEarningsMicros) / microsPerDisplayUnit)

	return report
}

// matchesDomain aceita o próprio domínio ou qualquer subdomínio dele.
// Filtro vazio aceita tudo.
func matchesDomain(name, filter string) bool {
	if filter == "" {
		return true
	}

	if name == filter {
		return true
	}

	return strings.HasSuffix(name, "."+filter)
}
