package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Myudi422/backend-adsense/infrastructure/database/postgres"
	"github.com/Myudi422/backend-adsense/internal/domain"
)

const (
	earningsSnapshotsTable = "earnings_snapshots es"
)

type EarningsSnapshotRepository interface {
	GetByAccountKeyAndDate(ctx context.Context, accountKey string, date time.Time) (*domain.EarningsSnapshot, error)
	GetByDateRange(ctx context.Context, accountKey string, startDate, endDate time.Time) ([]*domain.EarningsSnapshot, error)
	SaveOrUpdate(ctx context.Context, snapshot *domain.EarningsSnapshot) error
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type earningsSnapshotRepository struct {
	conn postgres.Conn
}

func NewEarningsSnapshotRepository(conn postgres.Conn) EarningsSnapshotRepository {
	return &earningsSnapshotRepository{
		conn: conn,
	}
}

const snapshotColumns = "es.id, es.account_key, es.date, es.earnings_micros, es.earnings_display, es.clicks, es.impressions, es.ctr, es.cpm_display, es.created_at, es.updated_at"

func (r *earningsSnapshotRepository) GetByAccountKeyAndDate(ctx context.Context, accountKey string, date time.Time) (*domain.EarningsSnapshot, error) {
	query, args, err := squirrel.
		Select(snapshotColumns).
		From(earningsSnapshotsTable).
		Where(squirrel.Eq{"es.account_key": accountKey, "es.date": date.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(ctx, query, args...)
	snapshot, err := r.scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return snapshot, nil
}

func (r *earningsSnapshotRepository) GetByDateRange(ctx context.Context, accountKey string, startDate, endDate time.Time) ([]*domain.EarningsSnapshot, error) {
	query, args, err := squirrel.
		Select(snapshotColumns).
		From(earningsSnapshotsTable).
		Where(squirrel.Eq{"es.account_key": accountKey}).
		Where(squirrel.GtOrEq{"es.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"es.date": endDate.Format("2006-01-02")}).
		OrderBy("es.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.EarningsSnapshot, 0)
	for rows.Next() {
		snapshot, err := r.scanSnapshotRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshots: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *earningsSnapshotRepository) SaveOrUpdate(ctx context.Context, snapshot *domain.EarningsSnapshot) error {
	query := squirrel.StatementBuilder.
		Insert("earnings_snapshots").
		Columns("account_key", "date", "earnings_micros", "earnings_display", "clicks", "impressions", "ctr", "cpm_display").
		Values(
			snapshot.AccountKey,
			snapshot.Date.Format("2006-01-02"),
			snapshot.EarningsMicros,
			snapshot.EarningsDisplay,
			snapshot.Clicks,
			snapshot.Impressions,
			snapshot.CTR,
			snapshot.CPMDisplay,
		).
		Suffix(`
			ON CONFLICT (account_key, date) DO UPDATE SET
				earnings_micros = EXCLUDED.earnings_micros,
				earnings_display = EXCLUDED.earnings_display,
				clicks = EXCLUDED.clicks,
				impressions = EXCLUDED.impressions,
				ctr = EXCLUDED.ctr,
				cpm_display = EXCLUDED.cpm_display,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(ctx, sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *earningsSnapshotRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("earnings_snapshots").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *earningsSnapshotRepository) scanSnapshot(row *sql.Row) (*domain.EarningsSnapshot, error) {
	snapshot := &domain.EarningsSnapshot{}
	var dateStr string

	err := row.Scan(
		&snapshot.ID,
		&snapshot.AccountKey,
		&dateStr,
		&snapshot.EarningsMicros,
		&snapshot.EarningsDisplay,
		&snapshot.Clicks,
		&snapshot.Impressions,
		&snapshot.CTR,
		&snapshot.CPMDisplay,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", dateStr[:10])
	if err != nil {
		return nil, fmt.Errorf("data inválida no banco: %w", err)
	}
	snapshot.Date = date

	return snapshot, nil
}

func (r *earningsSnapshotRepository) scanSnapshotRows(rows *sql.Rows) (*domain.EarningsSnapshot, error) {
	snapshot := &domain.EarningsSnapshot{}
	var dateStr string

	err := rows.Scan(
		&snapshot.ID,
		&snapshot.AccountKey,
		&dateStr,
		&snapshot.EarningsMicros,
		&snapshot.EarningsDisplay,
		&snapshot.Clicks,
		&snapshot.Impressions,
		&snapshot.CTR,
		&snapshot.CPMDisplay,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", dateStr[:10])
	if err != nil {
		return nil, fmt.Errorf("data inválida no banco: %w", err)
	}
	snapshot.Date = date

	return snapshot, nil
}
