package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o subconjunto de operações de leitura e escrita que os
// repositórios enxergam da conexão
type Queryer interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (sql.Result, error)
	Query(ctx context.Context, sql string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) *sql.Row
}
