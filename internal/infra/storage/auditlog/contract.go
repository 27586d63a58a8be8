package auditlog

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс для работы с БД.
// Поддерживает *sql.DB и любую совместимую обёртку.
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}
