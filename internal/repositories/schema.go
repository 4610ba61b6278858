package repositories

import (
	"context"
	"database/sql"
)

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// hasColumn reports whether table.column exists in the current schema.
// Any lookup error counts as missing.
func hasColumn(ctx context.Context, q queryRower, table, column string) bool {
	var name sql.NullString
	err := q.QueryRowContext(ctx, `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		  AND column_name = ?
		LIMIT 1
	`, table, column).Scan(&name)
	if err != nil {
		return false
	}
	return name.Valid && name.String != ""
}

// optionalColumn selects column when present, otherwise an empty string.
func optionalColumn(ctx context.Context, q queryRower, table, column string) string {
	if hasColumn(ctx, q, table, column) {
		return "COALESCE(" + column + ",'')"
	}
	return "''"
}
