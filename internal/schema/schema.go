package schema

import (
	"context"
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Ensure applies the embedded SQL migrations. It is idempotent and safe to
// call on every process start; any failure is returned to the caller and
// must be treated as fatal (the service never runs with a partial schema).
func Ensure(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrationFiles)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, "migrations")
}
