package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"gazeta-portal/core/utils"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ApplyMigrations brings the schema up to date. The schema is shared between
// postgres and sqlite, so the dialect only affects goose bookkeeping.
func ApplyMigrations(ctx context.Context, db *sql.DB, dialect string, logger *utils.Logger) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	gooseDialect := "sqlite3"
	switch dialect {
	case "postgres", "pg":
		gooseDialect = "postgres"
	}
	if err := goose.SetDialect(gooseDialect); err != nil {
		return err
	}
	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return err
	}
	if logger != nil {
		logger.Printf("migrations applied dialect=%s", gooseDialect)
	}
	return nil
}
