package bootstrap

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"gazeta-portal/config"
	"gazeta-portal/core/store"
	"gazeta-portal/core/utils"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	cfg := &config.AppConfig{DBDriver: "sqlite", DBPath: filepath.Join(t.TempDir(), "test.db")}
	logger := utils.NewLogger()
	db, err := store.NewDB(cfg, logger)
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := store.ApplyMigrations(context.Background(), db, "sqlite", logger); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	return db
}

func TestEnsureSeedDataFreshInstall(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := EnsureSeedData(ctx, db, utils.NewLogger()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	docs := store.NewDocuments(db)
	roles, err := store.NewRolesStore(docs).List(ctx)
	if err != nil {
		t.Fatalf("roles: %v", err)
	}
	if len(roles) != 4 {
		t.Fatalf("expected 4 seed roles, got %d", len(roles))
	}

	depts, err := store.NewDepartmentsStore(docs).List(ctx)
	if err != nil {
		t.Fatalf("departments: %v", err)
	}
	if len(depts) != 1 || depts[0].Name != "Redação" {
		t.Fatalf("seed department missing: %+v", depts)
	}
	if depts[0].JoinToken == "" {
		t.Fatal("seed department has no join token")
	}

	settings, err := store.NewSettingsStore(docs).Get(ctx)
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	if settings.PrimaryColor != "#0d6efd" || settings.OnboardingDone {
		t.Fatalf("settings not at defaults: %+v", settings)
	}
}

func TestEnsureSeedDataIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := EnsureSeedData(ctx, db, nil); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := EnsureSeedData(ctx, db, nil); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	docs := store.NewDocuments(db)
	depts, err := store.NewDepartmentsStore(docs).List(ctx)
	if err != nil {
		t.Fatalf("departments: %v", err)
	}
	if len(depts) != 1 {
		t.Fatalf("seed department duplicated: %d", len(depts))
	}
}
