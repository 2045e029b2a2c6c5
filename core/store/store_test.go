package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"gazeta-portal/config"
	"gazeta-portal/core/utils"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	cfg := &config.AppConfig{DBDriver: "sqlite", DBPath: filepath.Join(t.TempDir(), "test.db")}
	logger := utils.NewLogger()
	db, err := NewDB(cfg, logger)
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := ApplyMigrations(context.Background(), db, "sqlite", logger); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	return db
}

func newTestDocuments(t *testing.T) *Documents {
	t.Helper()
	return NewDocuments(newTestDB(t))
}

func TestDocumentsRoundTrip(t *testing.T) {
	docs := newTestDocuments(t)
	ctx := context.Background()

	in := []Announcement{{ID: "1", Title: "Edição de abril", Audience: "todos"}}
	if err := docs.Save(ctx, "announcements", in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out := []Announcement{}
	if err := docs.Load(ctx, "announcements", &out); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 1 || out[0] != in[0] {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestDocumentsLoadCreatesDefault(t *testing.T) {
	docs := newTestDocuments(t)
	ctx := context.Background()

	def := Rules{Content: "texto inicial"}
	got := def
	if err := docs.Load(ctx, "rules", &got); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Content != "texto inicial" {
		t.Fatalf("default not kept: %+v", got)
	}

	// The default must now be persisted.
	var again Rules
	if err := docs.Load(ctx, "rules", &again); err != nil {
		t.Fatalf("second load: %v", err)
	}
	if again.Content != "texto inicial" {
		t.Fatalf("default not persisted: %+v", again)
	}
}
