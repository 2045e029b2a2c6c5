package auth

import (
	"context"
	"path/filepath"
	"testing"

	"gazeta-portal/config"
	"gazeta-portal/core/rbac"
	"gazeta-portal/core/store"
	"gazeta-portal/core/utils"
)

func newTestEnv(t *testing.T) (*config.AppConfig, store.UsersStore, store.RolesStore) {
	t.Helper()
	cfg := &config.AppConfig{
		DBDriver: "sqlite",
		DBPath:   filepath.Join(t.TempDir(), "auth.db"),
		Pepper:   "pimenta",
		AdminUsers: []config.AdminUser{
			{Username: "diretoria", Password: "senha-mestra"},
		},
	}
	logger := utils.NewLogger()
	db, err := store.NewDB(cfg, logger)
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := store.ApplyMigrations(context.Background(), db, "sqlite", logger); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	docs := store.NewDocuments(db)
	roles := store.NewRolesStore(docs)
	if err := roles.EnsureSeed(context.Background()); err != nil {
		t.Fatalf("seed roles: %v", err)
	}
	return cfg, store.NewUsersStore(docs), roles
}

func createUser(t *testing.T, cfg *config.AppConfig, users store.UsersStore, username, password, role string, enabled bool) {
	t.Helper()
	ph, err := HashPassword(password, cfg.Pepper)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	_, err = users.Create(context.Background(), store.User{
		Name:          username,
		Username:      username,
		Role:          role,
		PasswordHash:  ph.Hash,
		PasswordSalt:  ph.Salt,
		PortalEnabled: enabled,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
}

func TestStaticAdminLogin(t *testing.T) {
	cfg, users, roles := newTestEnv(t)
	r := NewResolver(cfg, users, roles)

	p, err := r.Authenticate(context.Background(), "diretoria", "senha-mestra")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if p.Role != rbac.AdminRoleName {
		t.Fatalf("static account must get Administrador, got %s", p.Role)
	}
	if !p.Has(rbac.PermManageRoles) || !p.Has(rbac.PermManageTickets) {
		t.Fatalf("admin permission snapshot incomplete: %v", p.Permissions)
	}
}

func TestAuthenticateIsIdempotent(t *testing.T) {
	cfg, users, roles := newTestEnv(t)
	createUser(t, cfg, users, "ana", "senha-da-ana", "Gerente", true)
	r := NewResolver(cfg, users, roles)
	ctx := context.Background()

	first, err := r.Authenticate(ctx, "ana", "senha-da-ana")
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	second, err := r.Authenticate(ctx, "ana", "senha-da-ana")
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	if first.Role != second.Role || len(first.Permissions) != len(second.Permissions) {
		t.Fatalf("snapshots differ: %+v vs %+v", first, second)
	}
}

func TestDisabledUserDenied(t *testing.T) {
	cfg, users, roles := newTestEnv(t)
	createUser(t, cfg, users, "bob", "senha-do-bob", "Colaborador", false)
	r := NewResolver(cfg, users, roles)

	if _, err := r.Authenticate(context.Background(), "bob", "senha-do-bob"); err != ErrDenied {
		t.Fatalf("disabled user with correct password must be denied, got %v", err)
	}
}

func TestWrongPasswordDenied(t *testing.T) {
	cfg, users, roles := newTestEnv(t)
	createUser(t, cfg, users, "ana", "senha-da-ana", "Gerente", true)
	r := NewResolver(cfg, users, roles)

	if _, err := r.Authenticate(context.Background(), "ana", "senha-errada"); err != ErrDenied {
		t.Fatalf("expected ErrDenied, got %v", err)
	}
	if _, err := r.Authenticate(context.Background(), "ninguem", "tanto-faz"); err != ErrDenied {
		t.Fatalf("expected ErrDenied for unknown user, got %v", err)
	}
}

func TestSnapshotReflectsRoleAtLoginOnly(t *testing.T) {
	cfg, users, roles := newTestEnv(t)
	createUser(t, cfg, users, "ana", "senha-da-ana", "Colaborador", true)
	r := NewResolver(cfg, users, roles)
	ctx := context.Background()

	before, err := r.Authenticate(ctx, "ana", "senha-da-ana")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if before.Has(rbac.PermManageTickets) {
		t.Fatal("Colaborador must start without manage_tickets")
	}

	u, _ := users.FindByUsername(ctx, "ana")
	if err := users.SetRole(ctx, u.ID, "Gerente"); err != nil {
		t.Fatalf("set role: %v", err)
	}
	// The old principal is untouched; only a fresh login picks up the new role.
	if before.Has(rbac.PermManageTickets) {
		t.Fatal("existing snapshot must not change")
	}
	after, err := r.Authenticate(ctx, "ana", "senha-da-ana")
	if err != nil {
		t.Fatalf("relogin: %v", err)
	}
	if !after.Has(rbac.PermManageTickets) {
		t.Fatal("fresh login must see the new role")
	}
}
