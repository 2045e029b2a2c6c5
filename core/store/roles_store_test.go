package store

import (
	"context"
	"testing"

	"gazeta-portal/core/rbac"
)

func TestEnsureSeedInstallsDefaults(t *testing.T) {
	s := NewRolesStore(newTestDocuments(t))
	ctx := context.Background()
	if err := s.EnsureSeed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 4 {
		t.Fatalf("expected 4 seed roles, got %d", len(list))
	}
	perms, _ := s.PermissionsOf(ctx, rbac.AdminRoleName)
	if len(perms) != 12 {
		t.Fatalf("Administrador must hold all 12 tokens, got %d", len(perms))
	}
}

func TestPermissionsOfAbsentRoleIsEmpty(t *testing.T) {
	s := NewRolesStore(newTestDocuments(t))
	perms, err := s.PermissionsOf(context.Background(), "Cargo Fantasma")
	if err != nil {
		t.Fatalf("permissionsOf: %v", err)
	}
	if len(perms) != 0 {
		t.Fatalf("absent role must yield empty set, got %v", perms)
	}
}

func TestCreateRoleConflict(t *testing.T) {
	s := NewRolesStore(newTestDocuments(t))
	ctx := context.Background()
	r := rbac.Role{Name: "Estagiário", Description: "Apoio geral"}
	if err := s.Create(ctx, r); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Create(ctx, r); err != ErrRoleExists {
		t.Fatalf("expected ErrRoleExists, got %v", err)
	}
}

func TestCreateRoleKeepsUnknownTokens(t *testing.T) {
	s := NewRolesStore(newTestDocuments(t))
	ctx := context.Background()
	err := s.Create(ctx, rbac.Role{
		Name:        "Revisor",
		Permissions: []rbac.Permission{rbac.PermManageAssets, "manage_tpyos"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	perms, _ := s.PermissionsOf(ctx, "Revisor")
	if len(perms) != 2 {
		t.Fatalf("unknown token dropped: %v", perms)
	}
	all, _ := s.AllPermissions(ctx)
	found := false
	for _, p := range all {
		if p == "manage_tpyos" {
			found = true
		}
	}
	if !found {
		t.Fatal("AllPermissions must include the stored unknown token")
	}
}

func TestEnsureSeedIsIdempotentAndBackfills(t *testing.T) {
	docs := newTestDocuments(t)
	s := NewRolesStore(docs)
	ctx := context.Background()

	// Simulate an old roles document missing manage_tickets on Gerente.
	old := []rbac.Role{{Name: "Gerente", Permissions: []rbac.Permission{rbac.PermManageAssets}}}
	if err := docs.Save(ctx, rolesKey, old); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.EnsureSeed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	list, _ := s.List(ctx)
	if len(list) != 1 {
		t.Fatalf("seed must not replace an existing document, got %d roles", len(list))
	}
	if !list[0].Has(rbac.PermManageTickets) {
		t.Fatal("Gerente must be backfilled with manage_tickets")
	}
}
