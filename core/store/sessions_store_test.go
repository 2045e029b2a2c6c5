package store

import (
	"context"
	"testing"
	"time"

	"gazeta-portal/core/rbac"
)

func TestSessionRoundTrip(t *testing.T) {
	s := NewSessionsStore(newTestDB(t))
	ctx := context.Background()
	sr := &SessionRecord{
		ID:          "sess-1",
		Username:    "ana",
		Role:        "Gerente",
		Permissions: []rbac.Permission{rbac.PermManageAssets, rbac.PermManageTickets},
		ExpiresAt:   time.Now().Add(time.Hour),
	}
	if err := s.SaveSession(ctx, sr); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.GetSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Username != "ana" || got.Role != "Gerente" {
		t.Fatalf("unexpected session: %+v", got)
	}
	if !got.Has(rbac.PermManageTickets) || got.Has(rbac.PermManageRoles) {
		t.Fatalf("permission snapshot wrong: %v", got.Permissions)
	}
}

func TestExpiredSessionIsGone(t *testing.T) {
	s := NewSessionsStore(newTestDB(t))
	ctx := context.Background()
	sr := &SessionRecord{ID: "sess-2", Username: "ana", Role: "Gerente", ExpiresAt: time.Now().Add(-time.Minute)}
	if err := s.SaveSession(ctx, sr); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.GetSession(ctx, "sess-2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatal("expired session must be treated as absent")
	}
}

func TestDeleteExpired(t *testing.T) {
	s := NewSessionsStore(newTestDB(t))
	ctx := context.Background()
	_ = s.SaveSession(ctx, &SessionRecord{ID: "old", Username: "a", Role: "r", ExpiresAt: time.Now().Add(-time.Hour)})
	_ = s.SaveSession(ctx, &SessionRecord{ID: "new", Username: "b", Role: "r", ExpiresAt: time.Now().Add(time.Hour)})

	n, err := s.DeleteExpired(ctx, time.Now())
	if err != nil {
		t.Fatalf("delete expired: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 purged session, got %d", n)
	}
	if got, _ := s.GetSession(ctx, "new"); got == nil {
		t.Fatal("live session purged")
	}
}
