package store

import (
	"context"
	"testing"
)

func TestJournalCreateAndTokenDecide(t *testing.T) {
	s := NewJournalsStore(newTestDocuments(t))
	ctx := context.Background()

	j, err := s.Create(ctx, Journal{Title: "Edição 12", Edition: "12", ReleaseDate: "2026-04-01"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if j.Status != StatusPending || j.ApprovalToken == "" {
		t.Fatalf("new journal must be pendente with a token: %+v", j)
	}

	found, err := s.FindByApprovalToken(ctx, j.ApprovalToken)
	if err != nil || found.ID != j.ID {
		t.Fatalf("token lookup failed: %v %+v", err, found)
	}

	if err := s.DecideByToken(ctx, j.ApprovalToken, "reject", "Faltam fotos"); err != nil {
		t.Fatalf("reject: %v", err)
	}
	found, _ = s.FindByApprovalToken(ctx, j.ApprovalToken)
	if found.Status != StatusRejected || found.ApprovalReason == nil || *found.ApprovalReason != "Faltam fotos" {
		t.Fatalf("reject not recorded: %+v", found)
	}

	if err := s.DecideByToken(ctx, j.ApprovalToken, "approve", ""); err != nil {
		t.Fatalf("approve: %v", err)
	}
	found, _ = s.FindByApprovalToken(ctx, j.ApprovalToken)
	if found.Status != StatusApproved || found.ApprovalReason != nil {
		t.Fatalf("approve must clear the reason: %+v", found)
	}
}

func TestDecideByUnknownToken(t *testing.T) {
	s := NewJournalsStore(newTestDocuments(t))
	if err := s.DecideByToken(context.Background(), "token-errado", "approve", ""); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRejectWithoutReasonGetsDefault(t *testing.T) {
	s := NewJournalsStore(newTestDocuments(t))
	ctx := context.Background()
	j, _ := s.Create(ctx, Journal{Title: "Edição 13"})
	if err := s.DecideByToken(ctx, j.ApprovalToken, "reject", ""); err != nil {
		t.Fatalf("reject: %v", err)
	}
	found, _ := s.FindByApprovalToken(ctx, j.ApprovalToken)
	if found.ApprovalReason == nil || *found.ApprovalReason != "Sem justificativa" {
		t.Fatalf("default reason missing: %+v", found)
	}
}
