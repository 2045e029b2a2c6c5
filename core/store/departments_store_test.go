package store

import (
	"context"
	"testing"
)

func newDepartment(t *testing.T, s DepartmentsStore) Department {
	t.Helper()
	dept, err := s.Create(context.Background(), Department{
		Name:        "Fotografia",
		Description: "Cobertura fotográfica",
		Director:    "Marina",
	})
	if err != nil {
		t.Fatalf("create department: %v", err)
	}
	if dept.ID == "" || dept.JoinToken == "" {
		t.Fatalf("department missing generated ids: %+v", dept)
	}
	return dept
}

func TestJoinFlowApprove(t *testing.T) {
	s := NewDepartmentsStore(newTestDocuments(t))
	ctx := context.Background()
	dept := newDepartment(t, s)

	req, err := s.SubmitRequest(ctx, dept.JoinToken, QueueRequest{
		Name:        "Ana",
		Contact:     "ana@example.com",
		DesiredRole: "Fotógrafa",
		Motivation:  "Quero cobrir os jogos",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if req.Status != StatusPending {
		t.Fatalf("new request must be pendente, got %s", req.Status)
	}

	if err := s.DecideQueue(ctx, dept.ID, req.ID, QueueApprove, "diretor"); err != nil {
		t.Fatalf("decide: %v", err)
	}

	got, err := s.Find(ctx, dept.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.Queue[0].Status != StatusApproved {
		t.Fatalf("expected aprovado, got %s", got.Queue[0].Status)
	}
	if got.Queue[0].DecidedBy != "diretor" || got.Queue[0].DecidedAt == "" {
		t.Fatalf("decision metadata missing: %+v", got.Queue[0])
	}
	if len(got.Members) != 1 {
		t.Fatalf("approval must append exactly one member, got %d", len(got.Members))
	}
	if got.Members[0].Name != "Ana" || got.Members[0].Role != "Fotógrafa" {
		t.Fatalf("member not built from request: %+v", got.Members[0])
	}
}

func TestRejectAppendsNoMember(t *testing.T) {
	s := NewDepartmentsStore(newTestDocuments(t))
	ctx := context.Background()
	dept := newDepartment(t, s)

	req, err := s.SubmitRequest(ctx, dept.JoinToken, QueueRequest{Name: "Bruno"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := s.DecideQueue(ctx, dept.ID, req.ID, QueueReject, "diretor"); err != nil {
		t.Fatalf("decide: %v", err)
	}
	got, _ := s.Find(ctx, dept.ID)
	if got.Queue[0].Status != StatusRejected {
		t.Fatalf("expected rejeitado, got %s", got.Queue[0].Status)
	}
	if len(got.Members) != 0 {
		t.Fatalf("reject must not append members, got %d", len(got.Members))
	}
}

func TestDecideIsTerminal(t *testing.T) {
	s := NewDepartmentsStore(newTestDocuments(t))
	ctx := context.Background()
	dept := newDepartment(t, s)

	req, _ := s.SubmitRequest(ctx, dept.JoinToken, QueueRequest{Name: "Carla", DesiredRole: "Revisora"})
	if err := s.DecideQueue(ctx, dept.ID, req.ID, QueueApprove, "diretor"); err != nil {
		t.Fatalf("first decide: %v", err)
	}

	// Re-deciding a decided entry is the named no-op; the document is unchanged.
	if err := s.DecideQueue(ctx, dept.ID, req.ID, QueueReject, "outro"); err != ErrQueueEntryNotPending {
		t.Fatalf("expected ErrQueueEntryNotPending, got %v", err)
	}
	got, _ := s.Find(ctx, dept.ID)
	if got.Queue[0].Status != StatusApproved || got.Queue[0].DecidedBy != "diretor" {
		t.Fatalf("terminal state mutated: %+v", got.Queue[0])
	}
	if len(got.Members) != 1 {
		t.Fatalf("second decision must not touch members, got %d", len(got.Members))
	}
}

func TestDecideUnknownTargets(t *testing.T) {
	s := NewDepartmentsStore(newTestDocuments(t))
	ctx := context.Background()
	dept := newDepartment(t, s)

	if err := s.DecideQueue(ctx, "nope", "q1", QueueApprove, "x"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for missing department, got %v", err)
	}
	if err := s.DecideQueue(ctx, dept.ID, "nope", QueueApprove, "x"); err != ErrQueueEntryNotPending {
		t.Fatalf("expected ErrQueueEntryNotPending for missing entry, got %v", err)
	}
}

func TestSubmitWithBadToken(t *testing.T) {
	s := NewDepartmentsStore(newTestDocuments(t))
	newDepartment(t, s)
	if _, err := s.SubmitRequest(context.Background(), "token-invalido", QueueRequest{Name: "Zé"}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddMemberDirectly(t *testing.T) {
	s := NewDepartmentsStore(newTestDocuments(t))
	ctx := context.Background()
	dept := newDepartment(t, s)

	if err := s.AddMember(ctx, dept.ID, Member{Name: "Duda", Role: "Editora"}); err != nil {
		t.Fatalf("add member: %v", err)
	}
	got, _ := s.Find(ctx, dept.ID)
	if len(got.Members) != 1 || got.Members[0].JoinedAt == "" {
		t.Fatalf("member not recorded: %+v", got.Members)
	}
}

func TestPendingCount(t *testing.T) {
	s := NewDepartmentsStore(newTestDocuments(t))
	ctx := context.Background()
	dept := newDepartment(t, s)

	a, _ := s.SubmitRequest(ctx, dept.JoinToken, QueueRequest{Name: "A"})
	_, _ = s.SubmitRequest(ctx, dept.JoinToken, QueueRequest{Name: "B"})
	_ = s.DecideQueue(ctx, dept.ID, a.ID, QueueReject, "diretor")

	n, err := s.PendingCount(ctx)
	if err != nil {
		t.Fatalf("pending count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 pending, got %d", n)
	}
}
