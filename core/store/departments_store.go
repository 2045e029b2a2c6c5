package store

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

const departmentsKey = "departments"

// DepartmentsStore owns the membership queue state machine. Queue entries move
// from pendente to aprovado or rejeitado exactly once; deciding anything else
// is a named no-op. Duplicate queue ids are a data-integrity precondition
// violation and only the first match is ever considered.
type DepartmentsStore interface {
	List(ctx context.Context) ([]Department, error)
	Find(ctx context.Context, id string) (*Department, error)
	FindByJoinToken(ctx context.Context, token string) (*Department, error)
	Create(ctx context.Context, d Department) (Department, error)
	SubmitRequest(ctx context.Context, joinToken string, req QueueRequest) (QueueRequest, error)
	DecideQueue(ctx context.Context, deptID, queueID, action, decidedBy string) error
	AddMember(ctx context.Context, deptID string, m Member) error
	PendingCount(ctx context.Context) (int, error)
	Count(ctx context.Context) (int, error)
}

const (
	QueueApprove = "approve"
	QueueReject  = "reject"
)

type departmentsStore struct {
	docs *Documents
}

func NewDepartmentsStore(docs *Documents) DepartmentsStore {
	return &departmentsStore{docs: docs}
}

func (s *departmentsStore) List(ctx context.Context) ([]Department, error) {
	mu := s.docs.Lock(departmentsKey)
	mu.Lock()
	defer mu.Unlock()
	list := []Department{}
	if err := s.docs.Load(ctx, departmentsKey, &list); err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool {
		return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
	})
	return list, nil
}

func (s *departmentsStore) Find(ctx context.Context, id string) (*Department, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *departmentsStore) FindByJoinToken(ctx context.Context, token string) (*Department, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].JoinToken == token {
			return &list[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *departmentsStore) Create(ctx context.Context, d Department) (Department, error) {
	mu := s.docs.Lock(departmentsKey)
	mu.Lock()
	defer mu.Unlock()
	list := []Department{}
	if err := s.docs.Load(ctx, departmentsKey, &list); err != nil {
		return Department{}, err
	}
	d.ID = uuid.Must(uuid.NewV4()).String()
	d.JoinToken = uuid.Must(uuid.NewV4()).String()
	if d.Members == nil {
		d.Members = []Member{}
	}
	if d.Queue == nil {
		d.Queue = []QueueRequest{}
	}
	list = append(list, d)
	if err := s.docs.Save(ctx, departmentsKey, list); err != nil {
		return Department{}, err
	}
	return d, nil
}

// SubmitRequest is the public capability entry point: anyone holding the join
// token may append a pendente request. No rate limiting, no duplicate check.
func (s *departmentsStore) SubmitRequest(ctx context.Context, joinToken string, req QueueRequest) (QueueRequest, error) {
	mu := s.docs.Lock(departmentsKey)
	mu.Lock()
	defer mu.Unlock()
	list := []Department{}
	if err := s.docs.Load(ctx, departmentsKey, &list); err != nil {
		return QueueRequest{}, err
	}
	for i := range list {
		if list[i].JoinToken != joinToken {
			continue
		}
		req.ID = uuid.Must(uuid.NewV4()).String()
		req.Status = StatusPending
		req.DecidedBy = ""
		req.DecidedAt = ""
		req.CreatedAt = Timestamp(time.Now())
		list[i].Queue = append(list[i].Queue, req)
		if err := s.docs.Save(ctx, departmentsKey, list); err != nil {
			return QueueRequest{}, err
		}
		return req, nil
	}
	return QueueRequest{}, ErrNotFound
}

func (s *departmentsStore) DecideQueue(ctx context.Context, deptID, queueID, action, decidedBy string) error {
	mu := s.docs.Lock(departmentsKey)
	mu.Lock()
	defer mu.Unlock()
	list := []Department{}
	if err := s.docs.Load(ctx, departmentsKey, &list); err != nil {
		return err
	}
	var dept *Department
	for i := range list {
		if list[i].ID == deptID {
			dept = &list[i]
			break
		}
	}
	if dept == nil {
		return ErrNotFound
	}
	for i := range dept.Queue {
		entry := &dept.Queue[i]
		if entry.ID != queueID || entry.Status != StatusPending {
			continue
		}
		now := Timestamp(time.Now())
		switch action {
		case QueueApprove:
			entry.Status = StatusApproved
			entry.DecidedAt = now
			entry.DecidedBy = decidedBy
			dept.Members = append(dept.Members, Member{
				Name:     entry.Name,
				Role:     entry.DesiredRole,
				JoinedAt: now,
			})
		case QueueReject:
			entry.Status = StatusRejected
			entry.DecidedAt = now
			entry.DecidedBy = decidedBy
		default:
			// Unknown action: the entry stays pendente, the document unchanged.
			return nil
		}
		return s.docs.Save(ctx, departmentsKey, list)
	}
	return ErrQueueEntryNotPending
}

func (s *departmentsStore) AddMember(ctx context.Context, deptID string, m Member) error {
	mu := s.docs.Lock(departmentsKey)
	mu.Lock()
	defer mu.Unlock()
	list := []Department{}
	if err := s.docs.Load(ctx, departmentsKey, &list); err != nil {
		return err
	}
	for i := range list {
		if list[i].ID != deptID {
			continue
		}
		m.JoinedAt = Timestamp(time.Now())
		list[i].Members = append(list[i].Members, m)
		return s.docs.Save(ctx, departmentsKey, list)
	}
	return ErrNotFound
}

func (s *departmentsStore) PendingCount(ctx context.Context) (int, error) {
	list, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, d := range list {
		for _, req := range d.Queue {
			if req.Status == StatusPending {
				n++
			}
		}
	}
	return n, nil
}

func (s *departmentsStore) Count(ctx context.Context) (int, error) {
	list, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(list), nil
}
