package store

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

const studentsKey = "students"

// StudentsStore keeps the staff record sheets ("fichas"). These are editorial
// records, separate from portal user accounts.
type StudentsStore interface {
	List(ctx context.Context) ([]Student, error)
	Create(ctx context.Context, s Student) (Student, error)
	TogglePortal(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type studentsStore struct {
	docs *Documents
}

func NewStudentsStore(docs *Documents) StudentsStore {
	return &studentsStore{docs: docs}
}

func (s *studentsStore) List(ctx context.Context) ([]Student, error) {
	mu := s.docs.Lock(studentsKey)
	mu.Lock()
	defer mu.Unlock()
	list := []Student{}
	if err := s.docs.Load(ctx, studentsKey, &list); err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool {
		return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
	})
	return list, nil
}

func (s *studentsStore) Create(ctx context.Context, st Student) (Student, error) {
	mu := s.docs.Lock(studentsKey)
	mu.Lock()
	defer mu.Unlock()
	list := []Student{}
	if err := s.docs.Load(ctx, studentsKey, &list); err != nil {
		return Student{}, err
	}
	st.ID = uuid.Must(uuid.NewV4()).String()
	st.CreatedAt = Timestamp(time.Now())
	list = append(list, st)
	if err := s.docs.Save(ctx, studentsKey, list); err != nil {
		return Student{}, err
	}
	return st, nil
}

func (s *studentsStore) TogglePortal(ctx context.Context, id string) error {
	mu := s.docs.Lock(studentsKey)
	mu.Lock()
	defer mu.Unlock()
	list := []Student{}
	if err := s.docs.Load(ctx, studentsKey, &list); err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == id {
			list[i].PortalEnabled = !list[i].PortalEnabled
			return s.docs.Save(ctx, studentsKey, list)
		}
	}
	return ErrNotFound
}

func (s *studentsStore) Count(ctx context.Context) (int, error) {
	list, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(list), nil
}
