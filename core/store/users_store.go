package store

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

const usersKey = "users"

// UsersStore holds the dynamic portal accounts. The static admin credential
// list lives in configuration and is never duplicated here.
type UsersStore interface {
	List(ctx context.Context) ([]User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	Create(ctx context.Context, u User) (User, error)
	SetRole(ctx context.Context, id, role string) error
	TogglePortal(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type usersStore struct {
	docs *Documents
}

func NewUsersStore(docs *Documents) UsersStore {
	return &usersStore{docs: docs}
}

func (s *usersStore) List(ctx context.Context) ([]User, error) {
	mu := s.docs.Lock(usersKey)
	mu.Lock()
	defer mu.Unlock()
	list := []User{}
	if err := s.docs.Load(ctx, usersKey, &list); err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool {
		return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
	})
	return list, nil
}

func (s *usersStore) FindByUsername(ctx context.Context, username string) (*User, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].Username == username {
			return &list[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *usersStore) Create(ctx context.Context, u User) (User, error) {
	mu := s.docs.Lock(usersKey)
	mu.Lock()
	defer mu.Unlock()
	list := []User{}
	if err := s.docs.Load(ctx, usersKey, &list); err != nil {
		return User{}, err
	}
	for _, existing := range list {
		if existing.Username == u.Username {
			return User{}, ErrConflict
		}
	}
	u.ID = uuid.Must(uuid.NewV4()).String()
	u.CreatedAt = Timestamp(time.Now())
	list = append(list, u)
	if err := s.docs.Save(ctx, usersKey, list); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *usersStore) SetRole(ctx context.Context, id, role string) error {
	mu := s.docs.Lock(usersKey)
	mu.Lock()
	defer mu.Unlock()
	list := []User{}
	if err := s.docs.Load(ctx, usersKey, &list); err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == id {
			list[i].Role = role
			return s.docs.Save(ctx, usersKey, list)
		}
	}
	return ErrNotFound
}

func (s *usersStore) TogglePortal(ctx context.Context, id string) error {
	mu := s.docs.Lock(usersKey)
	mu.Lock()
	defer mu.Unlock()
	list := []User{}
	if err := s.docs.Load(ctx, usersKey, &list); err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == id {
			list[i].PortalEnabled = !list[i].PortalEnabled
			return s.docs.Save(ctx, usersKey, list)
		}
	}
	return ErrNotFound
}

func (s *usersStore) Count(ctx context.Context) (int, error) {
	list, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(list), nil
}
