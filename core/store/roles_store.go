package store

import (
	"context"
	"sort"
	"strings"

	"gazeta-portal/core/rbac"
)

const rolesKey = "roles"

// RolesStore is the role registry: the source of truth for authorization.
// Create accepts any permission token verbatim; unknown tokens are inert.
type RolesStore interface {
	List(ctx context.Context) ([]rbac.Role, error)
	FindByName(ctx context.Context, name string) (*rbac.Role, error)
	PermissionsOf(ctx context.Context, name string) ([]rbac.Permission, error)
	AllPermissions(ctx context.Context) ([]rbac.Permission, error)
	Create(ctx context.Context, r rbac.Role) error
	// EnsureSeed installs the default roles when the document is empty and
	// backfills manage_tickets on the built-in staff roles.
	EnsureSeed(ctx context.Context) error
}

type rolesStore struct {
	docs *Documents
}

func NewRolesStore(docs *Documents) RolesStore {
	return &rolesStore{docs: docs}
}

func (s *rolesStore) List(ctx context.Context) ([]rbac.Role, error) {
	mu := s.docs.Lock(rolesKey)
	mu.Lock()
	defer mu.Unlock()
	return s.load(ctx)
}

func (s *rolesStore) load(ctx context.Context) ([]rbac.Role, error) {
	list := []rbac.Role{}
	if err := s.docs.Load(ctx, rolesKey, &list); err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool {
		return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
	})
	return list, nil
}

func (s *rolesStore) FindByName(ctx context.Context, name string) (*rbac.Role, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].Name == name {
			return &list[i], nil
		}
	}
	return nil, nil
}

func (s *rolesStore) PermissionsOf(ctx context.Context, name string) ([]rbac.Permission, error) {
	r, err := s.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return []rbac.Permission{}, nil
	}
	return r.Permissions, nil
}

func (s *rolesStore) AllPermissions(ctx context.Context) ([]rbac.Permission, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return rbac.Union(list), nil
}

func (s *rolesStore) Create(ctx context.Context, r rbac.Role) error {
	mu := s.docs.Lock(rolesKey)
	mu.Lock()
	defer mu.Unlock()
	list, err := s.load(ctx)
	if err != nil {
		return err
	}
	for _, existing := range list {
		if existing.Name == r.Name {
			return ErrRoleExists
		}
	}
	if r.Permissions == nil {
		r.Permissions = []rbac.Permission{}
	}
	list = append(list, r)
	return s.docs.Save(ctx, rolesKey, list)
}

func (s *rolesStore) EnsureSeed(ctx context.Context) error {
	mu := s.docs.Lock(rolesKey)
	mu.Lock()
	defer mu.Unlock()
	list := []rbac.Role{}
	if err := s.docs.Load(ctx, rolesKey, &list); err != nil {
		return err
	}
	changed := false
	if len(list) == 0 {
		list = rbac.DefaultRoles()
		changed = true
	}
	if rbac.EnsureTicketPermission(list) {
		changed = true
	}
	if !changed {
		return nil
	}
	return s.docs.Save(ctx, rolesKey, list)
}
