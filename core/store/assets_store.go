package store

import (
	"context"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
)

const assetsKey = "assets"

type AssetsStore interface {
	List(ctx context.Context) ([]Asset, error)
	Create(ctx context.Context, a Asset) (Asset, error)
}

type assetsStore struct {
	docs *Documents
}

func NewAssetsStore(docs *Documents) AssetsStore {
	return &assetsStore{docs: docs}
}

func (s *assetsStore) List(ctx context.Context) ([]Asset, error) {
	mu := s.docs.Lock(assetsKey)
	mu.Lock()
	defer mu.Unlock()
	list := []Asset{}
	if err := s.docs.Load(ctx, assetsKey, &list); err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].Scope == "" {
			list[i].Scope = ScopePersonal
		}
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].UploadedAt > list[j].UploadedAt
	})
	return list, nil
}

func (s *assetsStore) Create(ctx context.Context, a Asset) (Asset, error) {
	mu := s.docs.Lock(assetsKey)
	mu.Lock()
	defer mu.Unlock()
	list := []Asset{}
	if err := s.docs.Load(ctx, assetsKey, &list); err != nil {
		return Asset{}, err
	}
	a.ID = uuid.Must(uuid.NewV4()).String()
	if a.Scope == "" {
		if a.DepartmentID != "" {
			a.Scope = ScopeDepartment
		} else {
			a.Scope = ScopePersonal
		}
	}
	a.UploadedAt = Timestamp(time.Now())
	list = append(list, a)
	if err := s.docs.Save(ctx, assetsKey, list); err != nil {
		return Asset{}, err
	}
	return a, nil
}
