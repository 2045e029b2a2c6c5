package store

import (
	"context"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
)

const journalsKey = "journals"

// JournalsStore holds issue records. A fresh issue carries an unguessable
// approval token; whoever holds the token's URL may decide the issue without
// logging in.
type JournalsStore interface {
	List(ctx context.Context) ([]Journal, error)
	Create(ctx context.Context, j Journal) (Journal, error)
	FindByApprovalToken(ctx context.Context, token string) (*Journal, error)
	DecideByToken(ctx context.Context, token, action, reason string) error
}

type journalsStore struct {
	docs *Documents
}

func NewJournalsStore(docs *Documents) JournalsStore {
	return &journalsStore{docs: docs}
}

func (s *journalsStore) List(ctx context.Context) ([]Journal, error) {
	mu := s.docs.Lock(journalsKey)
	mu.Lock()
	defer mu.Unlock()
	list := []Journal{}
	if err := s.docs.Load(ctx, journalsKey, &list); err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].ReleaseDate > list[j].ReleaseDate
	})
	return list, nil
}

func (s *journalsStore) Create(ctx context.Context, j Journal) (Journal, error) {
	mu := s.docs.Lock(journalsKey)
	mu.Lock()
	defer mu.Unlock()
	list := []Journal{}
	if err := s.docs.Load(ctx, journalsKey, &list); err != nil {
		return Journal{}, err
	}
	j.ID = uuid.Must(uuid.NewV4()).String()
	j.ApprovalToken = uuid.Must(uuid.NewV4()).String()
	j.Status = StatusPending
	j.ApprovalReason = nil
	j.CreatedAt = Timestamp(time.Now())
	list = append(list, j)
	if err := s.docs.Save(ctx, journalsKey, list); err != nil {
		return Journal{}, err
	}
	return j, nil
}

func (s *journalsStore) FindByApprovalToken(ctx context.Context, token string) (*Journal, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ApprovalToken == token {
			return &list[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *journalsStore) DecideByToken(ctx context.Context, token, action, reason string) error {
	mu := s.docs.Lock(journalsKey)
	mu.Lock()
	defer mu.Unlock()
	list := []Journal{}
	if err := s.docs.Load(ctx, journalsKey, &list); err != nil {
		return err
	}
	for i := range list {
		if list[i].ApprovalToken != token {
			continue
		}
		switch action {
		case "approve":
			list[i].Status = StatusApproved
			list[i].ApprovalReason = nil
		case "reject":
			if reason == "" {
				reason = "Sem justificativa"
			}
			list[i].Status = StatusRejected
			list[i].ApprovalReason = &reason
		default:
			// Unknown action leaves the record as-is, matching the form contract.
			return nil
		}
		return s.docs.Save(ctx, journalsKey, list)
	}
	return ErrNotFound
}
