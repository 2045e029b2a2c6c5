package store

import (
	"context"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
)

const ticketsKey = "tickets"

// TicketsStore is the help desk thread model. Messages are append-only; only
// the creator and manage_tickets holders may interact, and a privileged reply
// on a closed ticket reopens it.
type TicketsStore interface {
	Open(ctx context.Context, t Ticket) (Ticket, error)
	Reply(ctx context.Context, id string, msg TicketMessage, canManage bool) error
	Close(ctx context.Context, id string, msg TicketMessage) error
	Delete(ctx context.Context, id string) error
	VisibleTo(ctx context.Context, username string, canManage bool) ([]Ticket, error)
	OpenCount(ctx context.Context) (int, error)
}

type ticketsStore struct {
	docs *Documents
}

func NewTicketsStore(docs *Documents) TicketsStore {
	return &ticketsStore{docs: docs}
}

func (s *ticketsStore) Open(ctx context.Context, t Ticket) (Ticket, error) {
	mu := s.docs.Lock(ticketsKey)
	mu.Lock()
	defer mu.Unlock()
	list := []Ticket{}
	if err := s.docs.Load(ctx, ticketsKey, &list); err != nil {
		return Ticket{}, err
	}
	t.ID = uuid.Must(uuid.NewV4()).String()
	t.Status = TicketOpen
	t.CreatedAt = Timestamp(time.Now())
	for i := range t.Messages {
		if t.Messages[i].Timestamp == "" {
			t.Messages[i].Timestamp = t.CreatedAt
		}
	}
	list = append(list, t)
	if err := s.docs.Save(ctx, ticketsKey, list); err != nil {
		return Ticket{}, err
	}
	return t, nil
}

func (s *ticketsStore) Reply(ctx context.Context, id string, msg TicketMessage, canManage bool) error {
	mu := s.docs.Lock(ticketsKey)
	mu.Lock()
	defer mu.Unlock()
	list := []Ticket{}
	if err := s.docs.Load(ctx, ticketsKey, &list); err != nil {
		return err
	}
	for i := range list {
		if list[i].ID != id {
			continue
		}
		if list[i].CreatedBy != msg.Author && !canManage {
			return ErrTicketDenied
		}
		if msg.Timestamp == "" {
			msg.Timestamp = Timestamp(time.Now())
		}
		list[i].Messages = append(list[i].Messages, msg)
		// A privileged reply reopens a closed thread; the creator's reply never
		// does.
		if list[i].Status == TicketClosed && canManage {
			list[i].Status = TicketOpen
		}
		return s.docs.Save(ctx, ticketsKey, list)
	}
	return ErrNotFound
}

func (s *ticketsStore) Close(ctx context.Context, id string, msg TicketMessage) error {
	mu := s.docs.Lock(ticketsKey)
	mu.Lock()
	defer mu.Unlock()
	list := []Ticket{}
	if err := s.docs.Load(ctx, ticketsKey, &list); err != nil {
		return err
	}
	for i := range list {
		if list[i].ID != id {
			continue
		}
		if msg.Body == "" {
			msg.Body = "Ticket fechado"
		}
		if msg.Timestamp == "" {
			msg.Timestamp = Timestamp(time.Now())
		}
		list[i].Status = TicketClosed
		list[i].Messages = append(list[i].Messages, msg)
		return s.docs.Save(ctx, ticketsKey, list)
	}
	return ErrNotFound
}

func (s *ticketsStore) Delete(ctx context.Context, id string) error {
	mu := s.docs.Lock(ticketsKey)
	mu.Lock()
	defer mu.Unlock()
	list := []Ticket{}
	if err := s.docs.Load(ctx, ticketsKey, &list); err != nil {
		return err
	}
	kept := list[:0]
	for _, t := range list {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	return s.docs.Save(ctx, ticketsKey, kept)
}

func (s *ticketsStore) VisibleTo(ctx context.Context, username string, canManage bool) ([]Ticket, error) {
	mu := s.docs.Lock(ticketsKey)
	mu.Lock()
	defer mu.Unlock()
	list := []Ticket{}
	if err := s.docs.Load(ctx, ticketsKey, &list); err != nil {
		return nil, err
	}
	visible := list
	if !canManage {
		visible = visible[:0]
		for _, t := range list {
			if t.CreatedBy == username {
				visible = append(visible, t)
			}
		}
	}
	sort.Slice(visible, func(i, j int) bool {
		return visible[i].CreatedAt > visible[j].CreatedAt
	})
	return visible, nil
}

func (s *ticketsStore) OpenCount(ctx context.Context) (int, error) {
	mu := s.docs.Lock(ticketsKey)
	mu.Lock()
	defer mu.Unlock()
	list := []Ticket{}
	if err := s.docs.Load(ctx, ticketsKey, &list); err != nil {
		return 0, err
	}
	n := 0
	for _, t := range list {
		if t.Status == TicketOpen {
			n++
		}
	}
	return n, nil
}
