package store

import (
	"context"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
)

const (
	rulesKey         = "rules"
	announcementsKey = "announcements"
	calendarKey      = "calendar"
)

const defaultRulesText = "Defina aqui as regras de convivência do jornal."

type RulesStore interface {
	Get(ctx context.Context) (Rules, error)
	Update(ctx context.Context, content string) error
}

type rulesStore struct {
	docs *Documents
}

func NewRulesStore(docs *Documents) RulesStore {
	return &rulesStore{docs: docs}
}

func (s *rulesStore) Get(ctx context.Context) (Rules, error) {
	mu := s.docs.Lock(rulesKey)
	mu.Lock()
	defer mu.Unlock()
	r := Rules{Content: defaultRulesText}
	if err := s.docs.Load(ctx, rulesKey, &r); err != nil {
		return Rules{}, err
	}
	return r, nil
}

func (s *rulesStore) Update(ctx context.Context, content string) error {
	mu := s.docs.Lock(rulesKey)
	mu.Lock()
	defer mu.Unlock()
	r := Rules{Content: defaultRulesText}
	if err := s.docs.Load(ctx, rulesKey, &r); err != nil {
		return err
	}
	now := Timestamp(time.Now())
	r.Content = content
	r.UpdatedAt = &now
	return s.docs.Save(ctx, rulesKey, r)
}

type AnnouncementsStore interface {
	List(ctx context.Context) ([]Announcement, error)
	Create(ctx context.Context, a Announcement) (Announcement, error)
	Remove(ctx context.Context, id string) error
}

type announcementsStore struct {
	docs *Documents
}

func NewAnnouncementsStore(docs *Documents) AnnouncementsStore {
	return &announcementsStore{docs: docs}
}

func (s *announcementsStore) List(ctx context.Context) ([]Announcement, error) {
	mu := s.docs.Lock(announcementsKey)
	mu.Lock()
	defer mu.Unlock()
	list := []Announcement{}
	if err := s.docs.Load(ctx, announcementsKey, &list); err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt > list[j].CreatedAt
	})
	return list, nil
}

func (s *announcementsStore) Create(ctx context.Context, a Announcement) (Announcement, error) {
	mu := s.docs.Lock(announcementsKey)
	mu.Lock()
	defer mu.Unlock()
	list := []Announcement{}
	if err := s.docs.Load(ctx, announcementsKey, &list); err != nil {
		return Announcement{}, err
	}
	a.ID = uuid.Must(uuid.NewV4()).String()
	if a.Audience == "" {
		a.Audience = "todos"
	}
	a.CreatedAt = Timestamp(time.Now())
	list = append(list, a)
	if err := s.docs.Save(ctx, announcementsKey, list); err != nil {
		return Announcement{}, err
	}
	return a, nil
}

func (s *announcementsStore) Remove(ctx context.Context, id string) error {
	mu := s.docs.Lock(announcementsKey)
	mu.Lock()
	defer mu.Unlock()
	list := []Announcement{}
	if err := s.docs.Load(ctx, announcementsKey, &list); err != nil {
		return err
	}
	kept := list[:0]
	for _, a := range list {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	return s.docs.Save(ctx, announcementsKey, kept)
}

type CalendarStore interface {
	List(ctx context.Context) ([]Event, error)
	Add(ctx context.Context, e Event) (Event, error)
	// NextEvent returns the earliest event by date, or nil when the calendar is
	// empty.
	NextEvent(ctx context.Context) (*Event, error)
}

type calendarStore struct {
	docs *Documents
}

func NewCalendarStore(docs *Documents) CalendarStore {
	return &calendarStore{docs: docs}
}

func (s *calendarStore) List(ctx context.Context) ([]Event, error) {
	mu := s.docs.Lock(calendarKey)
	mu.Lock()
	defer mu.Unlock()
	list := []Event{}
	if err := s.docs.Load(ctx, calendarKey, &list); err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Date < list[j].Date
	})
	return list, nil
}

func (s *calendarStore) Add(ctx context.Context, e Event) (Event, error) {
	mu := s.docs.Lock(calendarKey)
	mu.Lock()
	defer mu.Unlock()
	list := []Event{}
	if err := s.docs.Load(ctx, calendarKey, &list); err != nil {
		return Event{}, err
	}
	e.ID = uuid.Must(uuid.NewV4()).String()
	if e.Category == "" {
		e.Category = "geral"
	}
	list = append(list, e)
	if err := s.docs.Save(ctx, calendarKey, list); err != nil {
		return Event{}, err
	}
	return e, nil
}

func (s *calendarStore) NextEvent(ctx context.Context) (*Event, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	// Undated events sort last here even though the ascending list puts them
	// first; an event with no date is never "next".
	const farFuture = "9999-12-31"
	next := list[0]
	for _, e := range list[1:] {
		cur, cand := next.Date, e.Date
		if cur == "" {
			cur = farFuture
		}
		if cand == "" {
			cand = farFuture
		}
		if cand < cur {
			next = e
		}
	}
	return &next, nil
}
