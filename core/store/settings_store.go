package store

import (
	"context"
)

const settingsKey = "site_settings"

func DefaultWidgets() []Widget {
	return []Widget{
		{
			ID:       "welcome",
			Title:    "Boas-vindas",
			Enabled:  true,
			Type:     "text",
			Subtitle: "Orientação rápida",
			Content:  "Use as guias para organizar o jornal e mantenha as permissões em dia.",
		},
		{
			ID:       "students",
			Title:    "Equipe ativa",
			Enabled:  true,
			Type:     "metric",
			Subtitle: "Fichas cadastradas",
		},
		{
			ID:       "tickets",
			Title:    "Tickets abertos",
			Enabled:  true,
			Type:     "metric",
			Subtitle: "Chamados aguardando resposta",
		},
		{
			ID:       "agenda",
			Title:    "Próximo evento",
			Enabled:  true,
			Type:     "event",
			Subtitle: "Calendário geral",
		},
		{
			ID:       "departments",
			Title:    "Filas de departamentos",
			Enabled:  true,
			Type:     "metric",
			Subtitle: "Pedidos para aprovar",
		},
	}
}

func defaultSettings() SiteSettings {
	return SiteSettings{
		LogoURL:      "",
		PrimaryColor: "#0d6efd",
		AccentColor:  "#6610f2",
		Tagline:      "Painel interno do jornal escolar",
		Widgets:      DefaultWidgets(),
	}
}

type SettingsStore interface {
	Get(ctx context.Context) (SiteSettings, error)
	UpdateVisual(ctx context.Context, logoURL, primary, accent, tagline string) error
	// NormalizeWidgets merges stored widgets with the defaults by id, appends
	// missing defaults, persists the result and returns it.
	NormalizeWidgets(ctx context.Context) ([]Widget, error)
	SaveWidgets(ctx context.Context, widgets []Widget) error
	CompleteOnboarding(ctx context.Context) error
}

type settingsStore struct {
	docs *Documents
}

func NewSettingsStore(docs *Documents) SettingsStore {
	return &settingsStore{docs: docs}
}

func (s *settingsStore) Get(ctx context.Context) (SiteSettings, error) {
	mu := s.docs.Lock(settingsKey)
	mu.Lock()
	defer mu.Unlock()
	return s.load(ctx)
}

func (s *settingsStore) load(ctx context.Context) (SiteSettings, error) {
	set := defaultSettings()
	if err := s.docs.Load(ctx, settingsKey, &set); err != nil {
		return SiteSettings{}, err
	}
	if set.Widgets == nil {
		set.Widgets = DefaultWidgets()
	}
	return set, nil
}

func (s *settingsStore) UpdateVisual(ctx context.Context, logoURL, primary, accent, tagline string) error {
	mu := s.docs.Lock(settingsKey)
	mu.Lock()
	defer mu.Unlock()
	set, err := s.load(ctx)
	if err != nil {
		return err
	}
	set.LogoURL = logoURL
	if primary == "" {
		primary = "#0d6efd"
	}
	if accent == "" {
		accent = "#6610f2"
	}
	set.PrimaryColor = primary
	set.AccentColor = accent
	if tagline != "" {
		set.Tagline = tagline
	}
	return s.docs.Save(ctx, settingsKey, set)
}

func (s *settingsStore) NormalizeWidgets(ctx context.Context) ([]Widget, error) {
	mu := s.docs.Lock(settingsKey)
	mu.Lock()
	defer mu.Unlock()
	set, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	defaults := DefaultWidgets()
	defaultByID := map[string]Widget{}
	for _, w := range defaults {
		defaultByID[w.ID] = w
	}
	normalized := []Widget{}
	seen := map[string]struct{}{}
	for _, w := range set.Widgets {
		if w.ID == "" {
			continue
		}
		merged := w
		if def, ok := defaultByID[w.ID]; ok {
			if merged.Type == "" {
				merged.Type = def.Type
			}
			if merged.Title == "" {
				merged.Title = def.Title
			}
			if merged.Subtitle == "" {
				merged.Subtitle = def.Subtitle
			}
			if merged.Content == "" {
				merged.Content = def.Content
			}
		}
		normalized = append(normalized, merged)
		seen[w.ID] = struct{}{}
	}
	for _, def := range defaults {
		if _, ok := seen[def.ID]; !ok {
			normalized = append(normalized, def)
		}
	}
	set.Widgets = normalized
	if err := s.docs.Save(ctx, settingsKey, set); err != nil {
		return nil, err
	}
	return normalized, nil
}

func (s *settingsStore) SaveWidgets(ctx context.Context, widgets []Widget) error {
	mu := s.docs.Lock(settingsKey)
	mu.Lock()
	defer mu.Unlock()
	set, err := s.load(ctx)
	if err != nil {
		return err
	}
	set.Widgets = widgets
	return s.docs.Save(ctx, settingsKey, set)
}

func (s *settingsStore) CompleteOnboarding(ctx context.Context) error {
	mu := s.docs.Lock(settingsKey)
	mu.Lock()
	defer mu.Unlock()
	set, err := s.load(ctx)
	if err != nil {
		return err
	}
	set.OnboardingDone = true
	return s.docs.Save(ctx, settingsKey, set)
}
