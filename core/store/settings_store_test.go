package store

import (
	"context"
	"testing"
)

func TestSettingsDefaults(t *testing.T) {
	s := NewSettingsStore(newTestDocuments(t))
	set, err := s.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if set.PrimaryColor != "#0d6efd" || set.AccentColor != "#6610f2" {
		t.Fatalf("default colors wrong: %+v", set)
	}
	if set.OnboardingDone {
		t.Fatal("fresh install must need onboarding")
	}
	if len(set.Widgets) != 5 {
		t.Fatalf("expected 5 default widgets, got %d", len(set.Widgets))
	}
}

func TestNormalizeWidgetsMergesAndAppends(t *testing.T) {
	s := NewSettingsStore(newTestDocuments(t))
	ctx := context.Background()

	// Stored config only knows two widgets, one renamed, one with a stray empty id.
	err := s.SaveWidgets(ctx, []Widget{
		{ID: "tickets", Title: "Chamados", Enabled: false},
		{ID: ""},
		{ID: "agenda", Enabled: true},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	widgets, err := s.NormalizeWidgets(ctx)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if len(widgets) != 5 {
		t.Fatalf("expected 5 widgets after normalization, got %d", len(widgets))
	}
	if widgets[0].ID != "tickets" || widgets[0].Title != "Chamados" || widgets[0].Enabled {
		t.Fatalf("stored override lost: %+v", widgets[0])
	}
	if widgets[0].Type != "metric" {
		t.Fatalf("default type not merged: %+v", widgets[0])
	}
	if widgets[1].ID != "agenda" || widgets[1].Title != "Próximo evento" {
		t.Fatalf("agenda defaults not merged: %+v", widgets[1])
	}
	// Missing defaults are appended in default order.
	rest := []string{widgets[2].ID, widgets[3].ID, widgets[4].ID}
	want := []string{"welcome", "students", "departments"}
	for i := range want {
		if rest[i] != want[i] {
			t.Fatalf("missing defaults appended wrong: %v", rest)
		}
	}
}

func TestUpdateVisualAndOnboarding(t *testing.T) {
	s := NewSettingsStore(newTestDocuments(t))
	ctx := context.Background()
	if err := s.UpdateVisual(ctx, "https://cdn/logo.png", "#111111", "", "O jornal da escola"); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := s.CompleteOnboarding(ctx); err != nil {
		t.Fatalf("onboarding: %v", err)
	}
	set, _ := s.Get(ctx)
	if set.LogoURL != "https://cdn/logo.png" || set.PrimaryColor != "#111111" {
		t.Fatalf("visual settings lost: %+v", set)
	}
	if set.AccentColor != "#6610f2" {
		t.Fatalf("empty accent must fall back to default: %s", set.AccentColor)
	}
	if set.Tagline != "O jornal da escola" || !set.OnboardingDone {
		t.Fatalf("settings wrong: %+v", set)
	}
}
