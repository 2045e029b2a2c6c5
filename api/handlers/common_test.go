package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gazeta-portal/core/store"
)

func TestFlashRoundTrip(t *testing.T) {
	rr := httptest.NewRecorder()
	Flash(rr, "Aviso publicado", "success")

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}

	rr2 := httptest.NewRecorder()
	msg := PopFlash(rr2, req)
	if msg == nil || msg.Message != "Aviso publicado" || msg.Category != "success" {
		t.Fatalf("flash = %+v", msg)
	}

	cleared := false
	for _, c := range rr2.Result().Cookies() {
		if c.Name == flashCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("flash cookie not cleared")
	}
}

func TestPopFlashWithoutCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if msg := PopFlash(httptest.NewRecorder(), req); msg != nil {
		t.Fatalf("expected nil, got %+v", msg)
	}
}

func TestPageTemplatesRenderLogin(t *testing.T) {
	var sb strings.Builder
	data := pageData{
		Title:    "Entrar",
		Settings: store.SiteSettings{PrimaryColor: "#0d6efd", AccentColor: "#6610f2", Tagline: "Painel interno do jornal escolar"},
	}
	if err := pageTemplates.ExecuteTemplate(&sb, "login.html", data); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(sb.String(), "Painel interno do jornal escolar") {
		t.Fatal("tagline missing from login page")
	}
}

func TestPageDataCanWithoutSession(t *testing.T) {
	var data pageData
	if data.Can("manage_settings") {
		t.Fatal("nil session must not grant permissions")
	}
}
