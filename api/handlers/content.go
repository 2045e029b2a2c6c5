package handlers

import (
	"net/http"
	"strings"

	"gazeta-portal/core/store"
	"github.com/go-chi/chi/v5"
)

func (d *Deps) UpdateRules(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if err := d.Rules.Update(r.Context(), r.PostFormValue("content")); err != nil {
		d.fail(w, r, err, "Falha ao salvar as regras")
		return
	}
	d.done(w, r, "Manual de regras atualizado", "rules")
}

func (d *Deps) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	title := strings.TrimSpace(r.PostFormValue("title"))
	body := strings.TrimSpace(r.PostFormValue("body"))
	if title == "" || body == "" {
		Flash(w, "Título e mensagem são obrigatórios", "warning")
		http.Redirect(w, r, "/dashboard?tab=announcements", http.StatusSeeOther)
		return
	}
	_, err := d.Announcements.Create(r.Context(), store.Announcement{
		Title:    title,
		Body:     body,
		Audience: strings.TrimSpace(r.PostFormValue("audience")),
		Pinned:   r.PostFormValue("pinned") != "",
	})
	if err != nil {
		d.fail(w, r, err, "Falha ao publicar o aviso")
		return
	}
	d.done(w, r, "Mensagem publicada", "announcements")
}

func (d *Deps) RemoveAnnouncement(w http.ResponseWriter, r *http.Request) {
	if err := d.Announcements.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		d.fail(w, r, err, "Falha ao remover o aviso")
		return
	}
	Flash(w, "Mensagem removida", "info")
	http.Redirect(w, r, "/dashboard?tab=announcements", http.StatusSeeOther)
}

func (d *Deps) AddEvent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	title := strings.TrimSpace(r.PostFormValue("title"))
	date := strings.TrimSpace(r.PostFormValue("date"))
	if title == "" || date == "" {
		Flash(w, "Título e data são obrigatórios", "warning")
		http.Redirect(w, r, "/dashboard?tab=calendar", http.StatusSeeOther)
		return
	}
	_, err := d.Calendar.Add(r.Context(), store.Event{
		Title:        title,
		Date:         date,
		Category:     strings.TrimSpace(r.PostFormValue("category")),
		DepartmentID: strings.TrimSpace(r.PostFormValue("department_id")),
		Description:  strings.TrimSpace(r.PostFormValue("description")),
	})
	if err != nil {
		d.fail(w, r, err, "Falha ao agendar o evento")
		return
	}
	d.done(w, r, "Evento adicionado", "calendar")
}
