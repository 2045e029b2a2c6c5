package handlers

import (
	"net/http"
	"strings"

	"gazeta-portal/core/store"
	"github.com/go-chi/chi/v5"
)

func (d *Deps) CreateStudent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	name := strings.TrimSpace(r.PostFormValue("name"))
	if name == "" {
		Flash(w, "Informe o nome do integrante", "warning")
		http.Redirect(w, r, "/dashboard?tab=students", http.StatusSeeOther)
		return
	}
	_, err := d.Students.Create(r.Context(), store.Student{
		Name:          name,
		Role:          strings.TrimSpace(r.PostFormValue("role")),
		Contact:       strings.TrimSpace(r.PostFormValue("contact")),
		Notes:         strings.TrimSpace(r.PostFormValue("notes")),
		PortalEnabled: r.PostFormValue("portal_enabled") != "",
	})
	if err != nil {
		d.fail(w, r, err, "Falha ao cadastrar a ficha")
		return
	}
	d.done(w, r, "Ficha de participante criada", "students")
}

func (d *Deps) ToggleStudentPortal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := d.Students.TogglePortal(r.Context(), id); err != nil {
		if err == store.ErrNotFound {
			Flash(w, "Ficha não encontrada", "warning")
			http.Redirect(w, r, "/dashboard?tab=students", http.StatusSeeOther)
			return
		}
		d.fail(w, r, err, "Falha ao atualizar a ficha")
		return
	}
	Flash(w, "Permissão de portal atualizada", "info")
	http.Redirect(w, r, "/dashboard?tab=students", http.StatusSeeOther)
}
