package handlers

import (
	"net/http"
	"strings"

	"gazeta-portal/core/store"
	"github.com/go-chi/chi/v5"
	"github.com/skip2/go-qrcode"
)

func (d *Deps) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	name := strings.TrimSpace(r.PostFormValue("name"))
	if name == "" {
		Flash(w, "Informe o nome do departamento", "warning")
		http.Redirect(w, r, "/dashboard?tab=departments", http.StatusSeeOther)
		return
	}
	_, err := d.Departments.Create(r.Context(), store.Department{
		Name:        name,
		Description: strings.TrimSpace(r.PostFormValue("description")),
		Director:    strings.TrimSpace(r.PostFormValue("director")),
	})
	if err != nil {
		d.fail(w, r, err, "Falha ao criar o departamento")
		return
	}
	d.done(w, r, "Departamento criado", "departments")
}

// DecideQueue resolves one pending membership request. The action rides the
// URL (approve or reject); anything else is a stored no-op.
func (d *Deps) DecideQueue(w http.ResponseWriter, r *http.Request) {
	sess := Session(r)
	err := d.Departments.DecideQueue(r.Context(),
		chi.URLParam(r, "id"), chi.URLParam(r, "queueID"), chi.URLParam(r, "action"), sess.Username)
	switch err {
	case nil:
		Flash(w, "Fila atualizada", "info")
		http.Redirect(w, r, "/dashboard?tab=departments", http.StatusSeeOther)
	case store.ErrQueueEntryNotPending:
		Flash(w, "Este pedido já foi decidido", "warning")
		http.Redirect(w, r, "/dashboard?tab=departments", http.StatusSeeOther)
	case store.ErrNotFound:
		Flash(w, "Departamento não encontrado", "danger")
		http.Redirect(w, r, "/dashboard?tab=departments", http.StatusSeeOther)
	default:
		d.fail(w, r, err, "Falha ao decidir o pedido")
	}
}

func (d *Deps) AddMember(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	m := store.Member{
		Name: strings.TrimSpace(r.PostFormValue("name")),
		Role: strings.TrimSpace(r.PostFormValue("role")),
	}
	if m.Name == "" {
		Flash(w, "Informe o nome do membro", "warning")
		http.Redirect(w, r, "/dashboard?tab=departments", http.StatusSeeOther)
		return
	}
	if err := d.Departments.AddMember(r.Context(), chi.URLParam(r, "id"), m); err != nil {
		if err == store.ErrNotFound {
			Flash(w, "Departamento não encontrado", "danger")
			http.Redirect(w, r, "/dashboard?tab=departments", http.StatusSeeOther)
			return
		}
		d.fail(w, r, err, "Falha ao adicionar o membro")
		return
	}
	d.done(w, r, "Membro adicionado", "departments")
}

// JoinQR renders the department's public apply link as a PNG for printing.
func (d *Deps) JoinQR(w http.ResponseWriter, r *http.Request) {
	dept, err := d.Departments.Find(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	link := d.Cfg.BaseURL() + "/departments/apply/" + dept.JoinToken
	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		d.fail(w, r, err, "Falha ao gerar o QR")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(png); err != nil && d.Logger != nil {
		d.Logger.Errorf("qr write: %v", err)
	}
}
