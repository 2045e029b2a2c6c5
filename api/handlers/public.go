package handlers

import (
	"net/http"
	"strings"

	"gazeta-portal/core/store"
	"github.com/go-chi/chi/v5"
)

// The token routes are capability URLs: whoever holds the link may act, no
// session required. Unknown tokens bounce to the login page with a notice.

func (d *Deps) ApplyPage(w http.ResponseWriter, r *http.Request) {
	dept, err := d.Departments.FindByJoinToken(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		Flash(w, "Link de inscrição inválido", "danger")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	d.render(w, r, "apply.html", "Ingresso", dept)
}

func (d *Deps) ApplySubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	token := chi.URLParam(r, "token")
	_, err := d.Departments.SubmitRequest(r.Context(), token, store.QueueRequest{
		Name:        strings.TrimSpace(r.PostFormValue("name")),
		Contact:     strings.TrimSpace(r.PostFormValue("contact")),
		DesiredRole: strings.TrimSpace(r.PostFormValue("desired_role")),
		Motivation:  strings.TrimSpace(r.PostFormValue("motivation")),
	})
	if err != nil {
		if err == store.ErrNotFound {
			Flash(w, "Link de inscrição inválido", "danger")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		if d.Logger != nil {
			d.Logger.Errorf("apply %s: %v", token, err)
		}
		Flash(w, "Falha ao enviar o pedido, tente novamente", "danger")
		http.Redirect(w, r, "/departments/apply/"+token, http.StatusSeeOther)
		return
	}
	Flash(w, "Solicitação registrada! Aguarde o retorno do diretor.", "success")
	http.Redirect(w, r, "/departments/apply/"+token, http.StatusSeeOther)
}

func (d *Deps) ApprovalPage(w http.ResponseWriter, r *http.Request) {
	journal, err := d.Journals.FindByApprovalToken(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		Flash(w, "Solicitação não encontrada", "danger")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	d.render(w, r, "approval.html", "Aprovação", journal)
}

func (d *Deps) ApprovalDecide(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	token := chi.URLParam(r, "token")
	if _, err := d.Journals.FindByApprovalToken(r.Context(), token); err != nil {
		Flash(w, "Solicitação não encontrada", "danger")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	action := r.PostFormValue("action")
	reason := strings.TrimSpace(r.PostFormValue("reason"))
	if err := d.Journals.DecideByToken(r.Context(), token, action, reason); err != nil {
		if d.Logger != nil {
			d.Logger.Errorf("approval %s: %v", token, err)
		}
		Flash(w, "Falha ao registrar a decisão", "danger")
		http.Redirect(w, r, "/approve/"+token, http.StatusSeeOther)
		return
	}
	Flash(w, "Avaliação registrada", "success")
	http.Redirect(w, r, "/approve/"+token, http.StatusSeeOther)
}
