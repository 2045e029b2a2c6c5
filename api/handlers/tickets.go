package handlers

import (
	"net/http"
	"strings"

	"gazeta-portal/core/rbac"
	"gazeta-portal/core/store"
	"github.com/go-chi/chi/v5"
)

// TicketReasons feeds the new-ticket select. "Outro" opens the free-text
// reason field.
var TicketReasons = []string{
	"Problema técnico",
	"Solicitação de acesso",
	"Orientação de conteúdo",
	"Conflito de agenda",
	"Outro",
}

func (d *Deps) OpenTicket(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	title := strings.TrimSpace(r.PostFormValue("title"))
	if title == "" {
		Flash(w, "Informe o título do ticket", "warning")
		http.Redirect(w, r, "/dashboard?tab=tickets", http.StatusSeeOther)
		return
	}
	reason := r.PostFormValue("reason")
	if reason == "" {
		reason = "Outro"
	}
	if reason == "Outro" {
		reason = strings.TrimSpace(r.PostFormValue("custom_reason"))
	}
	urgency := strings.TrimSpace(r.PostFormValue("urgency"))
	if urgency == "" {
		urgency = "normal"
	}
	sess := Session(r)
	_, err := d.Tickets.Open(r.Context(), store.Ticket{
		Title:       title,
		Reason:      reason,
		Urgency:     urgency,
		CreatedBy:   sess.Username,
		CreatedRole: sess.Role,
		Messages: []store.TicketMessage{{
			Author: sess.Username,
			Role:   sess.Role,
			Body:   strings.TrimSpace(r.PostFormValue("message")),
		}},
	})
	if err != nil {
		d.fail(w, r, err, "Falha ao abrir o ticket")
		return
	}
	d.done(w, r, "Ticket criado e enviado para a diretoria", "tickets")
}

func (d *Deps) ReplyTicket(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	body := strings.TrimSpace(r.PostFormValue("message"))
	if body == "" {
		Flash(w, "Escreva uma resposta", "warning")
		http.Redirect(w, r, "/dashboard?tab=tickets", http.StatusSeeOther)
		return
	}
	sess := Session(r)
	err := d.Tickets.Reply(r.Context(), chi.URLParam(r, "id"), store.TicketMessage{
		Author: sess.Username,
		Role:   sess.Role,
		Body:   body,
	}, sess.Has(rbac.PermManageTickets))
	switch err {
	case nil:
		d.done(w, r, "Resposta enviada", "tickets")
	case store.ErrTicketDenied:
		Flash(w, "Você não pode interagir com este ticket", "danger")
		http.Redirect(w, r, "/dashboard?tab=tickets", http.StatusSeeOther)
	case store.ErrNotFound:
		Flash(w, "Ticket não encontrado", "danger")
		http.Redirect(w, r, "/dashboard?tab=tickets", http.StatusSeeOther)
	default:
		d.fail(w, r, err, "Falha ao responder o ticket")
	}
}

func (d *Deps) CloseTicket(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	sess := Session(r)
	err := d.Tickets.Close(r.Context(), chi.URLParam(r, "id"), store.TicketMessage{
		Author: sess.Username,
		Role:   sess.Role,
		Body:   strings.TrimSpace(r.PostFormValue("message")),
	})
	if err != nil {
		if err == store.ErrNotFound {
			Flash(w, "Ticket não encontrado", "danger")
			http.Redirect(w, r, "/dashboard?tab=tickets", http.StatusSeeOther)
			return
		}
		d.fail(w, r, err, "Falha ao fechar o ticket")
		return
	}
	Flash(w, "Ticket encerrado", "info")
	http.Redirect(w, r, "/dashboard?tab=tickets", http.StatusSeeOther)
}

func (d *Deps) DeleteTicket(w http.ResponseWriter, r *http.Request) {
	if err := d.Tickets.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		d.fail(w, r, err, "Falha ao excluir o ticket")
		return
	}
	Flash(w, "Ticket removido", "info")
	http.Redirect(w, r, "/dashboard?tab=tickets", http.StatusSeeOther)
}
