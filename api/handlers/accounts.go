package handlers

import (
	"net/http"
	"strings"

	"gazeta-portal/core/auth"
	"gazeta-portal/core/rbac"
	"gazeta-portal/core/store"
	"gazeta-portal/core/utils"
	"github.com/go-chi/chi/v5"
)

func (d *Deps) CreateRole(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	name := strings.TrimSpace(r.PostFormValue("name"))
	if name == "" {
		Flash(w, "Informe o nome do cargo", "warning")
		http.Redirect(w, r, "/dashboard?tab=accounts", http.StatusSeeOther)
		return
	}
	role := rbac.Role{
		Name:        name,
		Description: strings.TrimSpace(r.PostFormValue("description")),
		Permissions: rbac.ParsePermissions(r.PostForm["permissions"]),
	}
	err := d.Roles.Create(r.Context(), role)
	switch err {
	case nil:
		d.done(w, r, "Cargo criado", "accounts")
	case store.ErrRoleExists:
		Flash(w, "Já existe um cargo com esse nome", "warning")
		http.Redirect(w, r, "/dashboard?tab=accounts", http.StatusSeeOther)
	default:
		d.fail(w, r, err, "Falha ao criar o cargo")
	}
}

func (d *Deps) CreateUser(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")
	if err := utils.ValidateUsername(username); err != nil {
		Flash(w, "Usuário inválido: use 3 a 32 caracteres entre letras, números, ponto, hífen e sublinhado", "warning")
		http.Redirect(w, r, "/dashboard?tab=accounts", http.StatusSeeOther)
		return
	}
	if err := utils.ValidatePassword(password); err != nil {
		Flash(w, "Senha inválida: use entre 8 e 128 caracteres", "warning")
		http.Redirect(w, r, "/dashboard?tab=accounts", http.StatusSeeOther)
		return
	}
	roleName := strings.TrimSpace(r.PostFormValue("role"))
	role, err := d.Roles.FindByName(r.Context(), roleName)
	if err != nil {
		d.fail(w, r, err, "Falha ao criar a conta")
		return
	}
	if role == nil {
		Flash(w, "Cargo inválido", "danger")
		http.Redirect(w, r, "/dashboard?tab=accounts", http.StatusSeeOther)
		return
	}

	ph, err := auth.HashPassword(password, d.Cfg.Pepper)
	if err != nil {
		d.fail(w, r, err, "Falha ao criar a conta")
		return
	}
	_, err = d.Users.Create(r.Context(), store.User{
		Name:          strings.TrimSpace(r.PostFormValue("name")),
		Username:      username,
		Role:          roleName,
		PasswordHash:  ph.Hash,
		PasswordSalt:  ph.Salt,
		PortalEnabled: r.PostFormValue("portal_enabled") != "",
	})
	switch err {
	case nil:
		d.done(w, r, "Usuário criado com sucesso", "accounts")
	case store.ErrConflict:
		Flash(w, "Usuário já existe", "warning")
		http.Redirect(w, r, "/dashboard?tab=accounts", http.StatusSeeOther)
	default:
		d.fail(w, r, err, "Falha ao criar a conta")
	}
}

// SetUserRole reassigns an account's role. The change only reaches live
// sessions on the next login.
func (d *Deps) SetUserRole(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	roleName := strings.TrimSpace(r.PostFormValue("role"))
	role, err := d.Roles.FindByName(r.Context(), roleName)
	if err != nil {
		d.fail(w, r, err, "Falha ao atualizar a conta")
		return
	}
	if role == nil {
		Flash(w, "Cargo inválido", "danger")
		http.Redirect(w, r, "/dashboard?tab=accounts", http.StatusSeeOther)
		return
	}
	if err := d.Users.SetRole(r.Context(), chi.URLParam(r, "id"), roleName); err != nil {
		if err == store.ErrNotFound {
			Flash(w, "Usuário não encontrado", "danger")
			http.Redirect(w, r, "/dashboard?tab=accounts", http.StatusSeeOther)
			return
		}
		d.fail(w, r, err, "Falha ao atualizar a conta")
		return
	}
	d.done(w, r, "Permissões atualizadas", "accounts")
}

func (d *Deps) ToggleUserPortal(w http.ResponseWriter, r *http.Request) {
	if err := d.Users.TogglePortal(r.Context(), chi.URLParam(r, "id")); err != nil {
		if err == store.ErrNotFound {
			Flash(w, "Usuário não encontrado", "danger")
			http.Redirect(w, r, "/dashboard?tab=accounts", http.StatusSeeOther)
			return
		}
		d.fail(w, r, err, "Falha ao atualizar a conta")
		return
	}
	Flash(w, "Acesso atualizado", "info")
	http.Redirect(w, r, "/dashboard?tab=accounts", http.StatusSeeOther)
}
