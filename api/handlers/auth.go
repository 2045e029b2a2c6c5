package handlers

import (
	"errors"
	"net/http"

	"gazeta-portal/core/auth"
)

func (d *Deps) LoginPage(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	d.render(w, r, "login.html", "Entrar", nil)
}

func (d *Deps) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	principal, err := d.Resolver.Authenticate(r.Context(), username, password)
	if err != nil {
		// A denied credential and a broken credential source are different
		// failures; only the first gets the generic notice.
		if !errors.Is(err, auth.ErrDenied) {
			d.fail(w, r, err, "Não foi possível verificar as credenciais")
			return
		}
		if d.Logger != nil {
			d.Logger.Printf("login denied user=%s", username)
		}
		Flash(w, "Usuário ou senha inválidos ou acesso bloqueado", "danger")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	sr, err := d.SessionManager.Create(r.Context(), principal)
	if err != nil {
		d.fail(w, r, err, "Não foi possível iniciar a sessão")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sr.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  sr.ExpiresAt,
	})
	Flash(w, "Login realizado com sucesso", "success")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (d *Deps) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		if err := d.SessionManager.Destroy(r.Context(), c.Value); err != nil && d.Logger != nil {
			d.Logger.Errorf("destroy session: %v", err)
		}
	}
	http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
	Flash(w, "Sessão encerrada", "info")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
