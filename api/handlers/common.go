package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"gazeta-portal/config"
	"gazeta-portal/core/auth"
	"gazeta-portal/core/blob"
	"gazeta-portal/core/store"
	"gazeta-portal/core/utils"
)

const (
	// SessionCookie holds the opaque session id. The record itself lives
	// server-side.
	SessionCookie = "gazeta_session"
	flashCookie   = "gazeta_flash"
)

// Deps bundles everything the request handlers need. The server builds one
// instance and registers the methods as routes.
type Deps struct {
	Cfg            *config.AppConfig
	Logger         *utils.Logger
	Resolver       *auth.Resolver
	SessionManager *auth.SessionManager

	Students      store.StudentsStore
	Journals      store.JournalsStore
	Assets        store.AssetsStore
	Rules         store.RulesStore
	Announcements store.AnnouncementsStore
	Calendar      store.CalendarStore
	Departments   store.DepartmentsStore
	Tickets       store.TicketsStore
	Users         store.UsersStore
	Roles         store.RolesStore
	Settings      store.SettingsStore

	JournalBlobs *blob.Store
	AssetBlobs   *blob.Store
}

// Session returns the principal snapshot placed on the context by the session
// middleware, or nil on public routes.
func Session(r *http.Request) *store.SessionRecord {
	if v := r.Context().Value(auth.SessionContextKey); v != nil {
		return v.(*store.SessionRecord)
	}
	return nil
}

type FlashMessage struct {
	Message  string
	Category string
}

// Flash queues a one-shot notice for the next rendered page. Categories map to
// bootstrap alert classes (success, warning, danger, info).
func Flash(w http.ResponseWriter, message, category string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(category + "|" + message),
		Path:     "/",
		HttpOnly: true,
	})
}

// PopFlash reads and clears the pending notice, if any.
func PopFlash(w http.ResponseWriter, r *http.Request) *FlashMessage {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
	raw, err := url.QueryUnescape(c.Value)
	if err != nil {
		return nil
	}
	cat, msg, ok := strings.Cut(raw, "|")
	if !ok {
		return &FlashMessage{Message: raw, Category: "info"}
	}
	return &FlashMessage{Message: msg, Category: cat}
}

func (d *Deps) fail(w http.ResponseWriter, r *http.Request, err error, notice string) {
	if d.Logger != nil {
		d.Logger.Errorf("%s %s: %v", r.Method, r.URL.Path, err)
	}
	Flash(w, notice, "danger")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// done flashes success and redirects to the named dashboard tab, unless the
// form carried a redirect_to override (the welcome wizard reuses the regular
// create endpoints this way).
func (d *Deps) done(w http.ResponseWriter, r *http.Request, notice, tab string) {
	Flash(w, notice, "success")
	if dest := r.PostFormValue("redirect_to"); strings.HasPrefix(dest, "/") {
		http.Redirect(w, r, dest, http.StatusSeeOther)
		return
	}
	target := "/dashboard"
	if tab != "" {
		target += "?tab=" + url.QueryEscape(tab)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
