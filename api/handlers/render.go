package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"gazeta-portal/core/rbac"
	"gazeta-portal/core/store"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type pageData struct {
	Title    string
	Settings store.SiteSettings
	Session  *store.SessionRecord
	Flash    *FlashMessage
	Data     any
}

// Can lets templates hide controls the session cannot use. Enforcement stays
// in the middleware; this is presentation only.
func (p pageData) Can(perm string) bool {
	return p.Session.Has(rbac.Permission(perm))
}

func (d *Deps) render(w http.ResponseWriter, r *http.Request, name, title string, data any) {
	settings, err := d.Settings.Get(r.Context())
	if err != nil {
		if d.Logger != nil {
			d.Logger.Errorf("load settings: %v", err)
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pd := pageData{
		Title:    title,
		Settings: settings,
		Session:  Session(r),
		Flash:    PopFlash(w, r),
		Data:     data,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, pd); err != nil && d.Logger != nil {
		d.Logger.Errorf("render %s: %v", name, err)
	}
}
