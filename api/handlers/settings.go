package handlers

import (
	"net/http"
)

func (d *Deps) UpdateVisual(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if err := d.Settings.UpdateVisual(r.Context(),
		r.PostFormValue("logo_url"),
		r.PostFormValue("primary_color"),
		r.PostFormValue("accent_color"),
		r.PostFormValue("tagline"),
	); err != nil {
		d.fail(w, r, err, "Falha ao salvar a identidade visual")
		return
	}
	d.done(w, r, "Configurações visuais atualizadas", "settings")
}

// SaveWidgets reads enabled_/title_/subtitle_ fields against the normalized
// widget list; empty text fields keep the stored value.
func (d *Deps) SaveWidgets(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	ctx := r.Context()
	widgets, err := d.Settings.NormalizeWidgets(ctx)
	if err != nil {
		d.fail(w, r, err, "Falha ao salvar os widgets")
		return
	}
	for i := range widgets {
		id := widgets[i].ID
		widgets[i].Enabled = r.PostFormValue("enabled_"+id) == "on"
		if title := r.PostFormValue("title_" + id); title != "" {
			widgets[i].Title = title
		}
		if subtitle := r.PostFormValue("subtitle_" + id); subtitle != "" {
			widgets[i].Subtitle = subtitle
		}
	}
	if err := d.Settings.SaveWidgets(ctx, widgets); err != nil {
		d.fail(w, r, err, "Falha ao salvar os widgets")
		return
	}
	d.done(w, r, "Widgets atualizados com sucesso", "settings")
}
