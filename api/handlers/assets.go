package handlers

import (
	"mime/multipart"
	"net/http"
	"strings"

	"gazeta-portal/core/blob"
	"gazeta-portal/core/store"
	"github.com/go-chi/chi/v5"
)

func (d *Deps) CreateAsset(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(d.Cfg.MaxUpload); err != nil && err != multipart.ErrMessageTooLarge {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	data, filename, err := d.readUpload(r, "file")
	if err != nil {
		d.fail(w, r, err, "Falha ao ler o arquivo enviado")
		return
	}
	if len(data) == 0 {
		Flash(w, "Selecione um arquivo para enviar", "warning")
		http.Redirect(w, r, "/dashboard?tab=assets", http.StatusSeeOther)
		return
	}
	stored, err := d.AssetBlobs.Store(data, filename)
	if err != nil {
		Flash(w, uploadNotice(err), "danger")
		http.Redirect(w, r, "/dashboard?tab=assets", http.StatusSeeOther)
		return
	}

	owner := strings.TrimSpace(r.PostFormValue("owner"))
	if owner == "" {
		owner = Session(r).Username
	}
	_, err = d.Assets.Create(r.Context(), store.Asset{
		OriginalName: filename,
		StoredName:   stored,
		Notes:        strings.TrimSpace(r.PostFormValue("notes")),
		Owner:        owner,
		DepartmentID: strings.TrimSpace(r.PostFormValue("department_id")),
	})
	if err != nil {
		d.fail(w, r, err, "Falha ao arquivar")
		return
	}
	d.done(w, r, "Arquivo arquivado com sucesso", "assets")
}

// Download serves a stored upload back. The kind segment selects the blob
// store; names are re-sanitized inside Open.
func (d *Deps) Download(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	name := chi.URLParam(r, "name")

	var blobs *blob.Store
	switch kind {
	case "journals":
		blobs = d.JournalBlobs
	case "assets":
		blobs = d.AssetBlobs
	default:
		http.NotFound(w, r)
		return
	}
	data, err := blobs.Open(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Disposition", "attachment; filename=\""+name+"\"")
	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := w.Write(data); err != nil && d.Logger != nil {
		d.Logger.Errorf("download %s/%s: %v", kind, name, err)
	}
}
