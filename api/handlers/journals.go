package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"gazeta-portal/core/blob"
	"gazeta-portal/core/store"
)

// readUpload pulls one multipart file field, bounded by the configured upload
// limit. A missing field is not an error; it returns empty data.
func (d *Deps) readUpload(r *http.Request, field string) ([]byte, string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, "", nil
		}
		return nil, "", err
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, d.Cfg.MaxUpload+1))
	if err != nil {
		return nil, "", err
	}
	return data, header.Filename, nil
}

func uploadNotice(err error) string {
	switch {
	case errors.Is(err, blob.ErrBadExtension):
		return "Formato de arquivo não permitido"
	case errors.Is(err, blob.ErrTooLarge):
		return "Arquivo excede o tamanho máximo"
	default:
		return "Falha ao gravar o arquivo"
	}
}

func (d *Deps) CreateJournal(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(d.Cfg.MaxUpload); err != nil && err != multipart.ErrMessageTooLarge {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	title := strings.TrimSpace(r.PostFormValue("title"))
	if title == "" {
		Flash(w, "Informe o título da edição", "warning")
		http.Redirect(w, r, "/dashboard?tab=journals", http.StatusSeeOther)
		return
	}

	stored := ""
	data, filename, err := d.readUpload(r, "file")
	if err != nil {
		d.fail(w, r, err, "Falha ao ler o arquivo enviado")
		return
	}
	if len(data) > 0 {
		stored, err = d.JournalBlobs.Store(data, filename)
		if err != nil {
			notice := uploadNotice(err)
			if errors.Is(err, blob.ErrBadExtension) {
				notice = "Formato não permitido. Envie apenas PDF."
			}
			Flash(w, notice, "danger")
			http.Redirect(w, r, "/dashboard?tab=journals", http.StatusSeeOther)
			return
		}
	}

	_, err = d.Journals.Create(r.Context(), store.Journal{
		Title:       title,
		Edition:     strings.TrimSpace(r.PostFormValue("edition")),
		ReleaseDate: strings.TrimSpace(r.PostFormValue("release_date")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
		File:        stored,
	})
	if err != nil {
		d.fail(w, r, err, "Falha ao registrar a edição")
		return
	}
	d.done(w, r, "Jornal enviado para aprovação", "journals")
}
