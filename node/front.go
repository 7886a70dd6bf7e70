package node

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"net/http"

	"golang.org/x/xerrors"

	"github.com/Borja291/Blockchain/api"
)

//go:embed site
var site embed.FS

var indexTmpl = template.Must(template.ParseFS(site, "site/index.html"))

// maxUploadMemory is kept in memory by multipart parsing, the rest of an
// upload spills to temporary files.
const maxUploadMemory = 32 << 20

type page struct {
	Form   api.FormSnapshot
	Record *api.SubmissionRecord
	Error  string
}

// front serves the submission form.
type front struct {
	api api.Crowdfund
}

func (h *front) index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, page{})
}

func (h *front) submit(w http.ResponseWriter, r *http.Request) {
	params, err := campaignParams(r)
	if err != nil {
		h.render(w, r, http.StatusBadRequest, page{Error: err.Error()})
		return
	}

	rec, err := h.api.CampaignCreate(r.Context(), params)
	if err != nil {
		status := http.StatusInternalServerError
		if api.ErrorIsIn(err, api.InvalidParams) {
			status = http.StatusBadRequest
		}
		h.render(w, r, status, page{Error: err.Error()})
		return
	}

	h.render(w, r, http.StatusOK, page{Record: rec})
}

func (h *front) render(w http.ResponseWriter, r *http.Request, status int, p page) {
	fs, err := h.api.FormState(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	p.Form = fs

	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, p); err != nil {
		log.Errorf("rendering form: %s", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := io.Copy(w, &buf); err != nil {
		log.Errorf("failed to write page: %s", err)
	}
}

func campaignParams(r *http.Request) (api.CampaignParams, error) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return api.CampaignParams{}, xerrors.Errorf("parsing form: %w", err)
	}

	p := api.CampaignParams{
		Title: r.FormValue("title"),
		Goal:  r.FormValue("goal"),
	}

	f, hdr, err := r.FormFile("file")
	switch {
	case xerrors.Is(err, http.ErrMissingFile):
		return p, &api.ErrMissingFile{}
	case err != nil:
		return p, xerrors.Errorf("reading upload: %w", err)
	}
	defer f.Close() //nolint:errcheck

	p.FileName = hdr.Filename
	p.File, err = io.ReadAll(f)
	if err != nil {
		return p, xerrors.Errorf("reading upload: %w", err)
	}
	return p, nil
}
