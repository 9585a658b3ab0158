package httpserver

import (
	"io"
	"mime/multipart"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"eduquote/internal/adapters/observability"
	"eduquote/internal/imaging"
)

// maxUploadBytes bounds one multipart request in memory.
const maxUploadBytes = 64 << 20

type uploadResult struct {
	Kind     string `json:"kind"`
	Filename string `json:"filename"`
	URL      string `json:"url,omitempty"`
	MIME     string `json:"mime,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Error    string `json:"error,omitempty"`
}

// uploadImages accepts a multipart form whose field names are asset kinds
// (logo, banner, hero, gallery, timetable) and whose values are image files.
// Each file is normalized to its kind's budget and uploaded independently;
// one bad file never sinks the batch. Results arrive in completion order, so
// callers must match them up by filename, not position.
func (h *Handlers) uploadImages(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "expected a multipart form of image files")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	pathHint := r.FormValue("path")
	if pathHint == "" {
		pathHint = "uploads"
	}

	type job struct {
		kind string
		fh   *multipart.FileHeader
	}
	var jobs []job
	for kind, headers := range r.MultipartForm.File {
		for _, fh := range headers {
			jobs = append(jobs, job{kind: kind, fh: fh})
		}
	}
	if len(jobs) == 0 {
		writeProblem(w, http.StatusBadRequest, "Empty Upload", "no files in form")
		return
	}

	var (
		mu      sync.Mutex
		results []uploadResult
		wg      sync.WaitGroup
	)
	for _, j := range jobs {
		wg.Add(1)
		go func(j job) {
			defer wg.Done()
			res := h.processUpload(r, j.kind, j.fh, pathHint)
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
		}(j)
	}
	wg.Wait()

	writeJSON(w, http.StatusOK, results)
}

func (h *Handlers) processUpload(r *http.Request, kind string, fh *multipart.FileHeader, pathHint string) uploadResult {
	out := uploadResult{Kind: kind, Filename: fh.Filename}

	f, err := fh.Open()
	if err != nil {
		out.Error = "unreadable file"
		observability.ObserveUpload(kind, "error")
		return out
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		out.Error = "unreadable file"
		observability.ObserveUpload(kind, "error")
		return out
	}

	start := time.Now()
	enc, err := imaging.Normalize(data, fh.Header.Get("Content-Type"), fh.Filename, imaging.PresetFor(kind))
	observability.ObserveNormalize(kind, time.Since(start))
	if err != nil {
		log.Warn().Err(err).Str("file", fh.Filename).Msg("image normalization failed")
		out.Error = "not a decodable image"
		observability.ObserveUpload(kind, "error")
		return out
	}

	url, err := h.Blob.Upload(r.Context(), enc.Bytes, enc.MIME, pathHint+"/"+kind)
	if err != nil {
		log.Error().Err(err).Str("file", fh.Filename).Msg("blob upload failed")
		out.Error = "upload failed"
		observability.ObserveUpload(kind, "error")
		return out
	}

	out.URL = url
	out.MIME = enc.MIME
	out.Width = enc.Width
	out.Height = enc.Height
	observability.ObserveUpload(kind, "ok")
	return out
}
