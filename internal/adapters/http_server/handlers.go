package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"eduquote/internal/app"
	"eduquote/internal/domain"
)

type Handlers struct {
	Q         *app.QueryService
	Catalog   *app.CatalogService
	Settings  *app.SettingsService
	Drafts    *app.DraftService
	Blob      domain.BlobStore
	AdminPass string
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Get("/v1/portals/{portal}/programs", h.listPrograms)
	s.mux.Get("/v1/settings", h.getSettings)
	s.mux.Get("/v1/airports", h.listAirports)
	s.mux.Post("/v1/drafts/email", h.draftEmail)
	s.mux.Post("/v1/drafts/highlights", h.draftHighlights)

	s.mux.Group(func(r chi.Router) {
		r.Use(AdminOnly(h.AdminPass))
		r.Post("/v1/portals/{portal}/programs", h.saveProgram)
		r.Delete("/v1/programs/{id}", h.deleteProgram)
		r.Post("/v1/portals/{portal}/restore", h.restorePortal)
		r.Post("/v1/portals/{portal}/seed", h.seedPortal)
		r.Post("/v1/portals/{portal}/reset", h.resetPortal)
		r.Put("/v1/settings", h.putSettings)
		r.Post("/v1/uploads", h.uploadImages)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func portalParam(r *http.Request) (domain.Portal, bool) {
	p, err := domain.ParsePortal(chi.URLParam(r, "portal"))
	return p, err == nil
}

func (h *Handlers) listPrograms(w http.ResponseWriter, r *http.Request) {
	portal, ok := portalParam(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid Portal", "unknown portal key")
		return
	}
	list := h.Q.Programs(r.Context(), portal)
	rows := make([]app.ProgramRow, len(list))
	for i, p := range list {
		rows[i] = app.MapToRow(p, portal)
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *Handlers) saveProgram(w http.ResponseWriter, r *http.Request) {
	portal, ok := portalParam(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid Portal", "unknown portal key")
		return
	}
	var row app.ProgramRow
	if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "malformed program payload")
		return
	}
	saved, err := h.Catalog.Save(r.Context(), app.MapFromRow(row), portal)
	if err != nil {
		var se *domain.SaveError
		if errors.As(err, &se) {
			switch se.Kind {
			case domain.SaveDuplicate:
				writeProblem(w, http.StatusConflict, "Duplicate", "a program with this identity already exists")
				return
			case domain.SaveOversized:
				writeProblem(w, http.StatusRequestEntityTooLarge, "Payload Too Large", "program payload exceeds the store's packet limit; shrink the embedded images")
				return
			}
		}
		log.Error().Err(err).Str("portal", portal.Key()).Msg("save program failed")
		writeProblem(w, http.StatusInternalServerError, "Save Failed", "could not persist program")
		return
	}
	writeJSON(w, http.StatusOK, app.MapToRow(saved, portal))
}

func (h *Handlers) deleteProgram(w http.ResponseWriter, r *http.Request) {
	ok := h.Catalog.Delete(r.Context(), chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": ok})
}

func (h *Handlers) restorePortal(w http.ResponseWriter, r *http.Request) {
	portal, ok := portalParam(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid Portal", "unknown portal key")
		return
	}
	restored, err := h.Catalog.RestoreMissing(r.Context(), portal)
	if err != nil {
		log.Error().Err(err).Str("portal", portal.Key()).Msg("restore failed")
		writeProblem(w, http.StatusInternalServerError, "Restore Failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"restored": restored})
}

func (h *Handlers) seedPortal(w http.ResponseWriter, r *http.Request) {
	portal, ok := portalParam(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid Portal", "unknown portal key")
		return
	}
	n, err := h.Catalog.Seed(r.Context(), portal)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Seed Failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"inserted": n})
}

func (h *Handlers) resetPortal(w http.ResponseWriter, r *http.Request) {
	portal, ok := portalParam(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid Portal", "unknown portal key")
		return
	}
	// Destructive; demand the explicit flag.
	if r.URL.Query().Get("confirm") != "true" {
		writeProblem(w, http.StatusBadRequest, "Confirmation Required", "reset wipes the portal; call with ?confirm=true")
		return
	}
	if err := h.Catalog.ResetAndSeed(r.Context(), portal); err != nil {
		writeProblem(w, http.StatusInternalServerError, "Reset Failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reseeded"})
}

type settingsBody struct {
	LogoURL   *string `json:"logo_url"`
	BannerURL *string `json:"banner_url"`
}

func (h *Handlers) getSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.Settings.Load(r.Context())
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Settings Unavailable", "could not load settings")
		return
	}
	writeJSON(w, http.StatusOK, settingsBody{LogoURL: s.LogoURL, BannerURL: s.BannerURL})
}

func (h *Handlers) putSettings(w http.ResponseWriter, r *http.Request) {
	var b settingsBody
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "malformed settings payload")
		return
	}
	if err := h.Settings.Save(r.Context(), domain.Settings{LogoURL: b.LogoURL, BannerURL: b.BannerURL}); err != nil {
		writeProblem(w, http.StatusInternalServerError, "Save Failed", "could not persist settings")
		return
	}
	writeJSON(w, http.StatusOK, b)
}

type draftEmailBody struct {
	ProgramID string `json:"program_id"`
	Quote     struct {
		AgencyName       string `json:"agency_name"`
		ConsultantName   string `json:"consultant_name"`
		StudentCount     string `json:"student_count"`
		GroupLeaderCount string `json:"group_leader_count"`
		PricePerStudent  string `json:"price_per_student"`
		PriceType        string `json:"price_type"`
		ExtraLeaderPrice string `json:"extra_leader_price"`
		DurationWeeks    string `json:"duration_weeks"`
		Notes            string `json:"notes"`
		TransferAirport  string `json:"transfer_airport"`
		TransferType     string `json:"transfer_type"`
		StartDate        string `json:"start_date"`
		EndDate          string `json:"end_date"`
	} `json:"quote"`
}

func (h *Handlers) draftEmail(w http.ResponseWriter, r *http.Request) {
	var b draftEmailBody
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "malformed draft request")
		return
	}
	p, err := h.Q.Program(r.Context(), b.ProgramID)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "program not found")
		return
	}
	q := domain.QuoteDetails{
		AgencyName:       b.Quote.AgencyName,
		ConsultantName:   b.Quote.ConsultantName,
		StudentCount:     b.Quote.StudentCount,
		GroupLeaderCount: b.Quote.GroupLeaderCount,
		PricePerStudent:  b.Quote.PricePerStudent,
		PriceType:        domain.PriceType(b.Quote.PriceType),
		ExtraLeaderPrice: b.Quote.ExtraLeaderPrice,
		DurationWeeks:    b.Quote.DurationWeeks,
		Notes:            b.Quote.Notes,
		TransferAirport:  b.Quote.TransferAirport,
		TransferType:     domain.TransferType(b.Quote.TransferType),
		StartDate:        b.Quote.StartDate,
		EndDate:          b.Quote.EndDate,
	}
	// Drafting degrades internally; this endpoint always answers 200.
	writeJSON(w, http.StatusOK, map[string]string{"draft": h.Drafts.Email(r.Context(), p, q)})
}

func (h *Handlers) draftHighlights(w http.ResponseWriter, r *http.Request) {
	var b struct {
		ProgramID string `json:"program_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "malformed draft request")
		return
	}
	p, err := h.Q.Program(r.Context(), b.ProgramID)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "program not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"highlights": h.Drafts.Highlights(r.Context(), p)})
}

func (h *Handlers) listAirports(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	region := domain.TransferRegion(q.Get("city"), q.Get("location"), q.Get("country"))
	writeJSON(w, http.StatusOK, map[string]any{
		"region":   region,
		"airports": domain.AirportsFor(region),
	})
}
