// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"pms_marketplace/internal/app"
	"pms_marketplace/internal/domain"
)

const maxActionBody = 4 << 10

type Handlers struct {
	Catalog  *app.CatalogService
	Sessions *app.SessionService
	validate *validator.Validate
}

func NewHandlers(c *app.CatalogService, s *app.SessionService) *Handlers {
	return &Handlers{Catalog: c, Sessions: s, validate: validator.New()}
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type listResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

type propertyQuery struct {
	Q        string `validate:"max=200"`
	Location string `validate:"max=200"`
}

// MountHandlers registers the API. Mutating session routes go through limit.
func (s *Server) MountHandlers(h *Handlers, limit func(http.Handler) http.Handler) {
	if limit == nil {
		limit = func(next http.Handler) http.Handler { return next }
	}
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/v1/properties", func(r chi.Router) {
		r.Get("/", h.listProperties)
		r.Get("/featured", h.featuredProperties)
		r.Get("/{id}", h.getProperty)
	})
	s.mux.Route("/v1/vendors", func(r chi.Router) {
		r.Get("/", h.listVendors)
		r.Get("/categories", h.vendorCategories)
		r.Get("/{id}", h.getVendor)
	})
	s.mux.Route("/v1/sessions", func(r chi.Router) {
		r.With(limit).Post("/", h.createSession)
		r.Get("/{id}", h.getSession)
		r.With(limit).Post("/{id}/actions", h.dispatch)
		r.With(limit).Post("/{id}/favorites/{propertyID}", h.toggleFavorite)
		r.Delete("/{id}", h.deleteSession)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps domain errors onto problem responses.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, domain.ErrInvalidAction), errors.Is(err, domain.ErrInvalidCategory):
		writeProblem(w, http.StatusBadRequest, "Bad Request", err.Error())
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeCached writes v with an ETag and answers 304 when the client already has it.
func writeCached(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	writeJSON(w, http.StatusOK, body)
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write body")
	}
}

func writeValue(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal response")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	writeJSON(w, status, body)
}

func (h *Handlers) listProperties(w http.ResponseWriter, r *http.Request) {
	q := propertyQuery{Q: r.URL.Query().Get("q"), Location: r.URL.Query().Get("location")}
	if err := h.validate.Struct(q); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid query", err.Error())
		return
	}
	ps, err := h.Catalog.SearchProperties(r.Context(), q.Q, q.Location)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCached(w, r, listResponse[domain.Property]{Items: ps, Count: len(ps)})
}

func (h *Handlers) featuredProperties(w http.ResponseWriter, r *http.Request) {
	ps, err := h.Catalog.FeaturedProperties(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCached(w, r, listResponse[domain.Property]{Items: ps, Count: len(ps)})
}

func (h *Handlers) getProperty(w http.ResponseWriter, r *http.Request) {
	p, err := h.Catalog.GetProperty(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCached(w, r, p)
}

func (h *Handlers) listVendors(w http.ResponseWriter, r *http.Request) {
	c, err := app.ParseCategory(r.URL.Query().Get("category"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid category", err.Error())
		return
	}
	vs, err := h.Catalog.VendorsByCategory(r.Context(), c)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCached(w, r, listResponse[domain.Vendor]{Items: vs, Count: len(vs)})
}

func (h *Handlers) vendorCategories(w http.ResponseWriter, r *http.Request) {
	c, err := app.ParseCategory(r.URL.Query().Get("selected"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid category", err.Error())
		return
	}
	vs, err := h.Catalog.ListVendors(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCached(w, r, app.CategoryCounts(vs, c))
}

func (h *Handlers) getVendor(w http.ResponseWriter, r *http.Request) {
	v, err := h.Catalog.GetVendor(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCached(w, r, v)
}

func (h *Handlers) createSession(w http.ResponseWriter, r *http.Request) {
	res, err := h.Sessions.Create(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/v1/sessions/"+res.View.SessionID)
	writeValue(w, http.StatusCreated, res)
}

func (h *Handlers) getSession(w http.ResponseWriter, r *http.Request) {
	v, err := h.Sessions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCached(w, r, v)
}

func (h *Handlers) dispatch(w http.ResponseWriter, r *http.Request) {
	var a domain.Action
	dec := json.NewDecoder(io.LimitReader(r.Body, maxActionBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&a); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "action must be a JSON object")
		return
	}
	a.Type = domain.ActionType(strings.TrimSpace(string(a.Type)))
	if err := h.validate.Struct(a); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid action", err.Error())
		return
	}
	h.apply(w, r, chi.URLParam(r, "id"), a)
}

func (h *Handlers) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, chi.URLParam(r, "id"), domain.Action{
		Type:   domain.ActionToggleFavorite,
		Target: chi.URLParam(r, "propertyID"),
	})
}

func (h *Handlers) apply(w http.ResponseWriter, r *http.Request, id string, a domain.Action) {
	res, err := h.Sessions.Dispatch(r.Context(), id, a)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeValue(w, http.StatusOK, res)
}

func (h *Handlers) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
