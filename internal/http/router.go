package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"survey-builder/internal/domain/backend"
	"survey-builder/internal/domain/form"
	"survey-builder/internal/viewguard"
	"survey-builder/internal/worker"
)

type Handler struct {
	forms   *form.Store
	backend *backend.Service
	guard   viewguard.Guard
	events  chan<- worker.ResponseEvent
	now     func() time.Time
}

// Deps groups what the router needs. Guard defaults to viewguard.Noop and
// Now to time.Now.
type Deps struct {
	Forms       *form.Store
	Backend     *backend.Service
	Guard       viewguard.Guard
	Events      chan<- worker.ResponseEvent
	Logger      *zap.Logger
	CORSOrigins []string
	Now         func() time.Time
}

func NewRouter(d Deps) http.Handler {
	if d.Guard == nil {
		d.Guard = viewguard.Noop{}
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Backend == nil {
		d.Backend = backend.NewService(nil, backend.Availability{})
	}
	SetLogger(d.Logger)

	h := &Handler{
		forms:   d.Forms,
		backend: d.Backend,
		guard:   d.Guard,
		events:  d.Events,
		now:     d.Now,
	}

	origins := d.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(RequestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", visitHeader},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/ready", h.handleReady)
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Get("/forms", h.handleListForms)
			r.Post("/forms", h.handleCreateForm)
			r.Get("/forms/status/{status}", h.handleFormsByStatus)
			r.Get("/forms/{id}", h.handleGetForm)
			r.Put("/forms/{id}", h.handleEditForm)
			r.Patch("/forms/{id}", h.handlePatchForm)
			r.Delete("/forms/{id}", h.handleDeleteForm)
			r.Post("/forms/{id}/views", h.handleRecordView)
			r.With(RateLimitResponses(rate.Every(time.Minute/10), 3)).Post("/forms/{id}/responses", h.handleSubmitResponse)
			r.Get("/forms/{id}/responses", h.handleListResponses)
			r.Get("/forms/{id}/summary", h.handleFormSummary)
			r.Get("/stats", h.handleStats)
			r.Get("/categories", h.handleCategories)
			r.Get("/questions/template/{type}", h.handleQuestionTemplate)
		})

		r.Get("/health", h.handleBackendHealth)
		r.Get("/ping", h.handleBackendPing)
		r.Get("/status", h.handleBackendStatus)

		r.Route("/forms", func(r chi.Router) {
			r.Use(RequireBackend(h.backend, "Database not available - using frontend mock data"))
			r.Get("/", h.handleBackendListForms)
			r.Post("/", h.handleBackendCreateForm)
		})
		r.Route("/responses", func(r chi.Router) {
			r.Use(RequireBackend(h.backend, "Database not available - responses not persisted"))
			r.Get("/", h.handleBackendListResponses)
			r.Post("/", h.handleBackendCreateResponse)
		})
		r.Route("/categories", func(r chi.Router) {
			r.Use(RequireBackend(h.backend, "Database not available - using frontend mock data"))
			r.Get("/", h.handleBackendListCategories)
		})
		r.Route("/users", func(r chi.Router) {
			r.Use(RequireBackend(h.backend, "Database not available - running in demo mode"))
			r.Get("/", h.handleBackendListUsers)
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// handleReady reports ready in demo mode; with a backend it must answer a ping.
func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	avail := h.backend.Availability()
	if !avail.Available {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready", "backend": "demo"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.backend.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error":   "db_unavailable",
			"message": "database not ready",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ready", "backend": avail.Driver})
}
