package api

import (
	"encoding/json"
	"net/http"
	"time"

	"survey-builder/internal/domain/backend"
	"survey-builder/internal/platform/apperr"
)

const setupHint = "Set BACKEND_DRIVER with DB_DSN or MONGO_URI to enable persistence"

// envelope is the response shape of the persistence surface under /api.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Setup   string `json:"setup,omitempty"`
}

type createRecordRequest struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Category string          `json:"category"`
	Status   string          `json:"status"`
	Payload  json.RawMessage `json:"payload"`
}

type createResponseRecordRequest struct {
	SurveyID string          `json:"surveyId"`
	Payload  json.RawMessage `json:"payload"`
}

func backendError(w http.ResponseWriter, err error) {
	appErr := mapError(err)
	env := envelope{Success: false, Message: appErr.Message}
	if appErr.StatusCode() == http.StatusServiceUnavailable {
		env.Setup = setupHint
	}
	writeJSON(w, appErr.StatusCode(), env)
}

// @Summary     Service health
// @Tags        backend
// @Produce     json
// @Success     200  {object}  map[string]any
// @Router      /api/health [get]
func (h *Handler) handleBackendHealth(w http.ResponseWriter, r *http.Request) {
	avail := h.backend.Availability()
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Survey API is running",
		"timestamp": h.now().UTC().Format(time.RFC3339),
		"database":  avail.Mode(),
		"driver":    avail.Driver,
		"connected": avail.Available,
	})
}

// @Summary     Liveness ping
// @Tags        backend
// @Produce     json
// @Success     200  {object}  map[string]string
// @Router      /api/ping [get]
func (h *Handler) handleBackendPing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message":  "pong",
		"database": h.backend.Availability().Mode(),
	})
}

// @Summary     Feature availability
// @Tags        backend
// @Produce     json
// @Success     200  {object}  map[string]any
// @Router      /api/status [get]
func (h *Handler) handleBackendStatus(w http.ResponseWriter, r *http.Request) {
	avail := h.backend.Availability()
	database, message := "demo-mode", "Running in demo mode - forms are kept in memory"
	if avail.Available {
		database, message = "connected", "All systems operational"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"status":   "operational",
		"database": database,
		"features": map[string]bool{
			"forms":       true,
			"responses":   true,
			"users":       avail.Available,
			"persistence": avail.Available,
		},
		"message": message,
	})
}

// @Summary     List persisted forms
// @Tags        backend
// @Produce     json
// @Success     200  {object}  envelope
// @Failure     503  {object}  envelope
// @Router      /api/forms [get]
func (h *Handler) handleBackendListForms(w http.ResponseWriter, r *http.Request) {
	forms, err := h.backend.ListForms(r.Context())
	if err != nil {
		backendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: forms})
}

// @Summary     Persist a form
// @Tags        backend
// @Accept      json
// @Produce     json
// @Param       request  body      createRecordRequest  true  "Form record"
// @Success     201      {object}  envelope
// @Failure     400      {object}  envelope
// @Failure     409      {object}  envelope
// @Failure     503      {object}  envelope
// @Router      /api/forms [post]
func (h *Handler) handleBackendCreateForm(w http.ResponseWriter, r *http.Request) {
	var req createRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		backendError(w, apperr.BadRequest("invalid_input", "invalid body", err))
		return
	}

	rec := &backend.FormRecord{
		ID:       req.ID,
		Title:    req.Title,
		Category: req.Category,
		Status:   req.Status,
		Payload:  req.Payload,
	}
	if err := h.backend.CreateForm(r.Context(), rec); err != nil {
		backendError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{Success: true, Message: "Form created", Data: rec})
}

// @Summary     List persisted responses
// @Tags        backend
// @Produce     json
// @Param       surveyId  query     string  false  "Only responses of this survey"
// @Success     200       {object}  envelope
// @Failure     503       {object}  envelope
// @Router      /api/responses [get]
func (h *Handler) handleBackendListResponses(w http.ResponseWriter, r *http.Request) {
	responses, err := h.backend.ListResponses(r.Context(), r.URL.Query().Get("surveyId"))
	if err != nil {
		backendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: responses})
}

// @Summary     Persist a response
// @Tags        backend
// @Accept      json
// @Produce     json
// @Param       request  body      createResponseRecordRequest  true  "Response record"
// @Success     201      {object}  envelope
// @Failure     400      {object}  envelope
// @Failure     503      {object}  envelope
// @Router      /api/responses [post]
func (h *Handler) handleBackendCreateResponse(w http.ResponseWriter, r *http.Request) {
	var req createResponseRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		backendError(w, apperr.BadRequest("invalid_input", "invalid body", err))
		return
	}

	rec := &backend.ResponseRecord{SurveyID: req.SurveyID, Payload: req.Payload}
	if err := h.backend.CreateResponse(r.Context(), rec); err != nil {
		backendError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{Success: true, Message: "Response recorded", Data: rec})
}

// @Summary     List persisted categories
// @Tags        backend
// @Produce     json
// @Success     200  {object}  envelope
// @Failure     503  {object}  envelope
// @Router      /api/categories [get]
func (h *Handler) handleBackendListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.backend.ListCategories(r.Context())
	if err != nil {
		backendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: categories})
}

// @Summary     List users
// @Tags        backend
// @Produce     json
// @Success     200  {object}  envelope
// @Failure     503  {object}  envelope
// @Router      /api/users [get]
func (h *Handler) handleBackendListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.backend.ListUsers(r.Context())
	if err != nil {
		backendError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: users})
}
