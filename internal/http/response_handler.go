package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"survey-builder/internal/domain/form"
	"survey-builder/internal/platform/apperr"
	"survey-builder/internal/worker"
)

type submitResponseRequest struct {
	RespondentID string              `json:"respondentId"`
	Responses    []form.AnswerRecord `json:"responses"`
	TimeTaken    int                 `json:"timeTaken"`
}

// @Summary     Submit a survey response
// @Description Required questions must be answered and choices must match the question's options.
// @Tags        responses
// @Accept      json
// @Produce     json
// @Param       id       path      string                 true  "Form ID"
// @Param       request  body      submitResponseRequest  true  "Answers"
// @Success     201      {object}  form.SurveyResponse
// @Failure     400      {object}  apperr.AppError
// @Failure     404      {object}  apperr.AppError
// @Failure     429      {object}  apperr.AppError
// @Router      /api/v1/forms/{id}/responses [post]
func (h *Handler) handleSubmitResponse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req submitResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid body", err))
		return
	}

	sub := form.Submission{
		SurveyID:     id,
		RespondentID: req.RespondentID,
		Responses:    req.Responses,
		TimeTaken:    req.TimeTaken,
	}

	resp, ok, err := h.forms.SubmitChecked(sub, form.ValidateSubmission)
	if !ok {
		errorResponse(w, formNotFound(id))
		return
	}
	if err != nil {
		errorResponse(w, err)
		return
	}

	select {
	case h.events <- worker.ResponseEvent{
		SurveyID:   id,
		ResponseID: resp.ID,
		Answers:    len(resp.Responses),
		TimeTaken:  resp.TimeTaken,
	}:
	default:
		log.Warn("response event dropped", zap.String("form_id", id), zap.String("response_id", resp.ID))
	}

	writeJSON(w, http.StatusCreated, resp)
}

// @Summary     List responses of a form
// @Tags        responses
// @Produce     json
// @Param       id   path      string  true  "Form ID"
// @Success     200  {array}   form.SurveyResponse
// @Failure     404  {object}  apperr.AppError
// @Router      /api/v1/forms/{id}/responses [get]
func (h *Handler) handleListResponses(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.forms.Get(id); !ok {
		errorResponse(w, formNotFound(id))
		return
	}
	writeJSON(w, http.StatusOK, h.forms.Responses(id))
}

// @Summary     Per-question answer summary
// @Tags        responses
// @Produce     json
// @Param       id   path      string  true  "Form ID"
// @Success     200  {object}  form.Summary
// @Failure     404  {object}  apperr.AppError
// @Router      /api/v1/forms/{id}/summary [get]
func (h *Handler) handleFormSummary(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	f, ok := h.forms.Get(id)
	if !ok {
		errorResponse(w, formNotFound(id))
		return
	}
	writeJSON(w, http.StatusOK, form.Summarize(f, h.forms.Responses(id)))
}
