package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"survey-builder/internal/domain/form"
	"survey-builder/internal/metrics"
	"survey-builder/internal/platform/apperr"
)

const visitHeader = "X-Visit-ID"

type viewResponse struct {
	Views   int  `json:"views"`
	Counted bool `json:"counted"`
}

// @Summary     Search forms
// @Tags        forms
// @Produce     json
// @Param       status    query     string  false  "draft, upcoming, live, closed or all"
// @Param       category  query     string  false  "Category name or all"
// @Param       q         query     string  false  "Matches title, description and tags"
// @Success     200       {array}   form.Form
// @Failure     400       {object}  apperr.AppError
// @Router      /api/v1/forms [get]
func (h *Handler) handleListForms(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	status := form.Status(q.Get("status"))
	if status != "" && status != "all" && !status.Valid() {
		errorResponse(w, apperr.BadRequest("invalid_status", "unknown status "+string(status), nil))
		return
	}
	writeJSON(w, http.StatusOK, h.forms.Search(form.Filter{
		Status:   status,
		Category: q.Get("category"),
		Query:    q.Get("q"),
	}))
}

// @Summary     List forms with a lifecycle status
// @Tags        forms
// @Produce     json
// @Param       status  path      string  true  "draft, upcoming, live or closed"
// @Success     200     {array}   form.Form
// @Failure     400     {object}  apperr.AppError
// @Router      /api/v1/forms/status/{status} [get]
func (h *Handler) handleFormsByStatus(w http.ResponseWriter, r *http.Request) {
	status := form.Status(chi.URLParam(r, "status"))
	if !status.Valid() {
		errorResponse(w, apperr.BadRequest("invalid_status", "unknown status "+string(status), nil))
		return
	}
	writeJSON(w, http.StatusOK, h.forms.FormsByStatus(status))
}

// @Summary     Create a form
// @Description Status is derived from the date window at creation time.
// @Tags        forms
// @Accept      json
// @Produce     json
// @Param       request  body      form.DraftInput  true  "Form builder payload"
// @Success     201      {object}  form.Form
// @Failure     400      {object}  apperr.AppError
// @Router      /api/v1/forms [post]
func (h *Handler) handleCreateForm(w http.ResponseWriter, r *http.Request) {
	var in form.DraftInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid body", err))
		return
	}

	draft, err := form.ValidateDraft(in)
	if err != nil {
		errorResponse(w, err)
		return
	}

	created := h.forms.AddForm(draft)
	metrics.IncFormCreated(string(created.Status))
	log.Info("form created",
		zap.String("form_id", created.ID),
		zap.String("status", string(created.Status)),
	)
	writeJSON(w, http.StatusCreated, created)
}

// @Summary     Get a form
// @Tags        forms
// @Produce     json
// @Param       id   path      string  true  "Form ID"
// @Success     200  {object}  form.Form
// @Failure     404  {object}  apperr.AppError
// @Router      /api/v1/forms/{id} [get]
func (h *Handler) handleGetForm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	f, ok := h.forms.Get(id)
	if !ok {
		errorResponse(w, formNotFound(id))
		return
	}
	writeJSON(w, http.StatusOK, f)
}

// @Summary     Replace a form's builder fields
// @Description Runs the same checks as create. Status, counters and creation date are kept.
// @Tags        forms
// @Accept      json
// @Produce     json
// @Param       id       path      string           true  "Form ID"
// @Param       request  body      form.DraftInput  true  "Form builder payload"
// @Success     200      {object}  form.Form
// @Failure     400      {object}  apperr.AppError
// @Failure     404      {object}  apperr.AppError
// @Router      /api/v1/forms/{id} [put]
func (h *Handler) handleEditForm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in form.DraftInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid body", err))
		return
	}

	d, err := form.ValidateDraft(in)
	if err != nil {
		errorResponse(w, err)
		return
	}

	updated, ok := h.forms.UpdateForm(id, form.Patch{
		Title:       &d.Title,
		Description: &d.Description,
		Author:      &d.Author,
		Headline:    &d.Headline,
		StartDate:   &d.StartDate,
		EndDate:     &d.EndDate,
		Category:    &d.Category,
		Tags:        &d.Tags,
		Questions:   &d.Questions,
	})
	if !ok {
		errorResponse(w, formNotFound(id))
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// @Summary     Partially update a form
// @Description Only the fields present in the body are overwritten. Empty dates clear the window.
// @Tags        forms
// @Accept      json
// @Produce     json
// @Param       id       path      string      true  "Form ID"
// @Param       request  body      form.Patch  true  "Fields to overwrite"
// @Success     200      {object}  form.Form
// @Failure     400      {object}  apperr.AppError
// @Failure     404      {object}  apperr.AppError
// @Router      /api/v1/forms/{id} [patch]
func (h *Handler) handlePatchForm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var p form.Patch
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid body", err))
		return
	}
	if err := checkPatch(p); err != nil {
		errorResponse(w, err)
		return
	}

	updated, ok := h.forms.UpdateForm(id, p)
	if !ok {
		errorResponse(w, formNotFound(id))
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func checkPatch(p form.Patch) error {
	var problems []string
	if p.Status != nil && !p.Status.Valid() {
		problems = append(problems, "status "+string(*p.Status)+" is not a known status")
	}
	if p.StartDate != nil && *p.StartDate != "" {
		if _, ok := form.ParseDate(*p.StartDate); !ok {
			problems = append(problems, "startDate is not a valid date")
		}
	}
	if p.EndDate != nil && *p.EndDate != "" {
		if _, ok := form.ParseDate(*p.EndDate); !ok {
			problems = append(problems, "endDate is not a valid date")
		}
	}
	if p.Responses != nil && *p.Responses < 0 {
		problems = append(problems, "responses must not be negative")
	}
	if p.Views != nil && *p.Views < 0 {
		problems = append(problems, "views must not be negative")
	}
	if p.Questions != nil {
		for _, q := range *p.Questions {
			if !q.Type.Valid() {
				problems = append(problems, "question type "+string(q.Type)+" is not known")
			}
		}
	}
	if len(problems) > 0 {
		return &form.ValidationError{Problems: problems}
	}
	return nil
}

// @Summary     Delete a form
// @Tags        forms
// @Param       id   path  string  true  "Form ID"
// @Success     204
// @Failure     404  {object}  apperr.AppError
// @Router      /api/v1/forms/{id} [delete]
func (h *Handler) handleDeleteForm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.forms.DeleteForm(id) {
		errorResponse(w, formNotFound(id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary     Record a form view
// @Description A repeated X-Visit-ID for the same form is not counted again.
// @Tags        forms
// @Produce     json
// @Param       id          path      string  true   "Form ID"
// @Param       X-Visit-ID  header    string  false  "Page load identifier"
// @Success     200         {object}  viewResponse
// @Failure     404         {object}  apperr.AppError
// @Router      /api/v1/forms/{id}/views [post]
func (h *Handler) handleRecordView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	f, ok := h.forms.Get(id)
	if !ok {
		errorResponse(w, formNotFound(id))
		return
	}

	first, err := h.guard.First(r.Context(), id, r.Header.Get(visitHeader))
	if err != nil {
		// count the view rather than lose it when the guard is down
		log.Warn("view guard failed", zap.String("form_id", id), zap.Error(err))
		first = true
	}
	metrics.IncView(first)
	if !first {
		writeJSON(w, http.StatusOK, viewResponse{Views: f.Views, Counted: false})
		return
	}

	views, ok := h.forms.IncrementViews(id)
	if !ok {
		errorResponse(w, formNotFound(id))
		return
	}
	writeJSON(w, http.StatusOK, viewResponse{Views: views, Counted: true})
}

// @Summary     Dashboard statistics
// @Tags        forms
// @Produce     json
// @Success     200  {object}  form.Stats
// @Router      /api/v1/stats [get]
func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.forms.Stats(h.now()))
}

// @Summary     Known categories
// @Tags        forms
// @Produce     json
// @Success     200  {array}  string
// @Router      /api/v1/categories [get]
func (h *Handler) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, form.Categories())
}

// @Summary     Blank question of a type
// @Tags        forms
// @Produce     json
// @Param       type  path      string  true  "short, long, mcq, checkbox, dropdown or rating"
// @Success     200   {object}  form.Question
// @Failure     400   {object}  apperr.AppError
// @Router      /api/v1/questions/template/{type} [get]
func (h *Handler) handleQuestionTemplate(w http.ResponseWriter, r *http.Request) {
	t := form.QuestionType(chi.URLParam(r, "type"))
	if !t.Valid() {
		errorResponse(w, apperr.BadRequest("invalid_question_type", "unknown question type "+string(t), nil))
		return
	}
	writeJSON(w, http.StatusOK, form.NewQuestion(t))
}
