package api

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"survey-builder/internal/domain/backend"
	"survey-builder/internal/domain/form"
	"survey-builder/internal/platform/apperr"
)

func errorResponse(w http.ResponseWriter, err error) {
	appErr := mapError(err)
	if appErr.StatusCode() >= http.StatusInternalServerError {
		log.Error("request failed", zap.String("code", appErr.Code), zap.Error(err))
	}
	writeJSON(w, appErr.StatusCode(), appErr)
}

func mapError(err error) *apperr.AppError {
	if err == nil {
		return apperr.Internal("internal_error", "internal server error", nil)
	}

	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var draftErr *form.ValidationError
	if errors.As(err, &draftErr) {
		return apperr.BadRequest("invalid_form", "invalid form", err).WithDetails(draftErr.Problems...)
	}
	var subErr *form.SubmissionError
	if errors.As(err, &subErr) {
		return apperr.BadRequest("invalid_submission", "invalid submission", err).WithDetails(subErr.Problems...)
	}

	switch {
	case errors.Is(err, backend.ErrUnavailable):
		return apperr.Unavailable("backend_unavailable", "database not available - running in demo mode", err)
	case errors.Is(err, backend.ErrTitleRequired):
		return apperr.BadRequest("invalid_input", "title is required", err)
	case errors.Is(err, backend.ErrSurveyIDRequired):
		return apperr.BadRequest("invalid_input", "surveyId is required", err)
	case errors.Is(err, backend.ErrDuplicate):
		return apperr.Conflict("duplicate", "record already exists", err)
	default:
		return apperr.Internal("internal_error", http.StatusText(http.StatusInternalServerError), err)
	}
}

func formNotFound(id string) *apperr.AppError {
	return apperr.NotFound("form_not_found", "form "+id+" not found", nil)
}
