package postgres

import (
	"context"
	"database/sql"

	"survey-builder/internal/domain/backend"
)

func (r *Repo) CreateResponse(ctx context.Context, rr *backend.ResponseRecord) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO survey_responses (id, survey_id, payload, submitted_at)
        VALUES ($1, $2, $3, $4)
    `, rr.ID, rr.SurveyID, nullableJSON(rr.Payload), rr.SubmittedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return backend.ErrDuplicate
		}
		return err
	}
	return nil
}

// ListResponses returns responses for surveyID, or every response when it is empty.
func (r *Repo) ListResponses(ctx context.Context, surveyID string) ([]backend.ResponseRecord, error) {
	query := `
        SELECT id, survey_id, payload, submitted_at
        FROM survey_responses
    `
	var rows *sql.Rows
	var err error

	if surveyID != "" {
		query += " WHERE survey_id = $1 ORDER BY submitted_at"
		rows, err = r.db.QueryContext(ctx, query, surveyID)
	} else {
		query += " ORDER BY submitted_at"
		rows, err = r.db.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := []backend.ResponseRecord{}
	for rows.Next() {
		var rr backend.ResponseRecord
		var payload []byte
		if err := rows.Scan(&rr.ID, &rr.SurveyID, &payload, &rr.SubmittedAt); err != nil {
			return nil, err
		}
		rr.Payload = payload
		res = append(res, rr)
	}
	return res, rows.Err()
}
