package postgres

import (
	"context"

	"survey-builder/internal/domain/backend"
)

func (r *Repo) CreateForm(ctx context.Context, f *backend.FormRecord) error {
	query := `
        INSERT INTO survey_forms (id, title, category, status, payload, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.ExecContext(ctx, query,
		f.ID,
		f.Title,
		f.Category,
		f.Status,
		nullableJSON(f.Payload),
		f.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return backend.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *Repo) ListForms(ctx context.Context) ([]backend.FormRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, title, category, status, payload, created_at
        FROM survey_forms
        ORDER BY created_at DESC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := []backend.FormRecord{}
	for rows.Next() {
		var f backend.FormRecord
		var payload []byte
		if err := rows.Scan(&f.ID, &f.Title, &f.Category, &f.Status, &payload, &f.CreatedAt); err != nil {
			return nil, err
		}
		f.Payload = payload
		res = append(res, f)
	}
	return res, rows.Err()
}

func nullableJSON(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}
