package postgres

import (
	"context"
	"strconv"

	"survey-builder/internal/domain/backend"
)

func (r *Repo) ListCategories(ctx context.Context) ([]backend.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := []backend.Category{}
	for rows.Next() {
		var id int64
		var c backend.Category
		if err := rows.Scan(&id, &c.Name); err != nil {
			return nil, err
		}
		c.ID = strconv.FormatInt(id, 10)
		res = append(res, c)
	}
	return res, rows.Err()
}

func (r *Repo) ListUsers(ctx context.Context) ([]backend.User, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, name, email, role, created_at
        FROM users
        ORDER BY id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := []backend.User{}
	for rows.Next() {
		var id int64
		var u backend.User
		if err := rows.Scan(&id, &u.Name, &u.Email, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		u.ID = strconv.FormatInt(id, 10)
		res = append(res, u)
	}
	return res, rows.Err()
}
