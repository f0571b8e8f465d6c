package store

import (
	"context"
	"errors"
	"fmt"

	"demo/orderflow/internal/model"

	"github.com/jackc/pgx/v5"
)

const selectUser = `SELECT id, name, email, created_at FROM users`

func (r *Repo) CreateUser(ctx context.Context, u model.NewUser) (model.User, error) {
	var out model.User
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		var id int64
		err := tx.QueryRow(ctx, `
			INSERT INTO users (name, email, created_at)
			VALUES ($1,$2,$3)
			RETURNING id`, u.Name, u.Email, u.CreatedAt).Scan(&id)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicate
			}
			return fmt.Errorf("insert user: %w", err)
		}

		out, err = scanUser(tx.QueryRow(ctx, selectUser+` WHERE id=$1`, id))
		if err != nil {
			return fmt.Errorf("read back user %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return model.User{}, err
	}
	return out, nil
}

func (r *Repo) GetUser(ctx context.Context, id int64) (model.User, bool, error) {
	u, err := scanUser(r.Pool.QueryRow(ctx, selectUser+` WHERE id=$1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, false, nil
		}
		return model.User{}, false, fmt.Errorf("get user %d: %w", id, err)
	}
	return u, true, nil
}

func (r *Repo) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := r.Pool.Query(ctx, selectUser+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	out := make([]model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return out, nil
}

func (r *Repo) UpdateUser(ctx context.Context, id int64, upd model.UserUpdate) (model.User, bool, error) {
	row := r.Pool.QueryRow(ctx, `
		UPDATE users SET
		  name  = COALESCE($1, name),
		  email = COALESCE($2, email)
		WHERE id=$3
		RETURNING id, name, email, created_at`, upd.Name, upd.Email, id)

	u, err := scanUser(row)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return model.User{}, false, nil
		case isUniqueViolation(err):
			return model.User{}, false, ErrDuplicate
		}
		return model.User{}, false, fmt.Errorf("update user %d: %w", id, err)
	}
	return u, true, nil
}

func (r *Repo) DeleteUser(ctx context.Context, id int64) (bool, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return false, fmt.Errorf("delete user %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanUser(s scanner) (model.User, error) {
	var u model.User
	if err := s.Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt); err != nil {
		return model.User{}, err
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return u, nil
}
