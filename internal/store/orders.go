package store

import (
	"context"
	"errors"
	"fmt"

	"demo/orderflow/internal/model"

	"github.com/jackc/pgx/v5"
)

const selectOrder = `SELECT id, user_id, item, amount, status, created_at FROM orders`

// CreateOrder inserts the order and reads the row back inside the same
// transaction, so the caller always sees exactly what was stored.
func (r *Repo) CreateOrder(ctx context.Context, o model.NewOrder) (model.Order, error) {
	var out model.Order
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		var id int64
		err := tx.QueryRow(ctx, `
			INSERT INTO orders (user_id, item, amount, status, created_at)
			VALUES ($1,$2,$3,$4,$5)
			RETURNING id`, o.UserID, o.Item, o.Amount, o.Status, o.CreatedAt).Scan(&id)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		out, err = scanOrder(tx.QueryRow(ctx, selectOrder+` WHERE id=$1`, id))
		if err != nil {
			return fmt.Errorf("read back order %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}
	return out, nil
}

func (r *Repo) GetOrder(ctx context.Context, id int64) (model.Order, bool, error) {
	o, err := scanOrder(r.Pool.QueryRow(ctx, selectOrder+` WHERE id=$1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Order{}, false, nil
		}
		return model.Order{}, false, fmt.Errorf("get order %d: %w", id, err)
	}
	return o, true, nil
}

func (r *Repo) ListOrders(ctx context.Context) ([]model.Order, error) {
	rows, err := r.Pool.Query(ctx, selectOrder+` ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	out := make([]model.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return out, nil
}

// UpdateOrder writes every non-nil field of upd in one statement.
func (r *Repo) UpdateOrder(ctx context.Context, id int64, upd model.OrderUpdate) (model.Order, bool, error) {
	row := r.Pool.QueryRow(ctx, `
		UPDATE orders SET
		  status = COALESCE($1, status),
		  item   = COALESCE($2, item),
		  amount = COALESCE($3, amount)
		WHERE id=$4
		RETURNING id, user_id, item, amount, status, created_at`, upd.Status, upd.Item, upd.Amount, id)

	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Order{}, false, nil
		}
		return model.Order{}, false, fmt.Errorf("update order %d: %w", id, err)
	}
	return o, true, nil
}

// DeleteOrder removes the row and returns it as it was.
func (r *Repo) DeleteOrder(ctx context.Context, id int64) (model.Order, bool, error) {
	o, err := scanOrder(r.Pool.QueryRow(ctx, `
		DELETE FROM orders WHERE id=$1
		RETURNING id, user_id, item, amount, status, created_at`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Order{}, false, nil
		}
		return model.Order{}, false, fmt.Errorf("delete order %d: %w", id, err)
	}
	return o, true, nil
}

func scanOrder(s scanner) (model.Order, error) {
	var o model.Order
	if err := s.Scan(&o.ID, &o.UserID, &o.Item, &o.Amount, &o.Status, &o.CreatedAt); err != nil {
		return model.Order{}, err
	}
	o.CreatedAt = o.CreatedAt.UTC()
	return o, nil
}
