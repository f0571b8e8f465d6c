package store

import (
	"context"
	"fmt"

	"demo/orderflow/internal/model"

	"github.com/jackc/pgx/v5"
)

const selectNotification = `SELECT id, user_id, order_id, message, created_at FROM notifications`

func (r *Repo) CreateNotification(ctx context.Context, n model.NewNotification) (model.Notification, error) {
	var out model.Notification
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		var id int64
		err := tx.QueryRow(ctx, `
			INSERT INTO notifications (user_id, order_id, message, created_at)
			VALUES ($1,$2,$3,$4)
			RETURNING id`, n.UserID, n.OrderID, n.Message, n.CreatedAt).Scan(&id)
		if err != nil {
			return fmt.Errorf("insert notification: %w", err)
		}

		out, err = scanNotification(tx.QueryRow(ctx, selectNotification+` WHERE id=$1`, id))
		if err != nil {
			return fmt.Errorf("read back notification %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return model.Notification{}, err
	}
	return out, nil
}

func (r *Repo) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	rows, err := r.Pool.Query(ctx, selectNotification+` ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	out := make([]model.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}
	return out, nil
}

func scanNotification(s scanner) (model.Notification, error) {
	var n model.Notification
	if err := s.Scan(&n.ID, &n.UserID, &n.OrderID, &n.Message, &n.CreatedAt); err != nil {
		return model.Notification{}, err
	}
	n.CreatedAt = n.CreatedAt.UTC()
	return n, nil
}
