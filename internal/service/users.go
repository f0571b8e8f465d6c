package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"demo/orderflow/internal/apperr"
	"demo/orderflow/internal/model"
	"demo/orderflow/internal/store"
	"demo/orderflow/internal/validate"

	"go.uber.org/zap"
)

const (
	msgUserNotFound   = "User not found."
	msgDuplicateEmail = "User with this email already exists."
)

type Users struct {
	repo store.UserRepository
	log  *zap.Logger
	now  func() time.Time
}

func NewUsers(repo store.UserRepository, log *zap.Logger) *Users {
	if log == nil {
		log = zap.NewNop()
	}
	return &Users{repo: repo, log: log, now: time.Now}
}

func (s *Users) CreateUser(ctx context.Context, req model.UserRequest) (model.User, error) {
	in, err := validate.UserCreate(req)
	if err != nil {
		return model.User{}, err
	}
	in.CreatedAt = s.now().UTC().Truncate(time.Second)

	u, err := s.repo.CreateUser(ctx, in)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return model.User{}, apperr.Conflict(msgDuplicateEmail)
		}
		return model.User{}, fmt.Errorf("create user: %w", err)
	}
	s.log.Info("user created", zap.Int64("user_id", u.ID))
	return u, nil
}

func (s *Users) GetUser(ctx context.Context, id int64) (model.User, error) {
	u, ok, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("get user: %w", err)
	}
	if !ok {
		return model.User{}, apperr.NotFound(msgUserNotFound)
	}
	return u, nil
}

func (s *Users) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *Users) UpdateUser(ctx context.Context, id int64, req model.UserRequest) (model.User, error) {
	if _, err := s.GetUser(ctx, id); err != nil {
		return model.User{}, err
	}

	upd, err := validate.UserUpdate(req)
	if err != nil {
		return model.User{}, err
	}

	u, ok, err := s.repo.UpdateUser(ctx, id, upd)
	switch {
	case errors.Is(err, store.ErrDuplicate):
		return model.User{}, apperr.Conflict(msgDuplicateEmail)
	case err != nil:
		return model.User{}, fmt.Errorf("update user: %w", err)
	case !ok:
		return model.User{}, apperr.NotFound(msgUserNotFound)
	}
	return u, nil
}

func (s *Users) DeleteUser(ctx context.Context, id int64) error {
	ok, err := s.repo.DeleteUser(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if !ok {
		return apperr.NotFound(msgUserNotFound)
	}
	return nil
}
