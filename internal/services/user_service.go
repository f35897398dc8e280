package services

import (
	"context"
	"errors"
	"time"

	apperrors "todo-api.com/todo-api/internal/errors"
	model "todo-api.com/todo-api/internal/models"
	repository "todo-api.com/todo-api/internal/repositories"
)

type UserService struct {
	users     *repository.UserRepository
	dbTimeout time.Duration
}

func NewUserService(users *repository.UserRepository, dbTimeout time.Duration) *UserService {
	return &UserService{
		users:     users,
		dbTimeout: dbTimeout,
	}
}

func (s *UserService) CreateUser(ctx context.Context, username, password string) (*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	user := &model.User{
		Username: username,
		Password: password,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	return s.users.List(ctx)
}

// DeleteUser removes the user and its tasks. Unknown ids map to
// ErrUserNotFound so the handler can answer 404.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}
	return nil
}
