package services

import (
	"context"
	"time"

	apperrors "todo-api.com/todo-api/internal/errors"
	model "todo-api.com/todo-api/internal/models"
	repository "todo-api.com/todo-api/internal/repositories"
)

type TaskService struct {
	tasks     *repository.TaskRepository
	users     *repository.UserRepository
	dbTimeout time.Duration
}

func NewTaskService(
	tasks *repository.TaskRepository,
	users *repository.UserRepository,
	dbTimeout time.Duration,
) *TaskService {
	return &TaskService{
		tasks:     tasks,
		users:     users,
		dbTimeout: dbTimeout,
	}
}

// CreateTask creates a task owned by the named user. The creation date is
// always the server clock at insert; clients cannot supply it.
func (s *TaskService) CreateTask(
	ctx context.Context,
	username, name, note string,
	dueDate *time.Time,
	completed bool,
) (*model.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	task := &model.Task{
		Name:         name,
		Note:         note,
		CreationDate: time.Now().UTC(),
		DueDate:      dueDate,
		Completed:    completed,
		UserID:       user.ID,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// TasksForUser returns the named user and its tasks. A nil user with a nil
// error means the username is unknown; the handler answers with the
// sentinel payload in that case.
func (s *TaskService) TasksForUser(ctx context.Context, username string) (*model.User, []model.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, nil
	}

	tasks, err := s.tasks.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	return user, tasks, nil
}
