package service

import (
	"context"
	"errors"
	"time"

	"github.com/farhan7479/taskflow/internal/domain"
	"github.com/farhan7479/taskflow/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskService struct {
	taskRepo repository.TaskRepository
}

func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

type CreateTaskInput struct {
	Title       string
	Description *string
	Status      *string
}

// UpdateTaskInput carries partial-update fields. A nil pointer means the
// field was absent from the request and keeps its prior value.
// DescriptionSet distinguishes an explicit JSON null (clear the description)
// from an absent key.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Status         *string
}

func (s *TaskService) List(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	return s.taskRepo.GetByUserID(ctx, userID)
}

// Get fetches a task for the given requester. Existence is checked before
// ownership: a non-owner probing a real task id gets forbidden, not
// not-found.
func (s *TaskService) Get(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	if task.UserID != userID {
		return nil, domain.ErrTaskForbidden
	}
	return task, nil
}

func (s *TaskService) Create(ctx context.Context, userID uuid.UUID, input CreateTaskInput) (*domain.Task, error) {
	if input.Title == "" {
		return nil, domain.NewValidationError("title is required")
	}

	status := domain.TaskStatusTodo
	if input.Status != nil {
		parsed, err := domain.ParseTaskStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	task := &domain.Task{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		// Owner is always the authenticated requester; any client-supplied
		// value is ignored.
		UserID:    userID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, userID, taskID uuid.UUID, input UpdateTaskInput) (*domain.Task, error) {
	task, err := s.Get(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, domain.NewValidationError("title cannot be empty")
		}
		task.Title = *input.Title
	}
	if input.DescriptionSet {
		task.Description = input.Description
	}
	if input.Status != nil {
		status, err := domain.ParseTaskStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		task.Status = status
	}

	task.UpdatedAt = time.Now()
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	if _, err := s.Get(ctx, userID, taskID); err != nil {
		return err
	}
	return s.taskRepo.Delete(ctx, taskID)
}
