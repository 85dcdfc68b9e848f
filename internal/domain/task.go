package domain

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// ParseTaskStatus validates a client-supplied status value. Any status may
// transition to any other, so this is the only check a status ever needs.
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch TaskStatus(s) {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return TaskStatus(s), nil
	}
	return "", NewValidationError("status must be one of TODO, IN_PROGRESS, DONE")
}

type Task struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	Title       string     `json:"title" gorm:"not null"`
	Description *string    `json:"description"`
	Status      TaskStatus `json:"status" gorm:"type:varchar(20);not null;default:'TODO'"`
	UserID      uuid.UUID  `json:"userId" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
