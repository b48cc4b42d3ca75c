package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaskStatus values. There is no enforced transition graph: an update may
// replace any status with any other enumerated value. Parsing an unknown
// token is an error, never a clamp to a default.
type TaskStatus string

const (
	StatusPending    TaskStatus = "PENDING"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusCompleted  TaskStatus = "COMPLETED"
	StatusCancelled  TaskStatus = "CANCELLED"
)

func ParseTaskStatus(s string) (TaskStatus, error) {
	switch strings.ToUpper(s) {
	case string(StatusPending):
		return StatusPending, nil
	case string(StatusInProgress):
		return StatusInProgress, nil
	case string(StatusCompleted):
		return StatusCompleted, nil
	case string(StatusCancelled):
		return StatusCancelled, nil
	}
	return "", fmt.Errorf("invalid task status %q", s)
}

func (s TaskStatus) String() string {
	return string(s)
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
	PriorityUrgent TaskPriority = "URGENT"
)

func ParseTaskPriority(s string) (TaskPriority, error) {
	switch strings.ToUpper(s) {
	case string(PriorityLow):
		return PriorityLow, nil
	case string(PriorityMedium):
		return PriorityMedium, nil
	case string(PriorityHigh):
		return PriorityHigh, nil
	case string(PriorityUrgent):
		return PriorityUrgent, nil
	}
	return "", fmt.Errorf("invalid task priority %q", s)
}

func (p TaskPriority) String() string {
	return string(p)
}

// Task rows reference their assignee softly: AssigneeID may be nil and is
// not a foreign key with cascade semantics. CreatorID is set once at
// creation and never rewritten.
type Task struct {
	ID          uuid.UUID    `gorm:"primaryKey;type:uuid"`
	Title       string       `gorm:"size:200;not null"`
	Description string       `gorm:"size:1000;not null"`
	Status      TaskStatus   `gorm:"type:varchar(20);not null;default:'PENDING'"`
	Priority    TaskPriority `gorm:"type:varchar(10);not null;default:'MEDIUM'"`
	AssigneeID  *uuid.UUID   `gorm:"type:uuid;index"`
	CreatorID   uuid.UUID    `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Task) TableName() string {
	return "tasks"
}
