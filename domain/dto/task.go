package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateTaskRequest requires an assignee: unassigned creation is
// rejected at validation even though the column itself is nullable.
// Status is not accepted on create; new tasks start PENDING.
type CreateTaskRequest struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"required,max=1000"`
	Priority    string    `json:"priority" validate:"required,taskpriority"`
	AssigneeID  uuid.UUID `json:"assigneeId" validate:"required"`
}

// UpdateTaskRequest is a full replace of the mutable fields, not a
// partial merge. A nil assignee clears the assignment.
type UpdateTaskRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"required,max=1000"`
	Status      string     `json:"status" validate:"required,taskstatus"`
	Priority    string     `json:"priority" validate:"required,taskpriority"`
	AssigneeID  *uuid.UUID `json:"assigneeId"`
}

type TaskResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	AssigneeID  *uuid.UUID `json:"assigneeId"`
	CreatorID   uuid.UUID  `json:"creatorId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
