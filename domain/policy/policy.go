// Package policy holds the role-scoped authorization rules as pure
// functions over an Actor and the resource under access. Handlers gate
// every guarded operation through these before touching a service.
//
// Two different ownership fields are in play and must not be conflated:
// viewing and listing tasks is gated by the task's assignee, while
// updating is gated by the task's creator.
package policy

import (
	"github.com/google/uuid"

	"taskmanager/domain/models"
)

// Actor is the authenticated identity performing a request, extracted
// from a validated token. Construction fails closed: a token without a
// parseable user id and role never produces an Actor.
type Actor struct {
	UserID uuid.UUID
	Role   models.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// ListTasksScope returns the assignee filter the task list query must
// run with. USER actors are always confined to their own tasks: a
// requested filter for someone else is ignored and overridden. ADMIN
// actors get the requested filter verbatim (nil means unrestricted).
func ListTasksScope(actor Actor, requested *uuid.UUID) *uuid.UUID {
	if actor.IsAdmin() {
		return requested
	}
	self := actor.UserID
	return &self
}

// CanViewTask gates single-task reads by assignee.
func CanViewTask(actor Actor, task *models.Task) bool {
	if actor.IsAdmin() {
		return true
	}
	return task.AssigneeID != nil && *task.AssigneeID == actor.UserID
}

// CanCreateTask permits any authenticated actor; creation has no prior
// resource to own, and an arbitrary assignee is allowed.
func CanCreateTask(actor Actor) bool {
	return actor.Role == models.RoleAdmin || actor.Role == models.RoleUser
}

// CanUpdateTask gates updates by creator, not assignee.
func CanUpdateTask(actor Actor, task *models.Task) bool {
	if actor.IsAdmin() {
		return true
	}
	return task.CreatorID == actor.UserID
}

// CanDeleteTask has no ownership exception.
func CanDeleteTask(actor Actor) bool {
	return actor.IsAdmin()
}

// ListUsersTarget returns the single user the directory query is
// narrowed to, or nil for an unrestricted listing. USER actors are
// forced to themselves regardless of the requested id.
func ListUsersTarget(actor Actor, requested *uuid.UUID) *uuid.UUID {
	if actor.IsAdmin() {
		return requested
	}
	self := actor.UserID
	return &self
}

// CanListAllUsers guards the unrestricted directory listing. For USER
// actors ListUsersTarget never yields nil, so this is unreachable for
// them through normal routing; the check still holds on its own.
func CanListAllUsers(actor Actor) bool {
	return actor.IsAdmin()
}

// CanViewUser permits admins and self-lookups.
func CanViewUser(actor Actor, user *models.User) bool {
	if actor.IsAdmin() {
		return true
	}
	return user.ID == actor.UserID
}
