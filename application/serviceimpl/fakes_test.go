package serviceimpl

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"taskmanager/domain/models"
)

// In-memory repository fakes. They honor the same contracts as the
// gorm implementations: (nil, nil) on a missed lookup, rows affected
// from Delete.

type fakeUserRepo struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ExistsByEmailOrUsername(_ context.Context, email, username string) (bool, error) {
	for _, user := range r.users {
		if user.Email == email || strings.EqualFold(user.Username, username) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*models.User, error) {
	users := make([]*models.User, 0, len(r.users))
	for _, user := range r.users {
		copied := *user
		users = append(users, &copied)
	}
	return users, nil
}

// failingUserRepo simulates a store outage on email lookups.
type failingUserRepo struct {
	*fakeUserRepo
}

func (r *failingUserRepo) GetByEmail(context.Context, string) (*models.User, error) {
	return nil, errors.New("connection refused")
}

type fakeTaskRepo struct {
	tasks map[uuid.UUID]*models.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uuid.UUID]*models.Task)}
}

func (r *fakeTaskRepo) Create(_ context.Context, task *models.Task) error {
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	copied := *task
	return &copied, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, task *models.Task) error {
	copied := *task
	r.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.tasks[id]; !ok {
		return 0, nil
	}
	delete(r.tasks, id)
	return 1, nil
}

func (r *fakeTaskRepo) List(_ context.Context, status *models.TaskStatus, assigneeID *uuid.UUID) ([]*models.Task, error) {
	tasks := make([]*models.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		if status != nil && task.Status != *status {
			continue
		}
		if assigneeID != nil && (task.AssigneeID == nil || *task.AssigneeID != *assigneeID) {
			continue
		}
		copied := *task
		tasks = append(tasks, &copied)
	}
	return tasks, nil
}

// recordingPublisher captures event names for assertions.
type recordingPublisher struct {
	events []string
}

func (p *recordingPublisher) TaskCreated(_ context.Context, _ *models.Task) {
	p.events = append(p.events, "created")
}

func (p *recordingPublisher) TaskUpdated(_ context.Context, _ *models.Task) {
	p.events = append(p.events, "updated")
}

func (p *recordingPublisher) TaskDeleted(_ context.Context, _ *models.Task) {
	p.events = append(p.events, "deleted")
}
