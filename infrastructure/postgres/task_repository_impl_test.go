package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"taskmanager/domain/models"
)

func seedTask(t *testing.T, repo *TaskRepositoryImpl, status models.TaskStatus, assignee *uuid.UUID) *models.Task {
	t.Helper()
	now := time.Now().UTC()
	task := &models.Task{
		ID:          uuid.New(),
		Title:       "task",
		Description: "description",
		Status:      status,
		Priority:    models.PriorityMedium,
		AssigneeID:  assignee,
		CreatorID:   uuid.New(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := repo.Create(context.Background(), task); err != nil {
		t.Fatalf("create task: %v", err)
	}
	return task
}

func TestTaskRepositoryGetByID(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t)).(*TaskRepositoryImpl)
	ctx := context.Background()

	assignee := uuid.New()
	created := seedTask(t, repo, models.StatusPending, &assignee)

	task, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if task == nil || task.ID != created.ID {
		t.Fatalf("GetByID returned %+v", task)
	}
	if task.AssigneeID == nil || *task.AssigneeID != assignee {
		t.Fatalf("assignee not persisted: %+v", task.AssigneeID)
	}

	missing, err := repo.GetByID(ctx, uuid.New())
	if err != nil || missing != nil {
		t.Fatalf("miss = %+v, %v; want nil, nil", missing, err)
	}
}

func TestTaskRepositoryUpdateClearsAssignee(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t)).(*TaskRepositoryImpl)
	ctx := context.Background()

	assignee := uuid.New()
	task := seedTask(t, repo, models.StatusPending, &assignee)

	task.Status = models.StatusInProgress
	task.AssigneeID = nil
	task.UpdatedAt = time.Now().UTC()

	if err := repo.Update(ctx, task); err != nil {
		t.Fatalf("Update: %v", err)
	}

	stored, err := repo.GetByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Status != models.StatusInProgress {
		t.Fatalf("status = %s, want IN_PROGRESS", stored.Status)
	}
	if stored.AssigneeID != nil {
		t.Fatalf("assignee must be cleared, got %v", stored.AssigneeID)
	}
}

func TestTaskRepositoryDeleteRowsAffected(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t)).(*TaskRepositoryImpl)
	ctx := context.Background()

	task := seedTask(t, repo, models.StatusPending, nil)

	rows, err := repo.Delete(ctx, task.ID)
	if err != nil || rows != 1 {
		t.Fatalf("Delete = %d, %v; want 1, nil", rows, err)
	}

	rows, err = repo.Delete(ctx, task.ID)
	if err != nil || rows != 0 {
		t.Fatalf("second Delete = %d, %v; want 0, nil", rows, err)
	}
}

func TestTaskRepositoryListFilters(t *testing.T) {
	repo := NewTaskRepository(newTestDB(t)).(*TaskRepositoryImpl)
	ctx := context.Background()

	alice := uuid.New()
	bob := uuid.New()

	seedTask(t, repo, models.StatusPending, &alice)
	seedTask(t, repo, models.StatusCompleted, &alice)
	seedTask(t, repo, models.StatusPending, &bob)
	seedTask(t, repo, models.StatusPending, nil)

	all, err := repo.List(ctx, nil, nil)
	if err != nil || len(all) != 4 {
		t.Fatalf("unfiltered: %d, %v; want 4", len(all), err)
	}

	pending := models.StatusPending
	byStatus, err := repo.List(ctx, &pending, nil)
	if err != nil || len(byStatus) != 3 {
		t.Fatalf("status filter: %d, %v; want 3", len(byStatus), err)
	}

	byAssignee, err := repo.List(ctx, nil, &alice)
	if err != nil || len(byAssignee) != 2 {
		t.Fatalf("assignee filter: %d, %v; want 2", len(byAssignee), err)
	}

	both, err := repo.List(ctx, &pending, &alice)
	if err != nil || len(both) != 1 {
		t.Fatalf("combined filter: %d, %v; want 1", len(both), err)
	}
}
