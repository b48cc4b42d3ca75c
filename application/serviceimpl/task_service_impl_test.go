package serviceimpl

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"taskmanager/domain/dto"
	"taskmanager/domain/models"
	"taskmanager/pkg/apperror"
)

func newTaskFixture() (*fakeTaskRepo, *recordingPublisher, *TaskServiceImpl) {
	repo := newFakeTaskRepo()
	events := &recordingPublisher{}
	svc := NewTaskService(repo, events)
	return repo, events, svc.(*TaskServiceImpl)
}

func createRequest(assignee uuid.UUID) *dto.CreateTaskRequest {
	return &dto.CreateTaskRequest{
		Title:       "Write release notes",
		Description: "Summarize the changes for the next release",
		Priority:    "HIGH",
		AssigneeID:  assignee,
	}
}

func TestCreateTaskStartsPending(t *testing.T) {
	_, events, svc := newTaskFixture()
	creator := uuid.New()
	assignee := uuid.New()

	task, err := svc.CreateTask(context.Background(), creator, createRequest(assignee))
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	if task.Status != models.StatusPending {
		t.Fatalf("new tasks must start PENDING, got %s", task.Status)
	}
	if task.Priority != models.PriorityHigh {
		t.Fatalf("priority = %s, want HIGH", task.Priority)
	}
	if task.CreatorID != creator {
		t.Fatal("creator must come from the authenticated actor, not the payload")
	}
	if task.AssigneeID == nil || *task.AssigneeID != assignee {
		t.Fatal("assignee not set")
	}
	if len(events.events) != 1 || events.events[0] != "created" {
		t.Fatalf("expected one created event, got %v", events.events)
	}
}

func TestCreateTaskCollectsAllViolations(t *testing.T) {
	_, events, svc := newTaskFixture()

	_, err := svc.CreateTask(context.Background(), uuid.New(), &dto.CreateTaskRequest{
		Title:       "",
		Description: strings.Repeat("x", 1001),
		Priority:    "SOMEDAY",
		AssigneeID:  uuid.Nil,
	})

	appErr, ok := apperror.As(err)
	if !ok || appErr.Kind != apperror.KindValidation {
		t.Fatalf("want validation error, got %v", err)
	}
	if len(appErr.Fields) != 4 {
		t.Fatalf("expected all 4 violations reported, got %d: %v", len(appErr.Fields), appErr.Fields)
	}
	if len(events.events) != 0 {
		t.Fatalf("no event on failed create, got %v", events.events)
	}
}

func TestCreateTaskAcceptsLowercaseEnumTokens(t *testing.T) {
	_, _, svc := newTaskFixture()

	req := createRequest(uuid.New())
	req.Priority = "urgent"

	task, err := svc.CreateTask(context.Background(), uuid.New(), req)
	if err != nil {
		t.Fatalf("lowercase priority rejected: %v", err)
	}
	if task.Priority != models.PriorityUrgent {
		t.Fatalf("priority = %s, want URGENT", task.Priority)
	}
}

func TestTextLimitsCountRunes(t *testing.T) {
	_, _, svc := newTaskFixture()

	// 200 multibyte runes exceed 200 bytes but stay within the limit.
	req := createRequest(uuid.New())
	req.Title = strings.Repeat("é", 200)

	if _, err := svc.CreateTask(context.Background(), uuid.New(), req); err != nil {
		t.Fatalf("200-rune title rejected: %v", err)
	}

	req = createRequest(uuid.New())
	req.Title = strings.Repeat("é", 201)

	_, err := svc.CreateTask(context.Background(), uuid.New(), req)
	if !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("201-rune title must fail validation, got %v", err)
	}
}

func TestUpdateTaskFullReplace(t *testing.T) {
	repo, events, svc := newTaskFixture()
	creator := uuid.New()

	task, err := svc.CreateTask(context.Background(), creator, createRequest(uuid.New()))
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	updated, err := svc.UpdateTask(context.Background(), task.ID, &dto.UpdateTaskRequest{
		Title:       "Write and publish release notes",
		Description: "Cover the breaking changes too",
		Status:      "IN_PROGRESS",
		Priority:    "URGENT",
		AssigneeID:  nil, // clears the assignment
	})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}

	if updated.Status != models.StatusInProgress || updated.Priority != models.PriorityUrgent {
		t.Fatalf("status/priority not replaced: %s/%s", updated.Status, updated.Priority)
	}
	if updated.AssigneeID != nil {
		t.Fatal("nil assignee must clear the assignment")
	}
	if updated.CreatorID != creator {
		t.Fatal("creator must never be rewritten")
	}
	if updated.UpdatedAt.Before(task.UpdatedAt) {
		t.Fatal("UpdatedAt must be refreshed")
	}

	stored, _ := repo.GetByID(context.Background(), task.ID)
	if stored.AssigneeID != nil {
		t.Fatal("cleared assignee must persist")
	}
	if len(events.events) != 2 || events.events[1] != "updated" {
		t.Fatalf("expected created then updated events, got %v", events.events)
	}
}

func TestUpdateTaskAllowsAnyStatusTransition(t *testing.T) {
	_, _, svc := newTaskFixture()

	task, err := svc.CreateTask(context.Background(), uuid.New(), createRequest(uuid.New()))
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	// No transition graph: COMPLETED may go straight back to PENDING.
	for _, status := range []string{"COMPLETED", "PENDING", "CANCELLED", "IN_PROGRESS"} {
		req := &dto.UpdateTaskRequest{
			Title:       task.Title,
			Description: task.Description,
			Status:      status,
			Priority:    "HIGH",
		}
		if _, err := svc.UpdateTask(context.Background(), task.ID, req); err != nil {
			t.Fatalf("transition to %s rejected: %v", status, err)
		}
	}
}

func TestUpdateTaskInvalidStatusLeavesTaskUnchanged(t *testing.T) {
	repo, _, svc := newTaskFixture()

	task, err := svc.CreateTask(context.Background(), uuid.New(), createRequest(uuid.New()))
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	_, err = svc.UpdateTask(context.Background(), task.ID, &dto.UpdateTaskRequest{
		Title:       "changed",
		Description: "changed",
		Status:      "DONE",
		Priority:    "HIGH",
	})
	if !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("want validation error, got %v", err)
	}

	stored, _ := repo.GetByID(context.Background(), task.ID)
	if stored.Title != task.Title || stored.Status != models.StatusPending {
		t.Fatal("failed update must not partially apply")
	}
}

func TestUpdateTaskUnknownID(t *testing.T) {
	_, _, svc := newTaskFixture()

	_, err := svc.UpdateTask(context.Background(), uuid.New(), &dto.UpdateTaskRequest{
		Title:       "t",
		Description: "d",
		Status:      "PENDING",
		Priority:    "LOW",
	})
	if !apperror.IsKind(err, apperror.KindNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestDeleteTaskReportsExistence(t *testing.T) {
	_, events, svc := newTaskFixture()

	task, err := svc.CreateTask(context.Background(), uuid.New(), createRequest(uuid.New()))
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	deleted, err := svc.DeleteTask(context.Background(), task.ID)
	if err != nil || !deleted {
		t.Fatalf("DeleteTask = %v, %v; want true, nil", deleted, err)
	}

	deleted, err = svc.DeleteTask(context.Background(), task.ID)
	if err != nil || deleted {
		t.Fatalf("second delete = %v, %v; want false, nil", deleted, err)
	}

	deleted, err = svc.DeleteTask(context.Background(), uuid.New())
	if err != nil || deleted {
		t.Fatalf("unknown id = %v, %v; want false, nil", deleted, err)
	}

	if len(events.events) != 2 || events.events[1] != "deleted" {
		t.Fatalf("expected created then deleted events, got %v", events.events)
	}
}

func TestListTasksFilters(t *testing.T) {
	_, _, svc := newTaskFixture()
	ctx := context.Background()
	creator := uuid.New()
	alice := uuid.New()
	bob := uuid.New()

	t1, _ := svc.CreateTask(ctx, creator, createRequest(alice))
	if _, err := svc.UpdateTask(ctx, t1.ID, &dto.UpdateTaskRequest{
		Title: t1.Title, Description: t1.Description, Status: "COMPLETED", Priority: "HIGH", AssigneeID: &alice,
	}); err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if _, err := svc.CreateTask(ctx, creator, createRequest(alice)); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if _, err := svc.CreateTask(ctx, creator, createRequest(bob)); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	all, err := svc.ListTasks(ctx, nil, nil)
	if err != nil || len(all) != 3 {
		t.Fatalf("unfiltered list: %d tasks, %v", len(all), err)
	}

	completed := models.StatusCompleted
	byStatus, _ := svc.ListTasks(ctx, &completed, nil)
	if len(byStatus) != 1 {
		t.Fatalf("status filter: got %d, want 1", len(byStatus))
	}

	byAssignee, _ := svc.ListTasks(ctx, nil, &alice)
	if len(byAssignee) != 2 {
		t.Fatalf("assignee filter: got %d, want 2", len(byAssignee))
	}

	pending := models.StatusPending
	both, _ := svc.ListTasks(ctx, &pending, &alice)
	if len(both) != 1 {
		t.Fatalf("combined filter: got %d, want 1", len(both))
	}
}

func TestServiceToleratesNilPublisher(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo, nil)

	task, err := svc.CreateTask(context.Background(), uuid.New(), createRequest(uuid.New()))
	if err != nil {
		t.Fatalf("CreateTask without publisher: %v", err)
	}
	if _, err := svc.DeleteTask(context.Background(), task.ID); err != nil {
		t.Fatalf("DeleteTask without publisher: %v", err)
	}
}
