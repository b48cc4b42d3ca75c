package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"taskmanager/domain/models"
	"taskmanager/domain/ports"
	"taskmanager/pkg/logger"
)

const (
	SubjectTaskCreated = "tasks.created"
	SubjectTaskUpdated = "tasks.updated"
	SubjectTaskDeleted = "tasks.deleted"
)

// TaskEvent is the payload published on task mutations.
type TaskEvent struct {
	Event      string     `json:"event"`
	TaskID     uuid.UUID  `json:"taskId"`
	Title      string     `json:"title"`
	Status     string     `json:"status"`
	Priority   string     `json:"priority"`
	AssigneeID *uuid.UUID `json:"assigneeId"`
	CreatorID  uuid.UUID  `json:"creatorId"`
	OccurredAt time.Time  `json:"occurredAt"`
}

// NATSTaskEventPublisher publishes task lifecycle events on core NATS
// subjects. Publishing is fire-and-forget: a failed publish is logged
// and never fails the mutation that triggered it.
type NATSTaskEventPublisher struct {
	conn *nats.Conn
}

func NewNATSTaskEventPublisher(url string) (*NATSTaskEventPublisher, error) {
	conn, err := nats.Connect(url,
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, err
	}

	logger.Info("NATS connected", "url", url)

	return &NATSTaskEventPublisher{conn: conn}, nil
}

var _ ports.TaskEventPublisher = (*NATSTaskEventPublisher)(nil)

func (p *NATSTaskEventPublisher) TaskCreated(ctx context.Context, task *models.Task) {
	p.publish(ctx, SubjectTaskCreated, "created", task)
}

func (p *NATSTaskEventPublisher) TaskUpdated(ctx context.Context, task *models.Task) {
	p.publish(ctx, SubjectTaskUpdated, "updated", task)
}

func (p *NATSTaskEventPublisher) TaskDeleted(ctx context.Context, task *models.Task) {
	p.publish(ctx, SubjectTaskDeleted, "deleted", task)
}

func (p *NATSTaskEventPublisher) publish(ctx context.Context, subject, event string, task *models.Task) {
	payload := TaskEvent{
		Event:      event,
		TaskID:     task.ID,
		Title:      task.Title,
		Status:     task.Status.String(),
		Priority:   task.Priority.String(),
		AssigneeID: task.AssigneeID,
		CreatorID:  task.CreatorID,
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to marshal task event", "subject", subject, "error", err)
		return
	}

	if err := p.conn.Publish(subject, data); err != nil {
		logger.WarnContext(ctx, "Failed to publish task event", "subject", subject, "task_id", task.ID, "error", err)
	}
}

func (p *NATSTaskEventPublisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}
