package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskmanager/domain/models"
	"taskmanager/pkg/logger"
	"taskmanager/pkg/utils"
)

// SeedService inserts a demo admin and user plus a handful of tasks so
// a fresh database is immediately usable. It is a no-op when the users
// table already has rows.
type SeedService struct {
	db     *gorm.DB
	hasher *utils.PasswordHasher
}

func NewSeedService(db *gorm.DB, hasher *utils.PasswordHasher) *SeedService {
	return &SeedService{db: db, hasher: hasher}
}

func (s *SeedService) Seed(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()

	adminHash, err := s.hasher.Hash("Admin123!")
	if err != nil {
		return err
	}
	userHash, err := s.hasher.Hash("User123!")
	if err != nil {
		return err
	}

	admin := &models.User{
		ID:           uuid.New(),
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: adminHash,
		Role:         models.RoleAdmin,
		CreatedAt:    now.AddDate(0, 0, -30),
	}
	user := &models.User{
		ID:           uuid.New(),
		Username:     "user",
		Email:        "user@example.com",
		PasswordHash: userHash,
		Role:         models.RoleUser,
		CreatedAt:    now.AddDate(0, 0, -25),
	}

	if err := s.db.WithContext(ctx).Create([]*models.User{admin, user}).Error; err != nil {
		return err
	}

	tasks := []*models.Task{
		{
			ID:          uuid.New(),
			Title:       "Setup Development Environment",
			Description: "Configure the development environment with all necessary tools and dependencies",
			Status:      models.StatusCompleted,
			Priority:    models.PriorityHigh,
			AssigneeID:  &admin.ID,
			CreatorID:   admin.ID,
			CreatedAt:   now.AddDate(0, 0, -20),
			UpdatedAt:   now.AddDate(0, 0, -15),
		},
		{
			ID:          uuid.New(),
			Title:       "Implement User Authentication",
			Description: "Create JWT-based authentication system with login and registration endpoints",
			Status:      models.StatusCompleted,
			Priority:    models.PriorityHigh,
			AssigneeID:  &admin.ID,
			CreatorID:   admin.ID,
			CreatedAt:   now.AddDate(0, 0, -18),
			UpdatedAt:   now.AddDate(0, 0, -12),
		},
		{
			ID:          uuid.New(),
			Title:       "Design Database Schema",
			Description: "Create the data model and migrations for the task management system",
			Status:      models.StatusInProgress,
			Priority:    models.PriorityMedium,
			AssigneeID:  &user.ID,
			CreatorID:   admin.ID,
			CreatedAt:   now.AddDate(0, 0, -15),
			UpdatedAt:   now.AddDate(0, 0, -5),
		},
		{
			ID:          uuid.New(),
			Title:       "Create Task CRUD Operations",
			Description: "Implement Create, Read, Update, Delete operations for task management",
			Status:      models.StatusInProgress,
			Priority:    models.PriorityHigh,
			AssigneeID:  &user.ID,
			CreatorID:   admin.ID,
			CreatedAt:   now.AddDate(0, 0, -12),
			UpdatedAt:   now.AddDate(0, 0, -3),
		},
		{
			ID:          uuid.New(),
			Title:       "Implement Task Filtering",
			Description: "Add filtering capabilities by status, priority, and assignee",
			Status:      models.StatusCompleted,
			Priority:    models.PriorityMedium,
			AssigneeID:  &user.ID,
			CreatorID:   admin.ID,
			CreatedAt:   now.AddDate(0, 0, -8),
			UpdatedAt:   now.AddDate(0, 0, -8),
		},
		{
			ID:          uuid.New(),
			Title:       "Add Task Comments Feature",
			Description: "Allow users to add comments to tasks for better collaboration",
			Status:      models.StatusPending,
			Priority:    models.PriorityLow,
			AssigneeID:  nil,
			CreatorID:   admin.ID,
			CreatedAt:   now.AddDate(0, 0, -6),
			UpdatedAt:   now.AddDate(0, 0, -6),
		},
		{
			ID:          uuid.New(),
			Title:       "Implement Email Notifications",
			Description: "Send email notifications when tasks are assigned or status changes",
			Status:      models.StatusPending,
			Priority:    models.PriorityLow,
			AssigneeID:  &user.ID,
			CreatorID:   admin.ID,
			CreatedAt:   now.AddDate(0, 0, -3),
			UpdatedAt:   now.AddDate(0, 0, -3),
		},
	}

	if err := s.db.WithContext(ctx).Create(tasks).Error; err != nil {
		return err
	}

	logger.Info("Seed data created", "users", 2, "tasks", len(tasks))
	return nil
}
