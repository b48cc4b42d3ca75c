package di

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"taskmanager/application/serviceimpl"
	"taskmanager/domain/ports"
	"taskmanager/domain/repositories"
	"taskmanager/domain/services"
	"taskmanager/infrastructure/messaging"
	"taskmanager/infrastructure/postgres"
	redispkg "taskmanager/infrastructure/redis"
	"taskmanager/interfaces/api/handlers"
	"taskmanager/pkg/config"
	"taskmanager/pkg/logger"
	"taskmanager/pkg/utils"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB            *gorm.DB
	RedisClient   *redispkg.Client
	RateLimiter   *redispkg.Limiter
	TaskPublisher *messaging.NATSTaskEventPublisher

	// Shared helpers
	PasswordHasher *utils.PasswordHasher

	// Repositories
	UserRepository repositories.UserRepository
	TaskRepository repositories.TaskRepository

	// Services
	AuthService services.AuthService
	TaskService services.TaskService
	UserService services.UserService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	logger.Info("Container initialized")
	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	return logger.Init(logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	})
}

func (c *Container) initInfrastructure() error {
	db, err := postgres.NewDatabase(c.Config.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	if err := postgres.Migrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	c.PasswordHasher = utils.NewPasswordHasher(c.Config.Auth.HashScheme)

	if c.Config.App.Seed {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := postgres.NewSeedService(db, c.PasswordHasher).Seed(ctx); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
	}

	// Redis and NATS are optional; the API runs without the login rate
	// limiter and task events when they are not configured.
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(c.Config.Redis)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		c.RedisClient = redisClient
		c.RateLimiter = redispkg.NewLimiter(redisClient, "ratelimit:auth:")
	} else {
		logger.Info("Redis not configured, rate limiting disabled")
	}

	if c.Config.NATS.URL != "" {
		publisher, err := messaging.NewNATSTaskEventPublisher(c.Config.NATS.URL)
		if err != nil {
			return fmt.Errorf("failed to connect to nats: %w", err)
		}
		c.TaskPublisher = publisher
	} else {
		logger.Info("NATS not configured, task events disabled")
	}

	return nil
}

func (c *Container) initRepositories() {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
}

func (c *Container) initServices() {
	// A nil interface value here keeps the service's publisher checks
	// meaningful when NATS is disabled.
	var events ports.TaskEventPublisher
	if c.TaskPublisher != nil {
		events = c.TaskPublisher
	}

	c.AuthService = serviceimpl.NewAuthService(c.UserRepository, c.PasswordHasher, c.Config.JWT)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, events)
	c.UserService = serviceimpl.NewUserService(c.UserRepository)
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetRateLimiter() *redispkg.Limiter {
	return c.RateLimiter
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		AuthService: c.AuthService,
		TaskService: c.TaskService,
		UserService: c.UserService,
	}
}

func (c *Container) Cleanup() error {
	if c.TaskPublisher != nil {
		c.TaskPublisher.Close()
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Error("Failed to close redis connection", "error", err)
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
