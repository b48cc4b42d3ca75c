package handlers

import (
	"taskmanager/domain/services"
)

// Services contains all the services needed for handlers.
type Services struct {
	AuthService services.AuthService
	TaskService services.TaskService
	UserService services.UserService
}

// Handlers contains all HTTP handlers.
type Handlers struct {
	AuthHandler *AuthHandler
	TaskHandler *TaskHandler
	UserHandler *UserHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies.
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		AuthHandler: NewAuthHandler(services.AuthService),
		TaskHandler: NewTaskHandler(services.TaskService),
		UserHandler: NewUserHandler(services.UserService),
	}
}
