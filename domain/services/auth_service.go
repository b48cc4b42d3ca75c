package services

import (
	"context"

	"taskmanager/domain/dto"
)

type AuthService interface {
	// Register rejects duplicate emails and case-variant duplicate
	// usernames with a conflict error, then issues a token.
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	// Login returns the same authentication error for an unknown
	// email and a wrong password.
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}
