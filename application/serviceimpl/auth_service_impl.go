package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskmanager/domain/dto"
	"taskmanager/domain/models"
	"taskmanager/domain/repositories"
	"taskmanager/domain/services"
	"taskmanager/pkg/apperror"
	"taskmanager/pkg/config"
	"taskmanager/pkg/logger"
	"taskmanager/pkg/utils"
)

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	hasher   *utils.PasswordHasher
	jwtCfg   config.JWTConfig
}

func NewAuthService(userRepo repositories.UserRepository, hasher *utils.PasswordHasher, jwtCfg config.JWTConfig) services.AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		hasher:   hasher,
		jwtCfg:   jwtCfg,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	exists, err := s.userRepo.ExistsByEmailOrUsername(ctx, req.Email, req.Username)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to check existing user", "error", err)
		return nil, apperror.Internal(err)
	}
	if exists {
		logger.WarnContext(ctx, "Registration conflict", "email", req.Email, "username", req.Username)
		return nil, apperror.Conflict("Username or email already registered")
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return nil, apperror.Internal(err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         models.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to create user", "error", err)
		return nil, apperror.Internal(err)
	}

	token, err := utils.GenerateToken(user, s.jwtCfg)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate token", "user_id", user.ID, "error", err)
		return nil, apperror.Internal(err)
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID, "email", user.Email)

	return &dto.AuthResponse{Token: token, User: *dto.UserToUserResponse(user)}, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	// Unknown email and wrong password must be indistinguishable to
	// the caller.
	invalidCredentials := apperror.Unauthorized("Invalid email or password")

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load user", "email", req.Email, "error", err)
		return nil, apperror.Internal(err)
	}
	if user == nil {
		logger.WarnContext(ctx, "Login failed", "email", req.Email)
		return nil, invalidCredentials
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		logger.WarnContext(ctx, "Login failed", "email", req.Email)
		return nil, invalidCredentials
	}

	token, err := utils.GenerateToken(user, s.jwtCfg)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate token", "user_id", user.ID, "error", err)
		return nil, apperror.Internal(err)
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID, "email", user.Email)

	return &dto.AuthResponse{Token: token, User: *dto.UserToUserResponse(user)}, nil
}
