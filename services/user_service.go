package services

import (
	"context"
	"errors"
	"storefront-api/models"
	"storefront-api/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService defines the interface for user business logic.
type UserService interface {
	GetAll(ctx context.Context) ([]models.UserResponse, *ServiceError)
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserResponse, *ServiceError)
	Create(ctx context.Context, req *models.CreateUserRequest) (*models.UserResponse, *ServiceError)
	Update(ctx context.Context, id uuid.UUID, req *models.UpdateUserRequest) (*models.UserResponse, *ServiceError)
	Delete(ctx context.Context, id uuid.UUID) *ServiceError
}

type userServiceImpl struct {
	repo   repository.UserRepository
	logger *zap.Logger
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository, logger *zap.Logger) UserService {
	return &userServiceImpl{repo: repo, logger: logger}
}

func (s *userServiceImpl) GetAll(ctx context.Context) ([]models.UserResponse, *ServiceError) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list users", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch users"}
	}
	out := make([]models.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, users[i].ToResponse())
	}
	return out, nil
}

func (s *userServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.UserResponse, *ServiceError) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "User not found"}
		}
		s.logger.Error("Failed to fetch user", zap.String("id", id.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch user"}
	}
	resp := user.ToResponse()
	return &resp, nil
}

// Create stores a new user. The raw password is bcrypt-hashed and never
// persisted or returned.
func (s *userServiceImpl) Create(ctx context.Context, req *models.CreateUserRequest) (*models.UserResponse, *ServiceError) {
	if taken, err := s.repo.ExistsByEmail(ctx, req.Email); err != nil {
		s.logger.Error("Email uniqueness check failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create user"}
	} else if taken {
		return nil, &ServiceError{StatusCode: 409, Message: "Email is already in use"}
	}

	if taken, err := s.repo.ExistsByUsername(ctx, req.Username); err != nil {
		s.logger.Error("Username uniqueness check failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create user"}
	} else if taken {
		return nil, &ServiceError{StatusCode: 409, Message: "Username is already taken"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create user"}
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if isDuplicateErr(err) {
			return nil, &ServiceError{StatusCode: 409, Message: "Username or email is already in use"}
		}
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create user"}
	}

	s.logger.Info("User created", zap.String("id", user.ID.String()), zap.String("username", user.Username))
	resp := user.ToResponse()
	return &resp, nil
}

// Update applies a partial patch. Uniqueness is re-checked only when the
// email or username actually changes; the password is re-hashed only when
// a new one is supplied.
func (s *userServiceImpl) Update(ctx context.Context, id uuid.UUID, req *models.UpdateUserRequest) (*models.UserResponse, *ServiceError) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "User not found"}
		}
		s.logger.Error("Failed to fetch user", zap.String("id", id.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update user"}
	}

	if req.Email != nil && *req.Email != user.Email {
		if taken, err := s.repo.ExistsByEmail(ctx, *req.Email); err != nil {
			s.logger.Error("Email uniqueness check failed", zap.Error(err))
			return nil, &ServiceError{StatusCode: 500, Message: "Failed to update user"}
		} else if taken {
			return nil, &ServiceError{StatusCode: 409, Message: "Email is already in use"}
		}
		user.Email = *req.Email
	}

	if req.Username != nil && *req.Username != user.Username {
		if taken, err := s.repo.ExistsByUsername(ctx, *req.Username); err != nil {
			s.logger.Error("Username uniqueness check failed", zap.Error(err))
			return nil, &ServiceError{StatusCode: 500, Message: "Failed to update user"}
		} else if taken {
			return nil, &ServiceError{StatusCode: 409, Message: "Username is already taken"}
		}
		user.Username = *req.Username
	}

	if req.Role != nil {
		user.Role = *req.Role
	}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error("Failed to hash password", zap.Error(err))
			return nil, &ServiceError{StatusCode: 500, Message: "Failed to update user"}
		}
		user.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if isDuplicateErr(err) {
			return nil, &ServiceError{StatusCode: 409, Message: "Username or email is already in use"}
		}
		s.logger.Error("Failed to update user", zap.String("id", id.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update user"}
	}

	resp := user.ToResponse()
	return &resp, nil
}

// Delete removes the user. A user still referenced by products, reviews
// or orders is protected at the database level and surfaces as a storage
// failure.
func (s *userServiceImpl) Delete(ctx context.Context, id uuid.UUID) *ServiceError {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ServiceError{StatusCode: 404, Message: "User not found"}
		}
		s.logger.Error("Failed to delete user", zap.String("id", id.String()), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to delete user"}
	}
	s.logger.Info("User deleted", zap.String("id", id.String()))
	return nil
}
