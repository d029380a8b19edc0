package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "renomester/internal/errors"
	"renomester/internal/model"
	"renomester/internal/repository"
)

// UserService handles user management. Users are created and edited by
// admins only and are never deleted in-app.
type UserService interface {
	Create(ctx context.Context, actor *model.User, name, email, password, role string) (*model.User, error)
	Update(ctx context.Context, actor *model.User, user *model.User, password string) (*model.User, error)
	Get(ctx context.Context, actor *model.User, id string) (*model.User, error)
	List(ctx context.Context, actor *model.User) ([]model.User, error)
}

type userService struct {
	users repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

// Create adds a user with a hashed password. Admin only.
func (s *userService) Create(ctx context.Context, actor *model.User, name, email, password, role string) (*model.User, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrAdminOnly
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, ErrUserAlreadyExists
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	if role != model.RoleAdmin {
		role = model.RoleUser
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: string(hashed),
	}
	if err := s.users.Upsert(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Update replaces a user by id, keeping the stored password hash unless a
// new password is given. Admin only.
func (s *userService) Update(ctx context.Context, actor *model.User, user *model.User, password string) (*model.User, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrAdminOnly
	}

	existing, err := s.users.FindByID(ctx, user.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if user.Role != model.RoleAdmin {
		user.Role = model.RoleUser
	}
	user.PasswordHash = existing.PasswordHash
	user.CreatedAt = existing.CreatedAt
	if password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hashed)
	}

	if err := s.users.Upsert(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// Get returns a user by id; admins may read anyone, users only themselves.
func (s *userService) Get(ctx context.Context, actor *model.User, id string) (*model.User, error) {
	if !actor.IsAdmin() && actor.ID != id {
		return nil, apperrors.ErrAdminOnly
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// List returns every user. Admin only.
func (s *userService) List(ctx context.Context, actor *model.User) ([]model.User, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrAdminOnly
	}
	return s.users.List(ctx)
}
