package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"toolroom-backend/internal/domain"
	"toolroom-backend/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.Validationf("name is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, domain.Validationf("email is required")
	}
	if len(password) < 6 {
		return nil, domain.Validationf("password must be at least 6 characters")
	}
	if role == "" {
		role = domain.RoleEmployee
	}
	if !domain.ValidRole(role) {
		return nil, domain.Validationf("unknown role %q", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        strings.ToLower(email),
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) UpdateUser(ctx context.Context, id int64, name, email string, role domain.Role) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		user.Name = name
	}
	if email != "" {
		user.Email = strings.ToLower(email)
	}
	if role != "" {
		if !domain.ValidRole(role) {
			return nil, domain.Validationf("unknown role %q", role)
		}
		user.Role = role
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser hard-deletes the user. Past transactions keep their user_id;
// list views render "Unknown User" for them.
func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	return s.userRepo.Delete(ctx, id)
}
