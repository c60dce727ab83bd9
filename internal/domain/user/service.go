// internal/domain/user/service.go
package user

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/logistics-backend/internal/config"
	"github.com/your-org/logistics-backend/internal/pkg/auth"
)

// Service owns user accounts and handles authentication checks
type Service struct {
	mu    sync.RWMutex
	users []User

	config          *config.Config
	passwordManager *auth.PasswordManager
}

// NewService creates a new user service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config:          cfg,
		passwordManager: auth.NewPasswordManager(cfg),
	}
}

// CreateUserRequest represents user creation data
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name" binding:"required"`
	Role     Role   `json:"role" binding:"required"`
	Password string `json:"password" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

// UpdateUserRequest represents user update data
type UpdateUserRequest struct {
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
	Role     *Role   `json:"role"`
	IsActive *bool   `json:"is_active"`
	Password *string `json:"password"`
}

// Create creates a new user account
func (s *Service) Create(req *CreateUserRequest) (*User, error) {
	if !req.Role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", req.Role)
	}

	hashedPassword, err := s.passwordManager.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	username := strings.TrimSpace(req.Username)
	for _, u := range s.users {
		if u.Username == username {
			return nil, fmt.Errorf("user with username '%s' already exists", username)
		}
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	now := time.Now().UTC()
	user := User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        strings.ToLower(req.Email),
		FullName:     req.FullName,
		Role:         req.Role,
		IsActive:     active,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.users = append(s.users, user)

	return &user, nil
}

// Update patches a user account
func (s *Service) Update(id string, req *UpdateUserRequest) (*User, error) {
	if req.Role != nil && !req.Role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", *req.Role)
	}

	var hashedPassword string
	if req.Password != nil {
		var err error
		hashedPassword, err = s.passwordManager.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		u := &s.users[i]
		if req.Email != nil {
			u.Email = strings.ToLower(*req.Email)
		}
		if req.FullName != nil {
			u.FullName = *req.FullName
		}
		if req.Role != nil {
			u.Role = *req.Role
		}
		if req.IsActive != nil {
			u.IsActive = *req.IsActive
		}
		if hashedPassword != "" {
			u.PasswordHash = hashedPassword
		}
		u.UpdatedAt = time.Now().UTC()
		updated := *u
		return &updated, nil
	}

	return nil, fmt.Errorf("user not found")
}

// Delete removes a user account
func (s *Service) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("user not found")
}

// Get retrieves a user by id
func (s *Service) Get(id string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user not found")
}

// GetByUsername retrieves a user by username
func (s *Service) GetByUsername(username string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user not found")
}

// List returns all user accounts
func (s *Service) List() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]User, len(s.users))
	copy(out, s.users)
	return out
}

// Authenticate verifies credentials and returns the matching active user
func (s *Service) Authenticate(username, password string) (*User, error) {
	u, err := s.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		return nil, fmt.Errorf("invalid username or password")
	}

	if err := s.passwordManager.VerifyPassword(password, u.PasswordHash); err != nil {
		return nil, fmt.Errorf("invalid username or password")
	}

	if !u.IsActive {
		return nil, fmt.Errorf("account is deactivated")
	}

	return u, nil
}

// Restore installs a user with a caller-provided identity. Used by seeding.
func (s *Service) Restore(u User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, u)
}
