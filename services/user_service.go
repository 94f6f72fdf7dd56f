package services

import (
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/atolyedigital/agency-api/dto"
	"github.com/atolyedigital/agency-api/models"
	"github.com/atolyedigital/agency-api/repositories"
)

// UserService implements dashboard account management. Every operation here
// is admin-only; the role check lives in the middleware.
type UserService struct {
	repo *repositories.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService(store repositories.Store) *UserService {
	return &UserService{repo: repositories.NewUserRepository(store)}
}

// ListAll returns every account. Password hashes never serialize.
func (s *UserService) ListAll() ([]models.User, error) {
	return s.repo.FindAll()
}

// GetByID returns an account by ID
func (s *UserService) GetByID(id string) (models.User, error) {
	return s.repo.FindByID(id)
}

// Create validates the payload, enforces username uniqueness by linear scan
// and stores the account with a bcrypt hash
func (s *UserService) Create(req dto.UserCreateRequest) (models.User, error) {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Username, validation.Required),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.Name, validation.Required),
	)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if _, err := s.repo.FindByUsername(req.Username); err == nil {
		return models.User{}, ErrUsernameTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return models.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	role := models.Role(req.Role)
	if role == "" {
		role = models.RoleEditor
	}

	user := models.User{
		ID:        uuid.NewString(),
		Username:  req.Username,
		Password:  string(hashed),
		Name:      req.Name,
		Role:      role,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Insert(user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Update merges the submitted patch over the stored account. Uniqueness is
// only enforced at creation time; a submitted password is rehashed.
func (s *UserService) Update(id string, req dto.UserUpdateRequest) (models.User, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		return models.User{}, err
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, err
		}
		user.Password = string(hashed)
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = models.Role(*req.Role)
	}

	if err := s.repo.Replace(user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Delete removes an account. Callers may not delete themselves.
func (s *UserService) Delete(id, callerID string) error {
	if id == callerID {
		return ErrSelfDelete
	}
	return s.repo.Delete(id)
}

// EnsureDefaultAdmin seeds an admin account when the user document is empty
// so that a fresh deployment is reachable
func (s *UserService) EnsureDefaultAdmin(username, password, name string) error {
	users, err := s.repo.FindAll()
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.repo.Insert(models.User{
		ID:        uuid.NewString(),
		Username:  username,
		Password:  string(hashed),
		Name:      name,
		Role:      models.RoleAdmin,
		CreatedAt: time.Now(),
	})
}
