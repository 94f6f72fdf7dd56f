package repositories

import (
	"time"

	"github.com/atolyedigital/agency-api/models"
)

const usersResource = "users"

// storedUser is the on-disk shape of a user. models.User hides the password
// hash from API responses via `json:"-"`, so persistence needs its own
// serialization that keeps it.
type storedUser struct {
	ID        string      `json:"id"`
	Username  string      `json:"username"`
	Password  string      `json:"password"`
	Name      string      `json:"name"`
	Role      models.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

func toStored(user models.User) storedUser {
	return storedUser(user)
}

func fromStored(stored storedUser) models.User {
	return models.User(stored)
}

// UserRepository handles storage operations for users
type UserRepository struct {
	store Store
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(store Store) *UserRepository {
	return &UserRepository{store: store}
}

// FindAll retrieves all users in stored order
func (r *UserRepository) FindAll() ([]models.User, error) {
	stored, err := loadAll[storedUser](r.store, usersResource)
	if err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(stored))
	for _, record := range stored {
		users = append(users, fromStored(record))
	}
	return users, nil
}

// FindByID retrieves a user by ID
func (r *UserRepository) FindByID(id string) (models.User, error) {
	users, err := r.FindAll()
	if err != nil {
		return models.User{}, err
	}
	for _, user := range users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, ErrNotFound
}

// FindByUsername retrieves a user by username
func (r *UserRepository) FindByUsername(username string) (models.User, error) {
	users, err := r.FindAll()
	if err != nil {
		return models.User{}, err
	}
	for _, user := range users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, ErrNotFound
}

// Insert prepends a new user
func (r *UserRepository) Insert(user models.User) error {
	stored, err := loadAll[storedUser](r.store, usersResource)
	if err != nil {
		return err
	}
	stored = append([]storedUser{toStored(user)}, stored...)
	return saveAll(r.store, usersResource, stored)
}

// Replace overwrites the stored record with the same ID
func (r *UserRepository) Replace(user models.User) error {
	stored, err := loadAll[storedUser](r.store, usersResource)
	if err != nil {
		return err
	}
	for i := range stored {
		if stored[i].ID == user.ID {
			stored[i] = toStored(user)
			return saveAll(r.store, usersResource, stored)
		}
	}
	return ErrNotFound
}

// Delete removes a user by ID
func (r *UserRepository) Delete(id string) error {
	stored, err := loadAll[storedUser](r.store, usersResource)
	if err != nil {
		return err
	}
	kept := stored[:0:0]
	for _, record := range stored {
		if record.ID != id {
			kept = append(kept, record)
		}
	}
	if len(kept) == len(stored) {
		return ErrNotFound
	}
	return saveAll(r.store, usersResource, kept)
}
