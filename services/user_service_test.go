package services

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/atolyedigital/agency-api/dto"
	"github.com/atolyedigital/agency-api/models"
	"github.com/atolyedigital/agency-api/repositories"
)

func TestUserCreateHashesPassword(t *testing.T) {
	service := NewUserService(repositories.NewMemoryStore())

	user, err := service.Create(dto.UserCreateRequest{Username: "ayse", Password: "gizli123", Name: "Ayşe"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if user.Password == "gizli123" {
		t.Error("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("gizli123")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
	if user.Role != models.RoleEditor {
		t.Errorf("Role = %q, want default editor", user.Role)
	}
}

func TestUserCreateValidation(t *testing.T) {
	service := NewUserService(repositories.NewMemoryStore())

	_, err := service.Create(dto.UserCreateRequest{Username: "ayse", Password: "p"})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("missing name: error = %v, want ErrValidation", err)
	}
}

func TestUserCreateDuplicateUsername(t *testing.T) {
	store := repositories.NewMemoryStore()
	service := NewUserService(store)

	if _, err := service.Create(dto.UserCreateRequest{Username: "ayse", Password: "p1", Name: "Ayşe"}); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	_, err := service.Create(dto.UserCreateRequest{Username: "ayse", Password: "p2", Name: "Başka Ayşe"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("error = %v, want ErrUsernameTaken", err)
	}

	users, err := service.ListAll()
	if err != nil {
		t.Fatalf("ListAll() error: %v", err)
	}
	if len(users) != 1 {
		t.Errorf("len(users) = %d, rejected create must not mutate the store", len(users))
	}
}

func TestUserSelfDeleteRejected(t *testing.T) {
	service := NewUserService(repositories.NewMemoryStore())

	user, err := service.Create(dto.UserCreateRequest{Username: "admin", Password: "p", Name: "Admin", Role: "admin"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if err := service.Delete(user.ID, user.ID); !errors.Is(err, ErrSelfDelete) {
		t.Errorf("error = %v, want ErrSelfDelete", err)
	}

	users, err := service.ListAll()
	if err != nil {
		t.Fatalf("ListAll() error: %v", err)
	}
	if len(users) != 1 {
		t.Errorf("len(users) = %d, rejected delete must not mutate the store", len(users))
	}

	// Deleting someone else works
	other, err := service.Create(dto.UserCreateRequest{Username: "editor", Password: "p", Name: "Editor"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if err := service.Delete(other.ID, user.ID); err != nil {
		t.Errorf("Delete(other) error: %v", err)
	}
}

func TestUserUpdateRehashesPassword(t *testing.T) {
	service := NewUserService(repositories.NewMemoryStore())

	user, err := service.Create(dto.UserCreateRequest{Username: "ayse", Password: "eski", Name: "Ayşe"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	updated, err := service.Update(user.ID, dto.UserUpdateRequest{Password: strPtr("yeni")})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("yeni")); err != nil {
		t.Errorf("new password does not verify: %v", err)
	}
	if updated.Username != "ayse" || updated.Name != "Ayşe" {
		t.Errorf("untouched fields changed: %+v", updated)
	}
}

func TestEnsureDefaultAdmin(t *testing.T) {
	store := repositories.NewMemoryStore()
	service := NewUserService(store)

	if err := service.EnsureDefaultAdmin("admin", "admin123", "Administrator"); err != nil {
		t.Fatalf("EnsureDefaultAdmin() error: %v", err)
	}
	users, err := service.ListAll()
	if err != nil {
		t.Fatalf("ListAll() error: %v", err)
	}
	if len(users) != 1 || users[0].Role != models.RoleAdmin {
		t.Fatalf("expected one admin, got %+v", users)
	}

	// Second call is a no-op when users exist
	if err := service.EnsureDefaultAdmin("admin", "admin123", "Administrator"); err != nil {
		t.Fatalf("EnsureDefaultAdmin() error: %v", err)
	}
	users, _ = service.ListAll()
	if len(users) != 1 {
		t.Errorf("len(users) = %d, want 1 after repeated seed", len(users))
	}
}
