package services

import (
	"errors"
	"testing"

	"github.com/atolyedigital/agency-api/dto"
	"github.com/atolyedigital/agency-api/repositories"
)

func newAuthFixture(t *testing.T) (*AuthService, *UserService, repositories.Store) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	store := repositories.NewMemoryStore()
	return NewAuthService(store), NewUserService(store), store
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	auth, users, _ := newAuthFixture(t)

	user, err := users.Create(dto.UserCreateRequest{Username: "admin", Password: "parola", Name: "Admin", Role: "admin"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	resp, err := auth.Login(dto.LoginRequest{Username: "admin", Password: "parola"})
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("empty token")
	}
	if resp.User.ID != user.ID {
		t.Errorf("User.ID = %q, want %q", resp.User.ID, user.ID)
	}

	claims, err := ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("ValidateToken() error: %v", err)
	}
	if claims.UserID != user.ID || claims.Username != "admin" || claims.Role != "admin" {
		t.Errorf("claims = %+v, identity not embedded", claims)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	auth, users, _ := newAuthFixture(t)

	if _, err := users.Create(dto.UserCreateRequest{Username: "admin", Password: "parola", Name: "Admin"}); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if _, err := auth.Login(dto.LoginRequest{Username: "admin", Password: "yanlis"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := auth.Login(dto.LoginRequest{Username: "yok", Password: "parola"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user: error = %v, want ErrInvalidCredentials", err)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}

	// A token signed with a different secret must not verify
	token, _, err := GenerateToken("u1", "admin", "admin")
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}
	t.Setenv("JWT_SECRET", "other-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Error("expected error for token signed with different secret")
	}
}

func TestChangePassword(t *testing.T) {
	auth, users, _ := newAuthFixture(t)

	user, err := users.Create(dto.UserCreateRequest{Username: "admin", Password: "eski", Name: "Admin"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	err = auth.ChangePassword(user.ID, dto.ChangePasswordRequest{CurrentPassword: "yanlis", NewPassword: "yeni"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong current password: error = %v, want ErrInvalidCredentials", err)
	}

	if err := auth.ChangePassword(user.ID, dto.ChangePasswordRequest{CurrentPassword: "eski", NewPassword: "yeni"}); err != nil {
		t.Fatalf("ChangePassword() error: %v", err)
	}

	if _, err := auth.Login(dto.LoginRequest{Username: "admin", Password: "eski"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("old password still accepted after change")
	}
	if _, err := auth.Login(dto.LoginRequest{Username: "admin", Password: "yeni"}); err != nil {
		t.Errorf("new password rejected: %v", err)
	}
}
