package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/tablemesa/restaurant-api/internal/core/domain"
	"github.com/tablemesa/restaurant-api/internal/core/ports"
)

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	token, user, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:     "alice@example.com",
		Password:  "pass1234",
		FirstName: "Alice",
		LastName:  "Ng",
		Role:      domain.RoleChef,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.PasswordHash == "pass1234" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass1234")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleChef {
		t.Fatalf("unexpected role: %s", user.Role)
	}
	if !user.IsActive {
		t.Fatalf("expected active user")
	}
}

func TestAuthService_Register_UnknownRoleDefaults(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, user, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "bob@example.com",
		Password: "pass1234",
		Role:     "WIZARD",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleEmployee {
		t.Fatalf("expected EMPLOYEE, got %s", user.Role)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	in := ports.RegisterInput{Email: "carol@example.com", Password: "pass1234"}
	if _, _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), in); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_TokenClaims(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, registered, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "dave@example.com",
		Password: "s3cretpw",
		Role:     domain.RoleManager,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "dave@example.com", "s3cretpw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["userId"] != registered.ID {
		t.Fatalf("expected userId %s, got %v", registered.ID, claims["userId"])
	}
	if claims["email"] != "dave@example.com" {
		t.Fatalf("unexpected email claim: %v", claims["email"])
	}
	if claims["role"] != string(domain.RoleManager) {
		t.Fatalf("unexpected role claim: %v", claims["role"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("expected exp claim")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	_, _, _ = svc.Register(context.Background(), ports.RegisterInput{Email: "eve@example.com", Password: "goodpass"})
	if _, _, err := svc.Login(context.Background(), "eve@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
