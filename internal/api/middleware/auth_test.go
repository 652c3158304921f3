package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tablemesa/restaurant-api/internal/core/domain"
	"github.com/tablemesa/restaurant-api/internal/core/ports"
)

type stubVerifier struct {
	name   string
	claims *domain.Claims
	err    error
}

func (v *stubVerifier) Name() string { return v.name }

func (v *stubVerifier) Verify(_ context.Context, _ string) (*domain.Claims, error) {
	if v.err != nil {
		return nil, v.err
	}
	return v.claims, nil
}

type stubResolver struct {
	principal *domain.Principal
	err       error
	got       *domain.Claims
}

func (r *stubResolver) Resolve(_ context.Context, claims *domain.Claims) (*domain.Principal, error) {
	r.got = claims
	if r.err != nil {
		return nil, r.err
	}
	return r.principal, nil
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Authenticate([]ports.TokenVerifier{&stubVerifier{name: "legacy"}}, &stubResolver{}, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", he.Code)
	}
	if he.Message != "Access token required" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Authenticate([]ports.TokenVerifier{&stubVerifier{name: "legacy"}}, &stubResolver{}, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthenticate_AllVerifiersFail(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	verifiers := []ports.TokenVerifier{
		&stubVerifier{name: "provider", err: domain.ErrInvalidCredential},
		&stubVerifier{name: "legacy", err: domain.ErrInvalidCredential},
	}
	mw := Authenticate(verifiers, &stubResolver{}, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", he.Code)
	}
	if he.Message != "Invalid token" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestAuthenticate_FirstSuccessWins(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	resolver := &stubResolver{principal: &domain.Principal{UserID: "u1", Role: domain.RoleManager}}
	verifiers := []ports.TokenVerifier{
		&stubVerifier{name: "provider", err: domain.ErrInvalidCredential},
		&stubVerifier{name: "legacy", claims: &domain.Claims{Source: domain.SourceLegacy, UserID: "u1"}},
	}

	called := false
	mw := Authenticate(verifiers, resolver, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		called = true
		p := Principal(c)
		if p == nil || p.UserID != "u1" {
			t.Fatalf("principal not attached: %+v", p)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if resolver.got == nil || resolver.got.Source != domain.SourceLegacy {
		t.Fatalf("resolver did not receive legacy claims: %+v", resolver.got)
	}
}

func TestAuthenticate_ResolutionFailure(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	resolver := &stubResolver{err: domain.ErrResolution}
	verifiers := []ports.TokenVerifier{
		&stubVerifier{name: "legacy", claims: &domain.Claims{Source: domain.SourceLegacy, UserID: "u1"}},
	}

	mw := Authenticate(verifiers, resolver, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %v", err)
	}
}
