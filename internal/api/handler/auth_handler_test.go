package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/peoplehr/leave-system/internal/core/domain"
	"github.com/peoplehr/leave-system/internal/core/ports"
)

type stubAuthService struct {
	signupErr error
	loginErr  error
	token     string
	user      *domain.User
}

func (s *stubAuthService) Signup(_ context.Context, name, email, _ string) (*domain.User, error) {
	if s.signupErr != nil {
		return nil, s.signupErr
	}
	return &domain.User{ID: "u1", Name: name, Email: email}, nil
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (string, *domain.User, error) {
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return s.token, s.user, nil
}

func (s *stubAuthService) Profile(_ context.Context, _ string) (*domain.User, error) {
	return s.user, nil
}

func (s *stubAuthService) UpdateProfile(_ context.Context, _ string, _ ports.UserUpdate) (*domain.User, error) {
	return s.user, nil
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (string, map[string]any) {
	t.Helper()
	var env struct {
		Message string         `json:"message"`
		Data    map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return env.Message, env.Data
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, rec := newTestContext(t, http.MethodPost, "/api/v1/signup",
		`{"name":"Alice","email":"alice@example.com","password":"pass123"}`)

	if err := h.Signup(c); err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	_, data := decodeEnvelope(t, rec)
	if data["user_id"] != "u1" {
		t.Fatalf("expected user_id in payload, got %v", data)
	}
}

func TestAuthHandler_Signup_ValidationFailure(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	cases := []struct {
		name string
		body string
	}{
		{"missing email", `{"name":"Alice","password":"pass123"}`},
		{"bad email", `{"name":"Alice","email":"nope","password":"pass123"}`},
		{"short password", `{"name":"Alice","email":"alice@example.com","password":"abc"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestContext(t, http.MethodPost, "/api/v1/signup", tc.body)

			err := h.Signup(c)
			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 HTTPError, got %v", err)
			}
		})
	}
}

func TestAuthHandler_Signup_DuplicateEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{signupErr: domain.ErrEmailTaken})
	c, _ := newTestContext(t, http.MethodPost, "/api/v1/signup",
		`{"name":"Alice","email":"alice@example.com","password":"pass123"}`)

	// The domain error propagates for the central error handler to map to 400.
	if err := h.Signup(c); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		token: "signed-token",
		user:  &domain.User{ID: "u1", Email: "alice@example.com"},
	})
	c, rec := newTestContext(t, http.MethodPost, "/api/v1/login",
		`{"email":"alice@example.com","password":"pass123"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	_, data := decodeEnvelope(t, rec)
	if data["token"] != "signed-token" {
		t.Fatalf("expected token in payload, got %v", data)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})
	c, _ := newTestContext(t, http.MethodPost, "/api/v1/login",
		`{"email":"alice@example.com","password":"wrong1"}`)

	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
