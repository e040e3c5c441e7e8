package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/peoplehr/leave-system/internal/core/domain"
)

func TestResolveError_DomainMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidDate, http.StatusBadRequest},
		{domain.ErrInvalidLeaveType, http.StatusBadRequest},
		{domain.ErrBackdatedLeave, http.StatusBadRequest},
		{domain.ErrInvalidDateRange, http.StatusBadRequest},
		{domain.ErrLeaveConflict, http.StatusBadRequest},
		{domain.ErrCodeExpired, http.StatusBadRequest},
		{domain.ErrCodeInvalid, http.StatusBadRequest},
		{domain.ErrEmailTaken, http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusBadRequest},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrLeaveNotFound, http.StatusNotFound},
		{errors.New("mongo: socket closed"), http.StatusInternalServerError},
	}

	e := echo.New()
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())

		code, _ := resolveError(tc.err, zerolog.Nop(), c)
		if code != tc.code {
			t.Fatalf("error %v: expected %d, got %d", tc.err, tc.code, code)
		}
	}
}

func TestResolveError_HidesInternalDetail(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	_, msg := resolveError(errors.New("connection refused to 10.0.0.5:27017"), zerolog.Nop(), c)
	if msg != "internal server error" {
		t.Fatalf("infrastructure detail leaked: %q", msg)
	}
}

func TestResolveError_PolicyMessageVerbatim(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	_, msg := resolveError(domain.ErrBackdatedLeave, zerolog.Nop(), c)
	if msg != domain.ErrBackdatedLeave.Error() {
		t.Fatalf("expected verbatim policy message, got %q", msg)
	}
}

func TestHTTPErrorHandler_WrapsEchoErrors(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewHTTPErrorHandler(zerolog.Nop())
	h(echo.NewHTTPError(http.StatusUnauthorized, "invalid token"), c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body := rec.Body.String(); body == "" {
		t.Fatalf("expected error envelope body")
	}
}
