package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/peoplehr/leave-system/internal/core/domain"
)

type stubResetService struct {
	code       string
	requestErr error
	verifyErr  error
	lastEmail  string
	lastCode   string
}

func (s *stubResetService) Request(_ context.Context, email string) (string, error) {
	s.lastEmail = email
	if s.requestErr != nil {
		return "", s.requestErr
	}
	return s.code, nil
}

func (s *stubResetService) VerifyAndReset(_ context.Context, email, code, _ string) error {
	s.lastEmail = email
	s.lastCode = code
	return s.verifyErr
}

func TestResetHandler_ForgetPassword_Success(t *testing.T) {
	svc := &stubResetService{code: "123456"}
	h := NewResetHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/forget-password",
		`{"email":"alice@example.com"}`)

	if err := h.ForgetPassword(c); err != nil {
		t.Fatalf("ForgetPassword returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastEmail != "alice@example.com" {
		t.Fatalf("email not forwarded: %q", svc.lastEmail)
	}

	_, data := decodeEnvelope(t, rec)
	if data["otp"] != "123456" {
		t.Fatalf("expected issued code in payload, got %v", data)
	}
}

func TestResetHandler_ForgetPassword_UnknownEmail(t *testing.T) {
	h := NewResetHandler(&stubResetService{requestErr: domain.ErrUserNotFound})

	c, _ := newTestContext(t, http.MethodPost, "/api/v1/forget-password",
		`{"email":"ghost@example.com"}`)

	if err := h.ForgetPassword(c); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestResetHandler_VerifyOTP_Success(t *testing.T) {
	svc := &stubResetService{}
	h := NewResetHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/verify-otp",
		`{"email":"alice@example.com","otp":"123456","new_password":"newpass1"}`)

	if err := h.VerifyOTP(c); err != nil {
		t.Fatalf("VerifyOTP returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastCode != "123456" {
		t.Fatalf("code not forwarded: %q", svc.lastCode)
	}
}

func TestResetHandler_VerifyOTP_ExpiredPropagates(t *testing.T) {
	h := NewResetHandler(&stubResetService{verifyErr: domain.ErrCodeExpired})

	c, _ := newTestContext(t, http.MethodPost, "/api/v1/verify-otp",
		`{"email":"alice@example.com","otp":"123456","new_password":"newpass1"}`)

	if err := h.VerifyOTP(c); err != domain.ErrCodeExpired {
		t.Fatalf("expected ErrCodeExpired, got %v", err)
	}
}

func TestResetHandler_VerifyOTP_ValidationFailure(t *testing.T) {
	h := NewResetHandler(&stubResetService{})

	// Missing new_password must fail before the service is touched.
	c, _ := newTestContext(t, http.MethodPost, "/api/v1/verify-otp",
		`{"email":"alice@example.com","otp":"123456"}`)

	err := h.VerifyOTP(c)
	if err == nil {
		t.Fatalf("expected validation error")
	}
}
