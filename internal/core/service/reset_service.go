package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/peoplehr/leave-system/internal/core/domain"
	"github.com/peoplehr/leave-system/internal/core/ports"
)

const defaultCodeTTL = 5 * time.Minute

// CodeNotifier abstracts asynchronous out-of-band delivery of issued codes.
type CodeNotifier interface {
	Enqueue(n ports.ResetNotification)
}

// ResetService issues, validates, and consumes one-time codes gating a
// password change. At most one live code exists per email; re-issuance
// supersedes. Consumption is serialized per email and relies on an atomic
// compare-and-delete in the cache, so a code is consumed at most once even
// under concurrent verification attempts.
type ResetService struct {
	users    ports.UserRepository
	codes    ports.CodeCache
	notifier CodeNotifier
	locks    *keyedMutex
	codeTTL  time.Duration
	logger   zerolog.Logger
}

func NewResetService(
	users ports.UserRepository,
	codes ports.CodeCache,
	notifier CodeNotifier,
	codeTTL time.Duration,
	logger zerolog.Logger,
) *ResetService {
	if codeTTL <= 0 {
		codeTTL = defaultCodeTTL
	}
	return &ResetService{
		users:    users,
		codes:    codes,
		notifier: notifier,
		locks:    newKeyedMutex(defaultStripes),
		codeTTL:  codeTTL,
		logger:   logger,
	}
}

// Request issues a fresh code for the account, overwriting any outstanding
// code for the same email and resetting the expiry clock. The code is
// returned to the caller for dev-mode visibility; delivery itself is
// handed to the notifier.
func (s *ResetService) Request(ctx context.Context, email string) (string, error) {
	if _, err := s.users.FindByEmail(ctx, email); err != nil {
		return "", err
	}

	code, err := generateCode()
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}

	if err := s.codes.Put(ctx, email, code, s.codeTTL); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to store reset code")
		return "", err
	}

	if s.notifier != nil {
		s.notifier.Enqueue(ports.ResetNotification{Email: email, Code: code})
	}

	s.logger.Info().Str("email", email).Msg("reset code issued")
	return code, nil
}

// VerifyAndReset consumes the outstanding code for email and overwrites the
// account's credential on a match. A mismatch leaves the code in place so
// the caller may retry until it naturally expires.
func (s *ResetService) VerifyAndReset(ctx context.Context, email, submittedCode, newPassword string) error {
	unlock := s.locks.Lock(email)
	defer unlock()

	result, err := s.codes.CompareAndDelete(ctx, email, submittedCode)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("code lookup failed")
		return err
	}

	switch result {
	case ports.CodeMissing:
		return domain.ErrCodeExpired
	case ports.CodeMismatch:
		return domain.ErrCodeInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePasswordByEmail(ctx, email, string(hash)); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to update credential")
		return err
	}

	s.logger.Info().Str("email", email).Msg("password reset completed")
	return nil
}

// generateCode returns a 6-digit numeric one-time code.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
