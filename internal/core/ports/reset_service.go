package ports

import "context"

// ResetService drives the OTP-gated password-reset flow: at most one live
// code per email, consumed once on a successful verification.
type ResetService interface {
	// Request issues a new one-time code for the account, superseding any
	// outstanding code for the same email, and returns it for dev-mode
	// visibility. Out-of-band delivery happens asynchronously.
	Request(ctx context.Context, email string) (string, error)
	// VerifyAndReset consumes the outstanding code and, on a match, replaces
	// the account's credential with a hash of newPassword. A code is consumed
	// at most once, even under concurrent verification attempts.
	VerifyAndReset(ctx context.Context, email, submittedCode, newPassword string) error
}
