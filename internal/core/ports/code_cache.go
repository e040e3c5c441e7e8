package ports

import (
	"context"
	"time"
)

// CompareAndDeleteResult is the outcome of an atomic code consumption attempt.
type CompareAndDeleteResult int

const (
	// CodeMissing means no code is stored for the key (never issued or expired).
	CodeMissing CompareAndDeleteResult = iota
	// CodeMismatch means a code exists but the submitted value differs.
	// The stored code is retained.
	CodeMismatch
	// CodeConsumed means the submitted value matched and the code was deleted
	// in the same atomic step.
	CodeConsumed
)

// CodeCache stores outstanding one-time codes keyed by email, with per-key
// expiry. The password-reset flow is its only client.
type CodeCache interface {
	// Put stores code under email with the given TTL, overwriting any
	// previously issued code (re-issuance supersedes).
	Put(ctx context.Context, email, code string, ttl time.Duration) error
	// CompareAndDelete atomically compares the stored code against submitted
	// and deletes it on a match. Read and delete must not be separable calls.
	CompareAndDelete(ctx context.Context, email, submitted string) (CompareAndDeleteResult, error)
}
