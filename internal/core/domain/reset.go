package domain

import "errors"

// Password-reset code failures. A missing key and a naturally expired one
// are indistinguishable to the caller; both surface as ErrCodeExpired.
var ErrCodeExpired = errors.New("code expired or never issued")
var ErrCodeInvalid = errors.New("invalid code")
