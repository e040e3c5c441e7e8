package ports

// ResetNotification is the DTO handed to the out-of-band delivery layer
// after a one-time code has been issued.
type ResetNotification struct {
	Email string
	Code  string
}
