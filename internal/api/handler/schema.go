package handler

// successResponse is the standard envelope returned on all 2xx responses:
// a human-readable message plus the data payload.
type successResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// errorResponse documents the error envelope rendered by the central error
// handler; handlers never build it themselves.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type signupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Password reset ---

type resetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type verifyOTPRequest struct {
	Email       string `json:"email"        validate:"required,email"`
	OTP         string `json:"otp"          validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// --- Profile ---

// updateProfileRequest carries a partial update; absent fields stay unchanged.
type updateProfileRequest struct {
	Name           *string `json:"name"`
	Email          *string `json:"email" validate:"omitempty,email"`
	ProfilePicture *string `json:"profile_picture"`
	Password       *string `json:"password" validate:"omitempty,min=6"`
}

// --- Leaves ---

type applyLeaveRequest struct {
	// UserID is accepted for wire compatibility; when present it must match
	// the authenticated caller.
	UserID    string `json:"user_id"`
	LeaveType string `json:"leave_type" validate:"required,oneof=PlannedLeave EmergencyLeave"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date"   validate:"required"`
	Reason    string `json:"reason"`
}

type listLeavesResponse struct {
	Leaves any   `json:"leaves"`
	Total  int64 `json:"total"`
	Page   int   `json:"page"`
	Pages  int   `json:"pages"`
}
