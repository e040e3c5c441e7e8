package domain

import (
	"errors"
	"time"
)

// LeaveType is the closed set of bookable leave categories.
type LeaveType string

const (
	PlannedLeave   LeaveType = "PlannedLeave"
	EmergencyLeave LeaveType = "EmergencyLeave"
)

// Valid reports whether t is a member of the closed set.
func (t LeaveType) Valid() bool {
	switch t {
	case PlannedLeave, EmergencyLeave:
		return true
	}
	return false
}

var ErrLeaveNotFound = errors.New("leave not found")
var ErrLeaveConflict = errors.New("cannot apply for more than one leave on the same day")
var ErrBackdatedLeave = errors.New("backdated leave applications older than 3 days are not allowed")
var ErrInvalidDateRange = errors.New("end date must be after the start date")
var ErrInvalidLeaveType = errors.New("invalid leave type")
var ErrInvalidDate = errors.New("invalid date format")

// LeaveRequest is one time-off booking with an inclusive day range.
// Requests are immutable once stored.
type LeaveRequest struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"user_id" bson:"user_id"`
	LeaveType LeaveType `json:"leave_type" bson:"leave_type"`
	StartDate time.Time `json:"start_date" bson:"start_date"`
	EndDate   time.Time `json:"end_date" bson:"end_date"`
	Reason    string    `json:"reason,omitempty" bson:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns the last representable instant of t's UTC day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
}

// Overlaps reports whether the request's inclusive day range intersects
// [start, end]. Both the request bounds and the arguments are expected to
// be day-normalized.
func (l *LeaveRequest) Overlaps(start, end time.Time) bool {
	return !l.StartDate.After(end) && !start.After(l.EndDate)
}
