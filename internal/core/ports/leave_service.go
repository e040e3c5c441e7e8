package ports

import (
	"context"

	"github.com/peoplehr/leave-system/internal/core/domain"
)

// ApplyLeaveInput is the DTO passed from the transport layer to LeaveService.
// StartDate and EndDate are calendar dates in "2006-01-02" form; parsing is
// the service's first validation step.
type ApplyLeaveInput struct {
	UserID    string
	LeaveType string
	StartDate string
	EndDate   string
	Reason    string
}

// ListLeavesInput carries all parameters for the list endpoint.
type ListLeavesInput struct {
	UserID    string
	LeaveType string // optional
	Page      int
	Limit     int
}

// ListLeavesResult is returned by List.
type ListLeavesResult struct {
	Leaves []*domain.LeaveRequest
	Total  int64
	Page   int
	Pages  int
}

// LeaveService defines the conflict-checking scheduler use cases.
type LeaveService interface {
	Apply(ctx context.Context, in ApplyLeaveInput) (*domain.LeaveRequest, error)
	List(ctx context.Context, in ListLeavesInput) (*ListLeavesResult, error)
	// Get retrieves a single leave; requests owned by another user report
	// not-found to the requester.
	Get(ctx context.Context, leaveID, requesterID string) (*domain.LeaveRequest, error)
}
