package ports

import (
	"context"
	"time"

	"github.com/peoplehr/leave-system/internal/core/domain"
)

// ListLeavesFilter carries the query parameters for listing a user's leaves.
type ListLeavesFilter struct {
	UserID    string
	LeaveType domain.LeaveType // empty = no type filter
	Page      int              // 1-based
	Limit     int              // rows per page (clamped by the service)
}

// LeaveRepository defines persistence for leave requests.
type LeaveRepository interface {
	Create(ctx context.Context, leave *domain.LeaveRequest) (*domain.LeaveRequest, error)
	FindByID(ctx context.Context, id string) (*domain.LeaveRequest, error)
	// FindOverlapping returns any stored request for userID whose inclusive
	// day range intersects [start, end], or nil when none exists.
	FindOverlapping(ctx context.Context, userID string, start, end time.Time) (*domain.LeaveRequest, error)
	// List returns a page of leaves matching filter, ordered by created_at
	// ascending, together with the total match count.
	List(ctx context.Context, filter ListLeavesFilter) ([]*domain.LeaveRequest, int64, error)
}
