package service

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/peoplehr/leave-system/internal/core/domain"
	"github.com/peoplehr/leave-system/internal/core/ports"
)

const (
	dateLayout = "2006-01-02"

	// backdateGraceDays is how far in the past a leave may start.
	backdateGraceDays = 3

	defaultPageLimit = 10
	maxPageLimit     = 100
)

// LeaveService validates and persists leave requests against a user's
// existing bookings. Check-then-write sequences for the same user are
// serialized through a per-user lock so that two concurrent applications
// for overlapping dates cannot both pass the conflict check.
type LeaveService struct {
	repo   ports.LeaveRepository
	locks  *keyedMutex
	logger zerolog.Logger
	now    func() time.Time
}

func NewLeaveService(repo ports.LeaveRepository, logger zerolog.Logger) *LeaveService {
	return &LeaveService{
		repo:   repo,
		locks:  newKeyedMutex(defaultStripes),
		logger: logger,
		now:    time.Now,
	}
}

// Apply validates a leave request and stores it. Validation is fail-fast:
// the first failing rule wins, and the store write only happens once every
// rule has passed.
func (s *LeaveService) Apply(ctx context.Context, in ports.ApplyLeaveInput) (*domain.LeaveRequest, error) {
	start, err := time.ParseInLocation(dateLayout, in.StartDate, time.UTC)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	end, err := time.ParseInLocation(dateLayout, in.EndDate, time.UTC)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	leaveType := domain.LeaveType(in.LeaveType)
	if !leaveType.Valid() {
		return nil, domain.ErrInvalidLeaveType
	}

	// Grace cutoff is measured in whole days: a start exactly
	// backdateGraceDays ago is still accepted.
	cutoff := domain.StartOfDay(s.now()).AddDate(0, 0, -backdateGraceDays)
	if start.Before(cutoff) {
		return nil, domain.ErrBackdatedLeave
	}

	if start.After(end) {
		return nil, domain.ErrInvalidDateRange
	}

	startDay := domain.StartOfDay(start)
	endDay := domain.EndOfDay(end)

	unlock := s.locks.Lock(in.UserID)
	defer unlock()

	existing, err := s.repo.FindOverlapping(ctx, in.UserID, startDay, endDay)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", in.UserID).Msg("overlap lookup failed")
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrLeaveConflict
	}

	leave := &domain.LeaveRequest{
		UserID:    in.UserID,
		LeaveType: leaveType,
		StartDate: startDay,
		EndDate:   endDay,
		Reason:    in.Reason,
		CreatedAt: s.now().UTC(),
	}

	created, err := s.repo.Create(ctx, leave)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", in.UserID).Msg("failed to store leave")
		return nil, err
	}

	s.logger.Info().
		Str("user_id", in.UserID).
		Str("leave_type", in.LeaveType).
		Str("start_date", in.StartDate).
		Str("end_date", in.EndDate).
		Msg("leave applied")

	return created, nil
}

// List returns one page of the user's leaves in created_at ascending order.
// Limit is clamped to maxPageLimit.
func (s *LeaveService) List(ctx context.Context, in ports.ListLeavesInput) (*ports.ListLeavesResult, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	filter := ports.ListLeavesFilter{
		UserID: in.UserID,
		Page:   page,
		Limit:  limit,
	}
	if in.LeaveType != "" {
		filter.LeaveType = domain.LeaveType(in.LeaveType)
	}

	leaves, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", in.UserID).Msg("failed to list leaves")
		return nil, err
	}

	pages := int(math.Ceil(float64(total) / float64(limit)))

	return &ports.ListLeavesResult{
		Leaves: leaves,
		Total:  total,
		Page:   page,
		Pages:  pages,
	}, nil
}

// Get retrieves a single leave. A record owned by a different user reports
// not-found rather than forbidden, so identifiers cannot be probed.
func (s *LeaveService) Get(ctx context.Context, leaveID, requesterID string) (*domain.LeaveRequest, error) {
	leave, err := s.repo.FindByID(ctx, leaveID)
	if err != nil {
		return nil, err
	}
	if leave.UserID != requesterID {
		return nil, domain.ErrLeaveNotFound
	}
	return leave, nil
}
