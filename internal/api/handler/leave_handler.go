package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/peoplehr/leave-system/internal/api/metrics"
	"github.com/peoplehr/leave-system/internal/core/domain"
	"github.com/peoplehr/leave-system/internal/core/ports"
)

// LeaveHandler handles HTTP requests for leave scheduling.
type LeaveHandler struct {
	service ports.LeaveService
}

func NewLeaveHandler(service ports.LeaveService) *LeaveHandler {
	return &LeaveHandler{service: service}
}

// Apply submits a new leave request for the authenticated user.
//
// @Summary      Apply for leave
// @Tags         leaves
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      applyLeaveRequest  true  "Leave details"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /leave [post]
func (h *LeaveHandler) Apply(c echo.Context) error {
	id, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req applyLeaveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.LeaveRejectionsTotal.WithLabelValues("invalid_input").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// The booking always belongs to the authenticated caller; a body user_id
	// naming someone else is rejected rather than honored.
	if req.UserID != "" && req.UserID != id.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "cannot apply leave for another user")
	}

	leave, err := h.service.Apply(c.Request().Context(), ports.ApplyLeaveInput{
		UserID:    id.UserID,
		LeaveType: req.LeaveType,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidDate), errors.Is(err, domain.ErrInvalidLeaveType):
			metrics.LeaveRejectionsTotal.WithLabelValues("invalid_input").Inc()
		case errors.Is(err, domain.ErrBackdatedLeave):
			metrics.LeaveRejectionsTotal.WithLabelValues("backdated").Inc()
		case errors.Is(err, domain.ErrInvalidDateRange):
			metrics.LeaveRejectionsTotal.WithLabelValues("inverted_range").Inc()
		case errors.Is(err, domain.ErrLeaveConflict):
			metrics.LeaveRejectionsTotal.WithLabelValues("conflict").Inc()
		}
		return err
	}

	metrics.LeavesAppliedTotal.WithLabelValues(string(leave.LeaveType)).Inc()

	return c.JSON(http.StatusCreated, successResponse{
		Message: "leave applied successfully",
		Data:    leave,
	})
}

// List returns one page of the caller's leave requests.
//
// @Summary      List own leaves
// @Tags         leaves
// @Produce      json
// @Security     BearerAuth
// @Param        type   query     string  false  "Filter by leave type"
// @Param        page   query     int     false  "Page number (1-based)"
// @Param        limit  query     int     false  "Page size (max 100)"
// @Success      200    {object}  successResponse
// @Failure      401    {object}  errorResponse
// @Router       /leave [get]
func (h *LeaveHandler) List(c echo.Context) error {
	id, err := requireIdentity(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), ports.ListLeavesInput{
		UserID:    id.UserID,
		LeaveType: c.QueryParam("type"),
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successResponse{
		Message: "leaves retrieved successfully",
		Data: listLeavesResponse{
			Leaves: result.Leaves,
			Total:  result.Total,
			Page:   result.Page,
			Pages:  result.Pages,
		},
	})
}

// Get returns a single leave request owned by the caller.
//
// @Summary      Get a leave by id
// @Tags         leaves
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Leave id"
// @Success      200  {object}  successResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /leave/{id} [get]
func (h *LeaveHandler) Get(c echo.Context) error {
	id, err := requireIdentity(c)
	if err != nil {
		return err
	}

	leave, err := h.service.Get(c.Request().Context(), c.Param("id"), id.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successResponse{
		Message: "leave retrieved successfully",
		Data:    leave,
	})
}
