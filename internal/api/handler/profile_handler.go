package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peoplehr/leave-system/internal/core/ports"
)

// ProfileHandler serves the authenticated user's own profile.
type ProfileHandler struct {
	authService ports.AuthService
}

func NewProfileHandler(authService ports.AuthService) *ProfileHandler {
	return &ProfileHandler{authService: authService}
}

// Get returns the caller's profile, minus the credential field.
//
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	id, err := requireIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.authService.Profile(c.Request().Context(), id.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successResponse{
		Message: "profile retrieved successfully",
		Data:    map[string]any{"user": user},
	})
}

// Update applies a partial profile update for the caller.
//
// @Summary      Update own profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to update"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /profile [patch]
func (h *ProfileHandler) Update(c echo.Context) error {
	id, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.UpdateProfile(c.Request().Context(), id.UserID, ports.UserUpdate{
		Name:           req.Name,
		Email:          req.Email,
		ProfilePicture: req.ProfilePicture,
		Password:       req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successResponse{
		Message: "profile updated successfully",
		Data:    map[string]any{"user": user},
	})
}
