package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peoplehr/leave-system/internal/api/middleware"
)

// requireIdentity extracts the identity attached by the Auth middleware and
// performs a fast-fail check before any service call: a missing or empty
// identity means the middleware did not run (or the token carried no
// subject), and the request is rejected with 401.
func requireIdentity(c echo.Context) (middleware.Identity, error) {
	id, ok := middleware.IdentityFrom(c)
	if !ok || id.UserID == "" {
		return middleware.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
