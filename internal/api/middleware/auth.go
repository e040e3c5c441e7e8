package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// identityKey is the echo context key the authenticated identity is stored under.
const identityKey = "auth_identity"

// Identity is the authenticated caller decoded from a verified bearer token.
// It is produced exclusively by the Auth middleware; handlers retrieve it with
// IdentityFrom rather than reading raw claims.
type Identity struct {
	UserID string
	Email  string
}

// Auth validates the bearer token and attaches the decoded Identity to the
// request context. It performs no store access; verification is purely
// cryptographic.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			userID, _ := claims["user_id"].(string)
			email, _ := claims["email"].(string)

			c.Set(identityKey, Identity{UserID: userID, Email: email})

			return next(c)
		}
	}
}

// IdentityFrom returns the Identity attached by Auth, or false when the
// middleware did not run for this request.
func IdentityFrom(c echo.Context) (Identity, bool) {
	id, ok := c.Get(identityKey).(Identity)
	return id, ok
}
