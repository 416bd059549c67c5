package middleware

import (
	"errors"
	"net/http"
	"strings"

	"kredinou/pkg/token"

	"github.com/labstack/echo/v4"
)

// Context keys set by the auth middlewares.
const (
	ContextUserID    = "auth_user_id"
	ContextAdminID   = "auth_admin_id"
	ContextAdminRole = "auth_admin_role"
)

var errMissingBearer = errors.New("missing bearer token")

func bearerClaims(c echo.Context, verifier *token.Issuer) (*token.Claims, error) {
	h := c.Request().Header.Get(echo.HeaderAuthorization)
	if h == "" || !strings.HasPrefix(h, "Bearer ") {
		return nil, errMissingBearer
	}
	return verifier.Verify(strings.TrimPrefix(h, "Bearer "))
}

// UserAuth rejects requests without a valid user token and stores the
// caller's id on the context.
func UserAuth(verifier *token.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := bearerClaims(c, verifier)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
			}
			c.Set(ContextUserID, claims.UserID)
			return next(c)
		}
	}
}

// AdminAuth is UserAuth for the admin token audience; it also exposes the
// admin's role.
func AdminAuth(verifier *token.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := bearerClaims(c, verifier)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
			}
			c.Set(ContextAdminID, claims.UserID)
			c.Set(ContextAdminRole, claims.Role)
			return next(c)
		}
	}
}

func UserID(c echo.Context) string {
	s, _ := c.Get(ContextUserID).(string)
	return s
}

func AdminID(c echo.Context) string {
	s, _ := c.Get(ContextAdminID).(string)
	return s
}

func AdminRole(c echo.Context) string {
	s, _ := c.Get(ContextAdminRole).(string)
	return s
}
