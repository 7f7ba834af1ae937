package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "warga/internal/errors"
	"warga/internal/service"
)

const (
	// CurrentUserKey is the echo context key holding the verified user.
	CurrentUserKey = "currentUser"
	// TokenKey is the echo context key holding the raw session token.
	TokenKey = "token"
)

// Session verifies the Authorization token against the session store and puts
// the owning user into the request context. Every failure comes back as the
// same uniform unauthorized response.
func Session(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := TokenFromHeader(c)

			user, err := authService.Verify(c.Request().Context(), token)
			if err != nil {
				if !errors.Is(err, apperrors.ErrUnauthorized) {
					c.Logger().Errorf("session verify: %v", err)
				}
				httpErr := apperrors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}

			c.Set(CurrentUserKey, user)
			c.Set(TokenKey, token)
			return next(c)
		}
	}
}

// TokenFromHeader reads the session token from the Authorization header. The
// original clients send the raw token; a Bearer prefix is tolerated.
func TokenFromHeader(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") || strings.HasPrefix(header, "bearer ") {
		return strings.TrimSpace(header[len("Bearer "):])
	}
	return strings.TrimSpace(header)
}
