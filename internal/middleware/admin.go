package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"portfolio/internal/lib/jwt"
	"portfolio/internal/transport/http/dto/response"
)

// AdminSubjectKey is the context key holding the authenticated token subject.
const AdminSubjectKey = "admin_subject"

// AdminJWT accepts requests carrying "Authorization: Bearer <token>" signed
// with secret.
func AdminJWT(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return c.JSON(http.StatusUnauthorized, response.ErrUnauthorized.WithDetails("bearer token required"))
			}

			subject, err := jwt.ParseToken(token, secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, response.ErrUnauthorized.WithDetails("invalid token"))
			}

			c.Set(AdminSubjectKey, subject)
			return next(c)
		}
	}
}
