package middlewares

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Identity is resolved once from a verified token and carried on the
// request context; nothing downstream rebuilds it.
type Identity struct {
	Username string
	ID       uint
	Role     string
}

const identityKey = "auth.identity"

// Claims as signed by the auth handler.
type Claims struct {
	ID   uint   `json:"id"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AttachIdentity verifies a bearer token and stores the identity on the
// context. A missing Authorization header is not an error: the request
// continues anonymously and the role middleware rejects it where a role is
// required. A present but unusable token fails the request immediately.
func AttachIdentity(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Request().Header.Get("Authorization")
			if h == "" {
				return next(c)
			}

			parts := strings.SplitN(h, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			token, err := jwt.ParseWithClaims(parts[1], &Claims{}, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}
			claims, ok := token.Claims.(*Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			c.Set(identityKey, Identity{
				Username: claims.Subject,
				ID:       claims.ID,
				Role:     claims.Role,
			})
			return next(c)
		}
	}
}

// CurrentIdentity returns the identity attached by AttachIdentity, if any.
func CurrentIdentity(c echo.Context) (Identity, bool) {
	id, ok := c.Get(identityKey).(Identity)
	return id, ok
}

// ActingUsername names the caller for audit fields on domain errors.
func ActingUsername(c echo.Context) string {
	if id, ok := CurrentIdentity(c); ok {
		return id.Username
	}
	return "Anonymous"
}
