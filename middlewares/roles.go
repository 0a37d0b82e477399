package middlewares

import (
	"github.com/labstack/echo/v4"

	"github.com/michalswider/electronic-gradebook/errs"
)

// RequireRoles gates a route group. An anonymous request fails before any
// role comparison; a wrong-role identity fails before the handler runs.
// Both are 401: the original API never used 403 and clients depend on it.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := CurrentIdentity(c)
			if !ok {
				return errs.Unauthorized("Anonymous", "Authorization failed")
			}
			if _, ok := allowed[id.Role]; !ok {
				return errs.Unauthorized(id.Username, "Permission Denied")
			}
			return next(c)
		}
	}
}
