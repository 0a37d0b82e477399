package errs

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler is the one place domain errors become responses. Every
// body is {"detail": ...}; domain errors are logged here exactly once with
// the request method and path.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		log.Printf("error handler caught at %s %s. %s: %v",
			c.Request().Method, c.Request().URL.Path, errName(appErr.Status), appErr)
		_ = c.JSON(appErr.Status, map[string]string{"detail": appErr.Detail})
		return
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		detail := make([]map[string]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			detail = append(detail, map[string]string{
				"loc": fe.Field(),
				"msg": "failed on the '" + fe.Tag() + "' rule",
			})
		}
		_ = c.JSON(http.StatusUnprocessableEntity, map[string]any{"detail": detail})
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		detail := http.StatusText(httpErr.Code)
		if s, ok := httpErr.Message.(string); ok {
			detail = s
		}
		_ = c.JSON(httpErr.Code, map[string]string{"detail": detail})
		return
	}

	log.Printf("unhandled error at %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	_ = c.JSON(http.StatusInternalServerError, map[string]string{"detail": "Internal Server Error"})
}

func errName(status int) string {
	switch status {
	case 400:
		return "validation error"
	case 401:
		return "authorization error"
	case 404:
		return "not found"
	case 409:
		return "delete blocked"
	}
	return "application error"
}
