// Package errs carries the typed domain errors every validation failure is
// raised as. Handlers never translate these themselves; they propagate to
// the single HTTP error handler.
package errs

import "fmt"

type Error struct {
	Detail   string
	Status   int
	Username string // acting user, for audit logging
}

func (e *Error) Error() string {
	return fmt.Sprintf("(status_code=%d, user=%s): %s", e.Status, e.Username, e.Detail)
}

func newError(status int, username, detail string) *Error {
	if username == "" {
		username = "Anonymous"
	}
	return &Error{Detail: detail, Status: status, Username: username}
}

// Exist: a row that must not be there already is (duplicate username,
// referenced class/subject missing on create).
func Exist(username, format string, args ...any) *Error {
	return newError(400, username, fmt.Sprintf(format, args...))
}

func NotFound(username, format string, args ...any) *Error {
	return newError(404, username, fmt.Sprintf(format, args...))
}

func Invalid(username, format string, args ...any) *Error {
	return newError(400, username, fmt.Sprintf(format, args...))
}

// Conflict: delete blocked by referencing rows.
func Conflict(username, format string, args ...any) *Error {
	return newError(409, username, fmt.Sprintf(format, args...))
}

func Unauthorized(username, detail string) *Error {
	return newError(401, username, detail)
}
