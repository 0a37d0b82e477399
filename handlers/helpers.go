package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// pathID parses a positive integer path parameter; anything else is a 422,
// matching the schema-boundary contract for ids.
func pathID(c echo.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || v == 0 {
		return 0, echo.NewHTTPError(http.StatusUnprocessableEntity,
			fmt.Sprintf("Invalid path parameter: %s", name))
	}
	return uint(v), nil
}

func queryID(c echo.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.QueryParam(name), 10, 32)
	if err != nil || v == 0 {
		return 0, echo.NewHTTPError(http.StatusUnprocessableEntity,
			fmt.Sprintf("Invalid query parameter: %s", name))
	}
	return uint(v), nil
}
