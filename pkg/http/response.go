package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the error payload the frontend expects: a bare object with
// an "error" key, no envelope.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON writes data as-is with the given status code.
func JSON(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, data)
}

// OK writes data as-is with HTTP 200.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// ErrorJSON writes {"error": msg} with the given status code.
func ErrorJSON(c echo.Context, statusCode int, msg string) error {
	return c.JSON(statusCode, ErrorBody{Error: msg})
}

// BadRequest writes {"error": msg} with HTTP 400.
func BadRequest(c echo.Context, msg string) error {
	return ErrorJSON(c, http.StatusBadRequest, msg)
}

// TooManyRequests writes {"error": msg} with HTTP 429.
func TooManyRequests(c echo.Context, msg string) error {
	return ErrorJSON(c, http.StatusTooManyRequests, msg)
}
