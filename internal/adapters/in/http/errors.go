package http

import (
	"errors"
	"net/http"
	"strconv"

	"picking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps a use-case error to the HTTP status contract:
// NotFound -> 404, Conflict -> 409, Forbidden -> 403, validation -> 400,
// anything else -> 500 with the detail withheld.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
		message = err.Error()
	}

	return ctx.JSON(status, errorResponse{
		Code:    status,
		Message: message,
	})
}

// respondBadRequest reports a malformed request before any command exists.
func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

var (
	errInvalidTaskID   = errors.New("invalid task id")
	errInvalidLineID   = errors.New("invalid line id")
	errMissingOperator = errors.New("missing " + operatorHeader + " header")
	errInvalidOperator = errors.New("invalid " + operatorHeader + " header")
)

func parsePositiveInt(raw string) (int, error) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if value <= 0 {
		return 0, errors.New("value must be positive")
	}
	return value, nil
}
