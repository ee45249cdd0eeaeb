package http

import (
	"errors"
	"net/http"

	"supplymitra/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps a use-case error onto the HTTP error taxonomy:
// validation failures are 400, unknown objects 404, authorization failures
// 403, rejected transitions and stock shortages 409, storage timeouts 503,
// anything else 500. Rejected transitions carry the allowed next statuses.
func writeError(c echo.Context, err error) error {
	var transitionErr *errs.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		return c.JSON(http.StatusConflict, ErrorResponse{
			Code:               http.StatusConflict,
			Message:            transitionErr.Error(),
			AllowedTransitions: transitionErr.Allowed,
		})
	}

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return writeStatus(c, http.StatusBadRequest, err)
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeStatus(c, http.StatusNotFound, err)
	case errors.Is(err, errs.ErrForbidden):
		return writeStatus(c, http.StatusForbidden, err)
	case errors.Is(err, errs.ErrInsufficientStock):
		return writeStatus(c, http.StatusConflict, err)
	case errors.Is(err, errs.ErrUnavailable):
		return writeStatus(c, http.StatusServiceUnavailable, err)
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

// writeNotFoundOnForbidden is writeError with authorization failures
// disguised as 404. Used on single-order reads so a non-participant cannot
// probe which order identifiers exist.
func writeNotFoundOnForbidden(c echo.Context, err error) error {
	if errors.Is(err, errs.ErrForbidden) {
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "order not found",
		})
	}
	return writeError(c, err)
}

func writeStatus(c echo.Context, status int, err error) error {
	return c.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
