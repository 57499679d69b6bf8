package http

import (
	"errors"
	"net/http"

	"parcelflow/internal/core/domain/model/delivery"
	"parcelflow/internal/core/domain/model/payment"
	"parcelflow/internal/core/domain/model/profile"
	"parcelflow/internal/core/domain/services"
	"parcelflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorResponse is the JSON error body shared by all endpoints.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps application and domain errors to HTTP status codes.
// Validation failures are client errors, permission denials are forbidden,
// lost writes and duplicates are conflicts, and domain rule violations are
// unprocessable.
func writeError(c echo.Context, err error) error {
	return c.JSON(statusForError(err), errorResponse{
		Code:    statusForError(err),
		Message: err.Error(),
	})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusBadRequest
	case errors.Is(err, delivery.ErrTerminalState),
		errors.Is(err, delivery.ErrInvalidTransition),
		errors.Is(err, delivery.ErrNotAssignable),
		errors.Is(err, profile.ErrNotPendingApproval),
		errors.Is(err, profile.ErrNotARider),
		errors.Is(err, payment.ErrPaymentNotPending),
		errors.Is(err, payment.ErrPaymentNotSettleable),
		errors.Is(err, payment.ErrPaymentNotPaid),
		errors.Is(err, payment.ErrNotCashOnDelivery),
		errors.Is(err, services.ErrIneligibleRider):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
