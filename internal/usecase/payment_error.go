package usecase

import (
	"errors"
	"mp_checkout/internal/domain/entities"
	"net/http"
)

const UnknownErrorCause = "Unknown error cause"

// NormalizedError is the HTTP-facing form of a failed payment.
type NormalizedError struct {
	Message string
	Status  int
}

// NormalizeError turns any payment failure into a message and HTTP status.
//
// Only gateway errors that carry a cause list contribute their own values:
// the first cause description and the reported status. Empty or zero values
// fall back to "Unknown error cause" and 400.
func NormalizeError(err error) NormalizedError {
	out := NormalizedError{Message: UnknownErrorCause, Status: http.StatusBadRequest}

	var gwErr *entities.GatewayError
	if !errors.As(err, &gwErr) || gwErr == nil || gwErr.Cause == nil {
		return out
	}

	if len(gwErr.Cause) > 0 && gwErr.Cause[0].Description != "" {
		out.Message = gwErr.Cause[0].Description
	}
	if gwErr.Status != 0 && validHTTPStatus(gwErr.Status) {
		out.Status = gwErr.Status
	}
	return out
}

// net/http refuses codes above 999 and treats 1xx as informational, which
// would be followed by an implicit 200.
func validHTTPStatus(code int) bool {
	return code >= 200 && code <= 999
}
