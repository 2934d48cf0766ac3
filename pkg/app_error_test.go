package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(appErr, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if appErr.Error() != "INTERNAL_ERROR: An internal error occurred: boom" {
		t.Fatalf("unexpected error text %q", appErr.Error())
	}

	body := appErr.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected http error: %+v", body)
	}

	simple := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	if simple.HTTPStatus != http.StatusBadRequest || simple.Unwrap() != nil {
		t.Fatalf("unexpected simple error: %+v", simple)
	}
	if simple.Error() != "INVALID_REQUEST: Invalid request" {
		t.Fatalf("unexpected error text %q", simple.Error())
	}
}
