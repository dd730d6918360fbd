package util

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestToDomainErrorNil(t *testing.T) {
	if got := ToDomainError(nil); got != nil {
		t.Fatalf("ToDomainError(nil) = %v, want nil", got)
	}
}

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewPayloadInvalid("bad payload", nil)
	got := ToDomainError(original)
	if got.Code != "PAYLOAD_INVALID" || got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("passthrough = %+v, want PAYLOAD_INVALID/400", got)
	}
}

func TestToDomainErrorNoRows(t *testing.T) {
	got := ToDomainError(pgx.ErrNoRows)
	if got.Code != "NOT_FOUND" || got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("pgx.ErrNoRows mapped to %+v, want NOT_FOUND/404", got)
	}
}

func TestToDomainErrorDeadline(t *testing.T) {
	got := ToDomainError(context.DeadlineExceeded)
	if got.Code != "CONNECTION_ERROR" || got.HTTPStatus != http.StatusServiceUnavailable {
		t.Fatalf("deadline mapped to %+v, want CONNECTION_ERROR/503", got)
	}
}

func TestToDomainErrorGeneric(t *testing.T) {
	got := ToDomainError(errors.New("boom"))
	if got.Code != "STORE_ERROR" || got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("generic mapped to %+v, want STORE_ERROR/500", got)
	}
}

func TestRouteErrors(t *testing.T) {
	notMatched := ToDomainError(NewRouteNotMatched("GET", "/other"))
	if notMatched.Code != "ROUTE_NOT_MATCHED" || notMatched.HTTPStatus != http.StatusNotFound {
		t.Fatalf("route not matched = %+v, want ROUTE_NOT_MATCHED/404", notMatched)
	}

	notAllowed := ToDomainError(NewMethodNotAllowed("DELETE", "/staff"))
	if notAllowed.Code != "ROUTE_NOT_MATCHED" || notAllowed.HTTPStatus != http.StatusMethodNotAllowed {
		t.Fatalf("method not allowed = %+v, want ROUTE_NOT_MATCHED/405", notAllowed)
	}
}
