package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"gorm.io/gorm"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err  *Error
		want int
	}{
		{Validation("bad"), http.StatusBadRequest},
		{Unauthorized("no"), http.StatusUnauthorized},
		{Forbidden("no"), http.StatusForbidden},
		{NotFound("gone"), http.StatusNotFound},
		{Conflict("dup"), http.StatusConflict},
		{RateLimited("slow down"), http.StatusTooManyRequests},
		{Unavailable("off"), http.StatusServiceUnavailable},
		{Internal("oops", errors.New("boom")), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := tt.err.Status(); got != tt.want {
			t.Errorf("%q: Status() = %d, want %d", tt.err.Message, got, tt.want)
		}
	}
}

func TestFrom(t *testing.T) {
	if From(nil) != nil {
		t.Fatal("From(nil) should be nil")
	}

	wrapped := fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound)
	if got := From(wrapped); got.Kind != KindNotFound {
		t.Errorf("record not found mapped to %v", got.Kind)
	}
	if got := From(gorm.ErrDuplicatedKey); got.Kind != KindConflict {
		t.Errorf("duplicated key mapped to %v", got.Kind)
	}

	forbidden := Forbidden("private")
	if got := From(fmt.Errorf("ctx: %w", forbidden)); got != forbidden {
		t.Error("From should unwrap existing *Error values")
	}

	boom := errors.New("boom")
	got := From(boom)
	if got.Kind != KindInternal || !errors.Is(got, boom) {
		t.Errorf("unknown error should be Internal and wrap the cause, got %+v", got)
	}
}

func TestIs(t *testing.T) {
	if !Is(Conflict("x"), KindConflict) {
		t.Error("Is should match the kind")
	}
	if Is(errors.New("x"), KindConflict) {
		t.Error("plain errors have no kind")
	}
}
