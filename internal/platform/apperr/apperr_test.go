package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestValidationNamesField(t *testing.T) {
	err := Validation("pain", "must be between 0 and 6")
	if err.Error() != "pain: must be between 0 and 6" {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if KindOf(err) != KindValidation {
		t.Error("expected validation kind")
	}
}

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validation("vas", "out of range"), http.StatusBadRequest},
		{NotFound("insight not found"), http.StatusNotFound},
		{Conflict("already completed"), http.StatusConflict},
		{Upstream("ledger write", errors.New("timeout")), http.StatusServiceUnavailable},
		{Invariant("assessment escaped validation"), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := Status(c.err); got != c.want {
			t.Errorf("Status(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("complete insight: %w", NotFound("insight not found"))
	if KindOf(err) != KindNotFound {
		t.Error("expected kind to survive wrapping")
	}
	if Status(err) != http.StatusNotFound {
		t.Error("expected 404 after wrapping")
	}
}

func TestUpstreamUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := Upstream("catalog lookup", cause)
	if !errors.Is(err, cause) {
		t.Error("expected upstream error to unwrap to its cause")
	}
}
