package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"invalid input", E(KindInvalidInput, "bad"), http.StatusBadRequest},
		{"not found", E(KindNotFound, "missing"), http.StatusNotFound},
		{"unavailable", E(KindUnavailable, "down"), http.StatusServiceUnavailable},
		{"unknown kind", E(KindUnknown, "odd"), http.StatusInternalServerError},
		{"untyped", fmt.Errorf("plain"), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("wrap: %w", E(KindNotFound, "missing")), http.StatusNotFound},
	}
	for _, tt := range tests {
		if got := HTTPStatus(tt.err); got != tt.want {
			t.Errorf("%s: HTTPStatus = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	if got := E(KindNotFound, "project missing").Error(); got != "project missing" {
		t.Errorf("Error() = %q, want %q", got, "project missing")
	}
	if got := E(KindNotFound, "").Error(); got != "not_found" {
		t.Errorf("Error() without message = %q, want %q", got, "not_found")
	}
}

func TestLocalizationKey(t *testing.T) {
	err := EK(KindNotFound, " projects.not_found.title ", "missing")
	if got := LocalizationKey(err); got != "projects.not_found.title" {
		t.Errorf("LocalizationKey = %q, want trimmed key", got)
	}
	if got := LocalizationKey(fmt.Errorf("plain")); got != "" {
		t.Errorf("LocalizationKey for untyped = %q, want empty", got)
	}
}
