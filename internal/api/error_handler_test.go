package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/frostline/freezer-api/internal/core/domain"
)

func TestResolveError_DomainMapping(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	log := zerolog.Nop()

	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrFreezerNotFound, http.StatusNotFound},
		{domain.ErrProductNotFound, http.StatusNotFound},
		{domain.ErrUnauthorized, http.StatusUnauthorized},
		{domain.ErrInsufficientStock, http.StatusUnprocessableEntity},
		{domain.ErrInvalidAmount, http.StatusUnprocessableEntity},
		{domain.ErrInvalidProductName, http.StatusUnprocessableEntity},
		{domain.ErrTooManyRequests, http.StatusTooManyRequests},
		{errors.New("mongo: broken pipe"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if code, _ := resolveError(tc.err, log, c); code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
	}

	// Wrapped domain errors map the same as bare ones.
	wrapped := fmt.Errorf("put-out %q: %w", "fz1", domain.ErrInsufficientStock)
	if code, _ := resolveError(wrapped, log, c); code != http.StatusUnprocessableEntity {
		t.Fatalf("wrapped logic error: expected 422, got %d", code)
	}
}

// Internal causes must not leak to the client.
func TestResolveError_HidesInternalDetails(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, msg := resolveError(errors.New("dial tcp 10.0.0.5:27017: connection refused"), zerolog.Nop(), c)
	if msg != "internal server error" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}

func TestResolveError_EchoHTTPError(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	code, msg := resolveError(echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), zerolog.Nop(), c)
	if code != http.StatusBadRequest || msg != "invalid payload" {
		t.Fatalf("echo error mishandled: %d %q", code, msg)
	}
}
