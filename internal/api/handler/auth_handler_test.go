package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/frostline/freezer-api/internal/api/middleware"
	"github.com/frostline/freezer-api/internal/core/domain"
	"github.com/frostline/freezer-api/internal/core/service"
)

// newAuthApp wires the session middleware and auth routes the way the router
// does, with a minimal error handler for the status assertions.
func newAuthApp(t *testing.T) *echo.Echo {
	t.Helper()

	sessions := service.NewSessionService("test-secret", time.Hour)
	h := NewAuthHandler(sessions, time.Hour)

	e := echo.New()
	e.Validator = NewValidator()
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		if errors.Is(err, domain.ErrUnauthorized) {
			_ = c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			return
		}
		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, map[string]any{"error": he.Message})
			return
		}
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal"})
	}
	e.Use(middleware.Session(sessions))

	anyIdentity := middleware.RequireRoles(domain.RoleAdmin, domain.RoleModerator, domain.RoleUser)
	e.POST("/api/auth", h.Login)
	e.GET("/api/auth", h.Me, anyIdentity)
	e.DELETE("/api/auth", h.Logout)
	return e
}

func login(t *testing.T, e *echo.Echo, name string) *http.Cookie {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/auth", strings.NewReader(`{"login":"`+name+`"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.CookieName {
			return cookie
		}
	}
	t.Fatalf("login did not set the %s cookie", middleware.CookieName)
	return nil
}

// You need to log in before asking who you are.
func TestAuthFlow(t *testing.T) {
	e := newAuthApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 before login, got %d", rec.Code)
	}

	// "Admin" is a reserved login.
	cookie := login(t, e, "Admin")

	req = httptest.NewRequest(http.MethodGet, "/api/auth", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 after login, got %d", rec.Code)
	}

	var identity domain.Identity
	if err := json.Unmarshal(rec.Body.Bytes(), &identity); err != nil {
		t.Fatalf("invalid identity json: %v", err)
	}
	if identity.Login != "Admin" || identity.Role != domain.RoleAdmin {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestLogin_RoleDerivation(t *testing.T) {
	e := newAuthApp(t)

	cases := map[string]domain.Role{
		"Admin": domain.RoleAdmin,
		"Moder": domain.RoleModerator,
		"alice": domain.RoleUser,
	}
	for name, want := range cases {
		cookie := login(t, e, name)

		req := httptest.NewRequest(http.MethodGet, "/api/auth", nil)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		var identity domain.Identity
		if err := json.Unmarshal(rec.Body.Bytes(), &identity); err != nil {
			t.Fatalf("invalid identity json for %q: %v", name, err)
		}
		if identity.Role != want {
			t.Fatalf("login %q: want role %v, got %v", name, want, identity.Role)
		}
	}
}

func TestLogin_MissingLogin(t *testing.T) {
	e := newAuthApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	e := newAuthApp(t)
	cookie := login(t, e, "Moder")

	req := httptest.NewRequest(http.MethodDelete, "/api/auth", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", rec.Code)
	}

	var cleared *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.CookieName {
			cleared = c
		}
	}
	if cleared == nil || cleared.MaxAge >= 0 {
		t.Fatalf("logout must expire the auth cookie, got %+v", cleared)
	}

	// The client drops the cookie; a bare request is anonymous again.
	req = httptest.NewRequest(http.MethodGet, "/api/auth", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", rec.Code)
	}
}
