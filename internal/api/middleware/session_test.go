package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/frostline/freezer-api/internal/core/domain"
	"github.com/frostline/freezer-api/internal/core/service"
)

func TestSession_ValidCookie(t *testing.T) {
	sessions := service.NewSessionService("secret", time.Hour)
	token, err := sessions.Issue(domain.Identity{Login: "Moder", Role: domain.RoleModerator})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Session(sessions)(func(c echo.Context) error {
		called = true
		identity, ok := CurrentIdentity(c)
		if !ok {
			t.Fatalf("identity not extracted")
		}
		if identity.Login != "Moder" || identity.Role != domain.RoleModerator {
			t.Fatalf("unexpected identity: %+v", identity)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestSession_MissingCookie(t *testing.T) {
	sessions := service.NewSessionService("secret", time.Hour)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(sessions)(func(c echo.Context) error {
		if _, ok := CurrentIdentity(c); ok {
			t.Fatalf("no identity should be set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestSession_TamperedToken(t *testing.T) {
	sessions := service.NewSessionService("secret", time.Hour)
	other := service.NewSessionService("other-secret", time.Hour)
	token, err := other.Issue(domain.Identity{Login: "Admin", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(sessions)(func(c echo.Context) error {
		if _, ok := CurrentIdentity(c); ok {
			t.Fatalf("forged identity must not be extracted")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

// Extraction must not mutate the carrier: the response sets no cookies.
func TestSession_ReadOnly(t *testing.T) {
	sessions := service.NewSessionService("secret", time.Hour)
	token, _ := sessions.Issue(domain.Identity{Login: "bob", Role: domain.RoleUser})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(sessions)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if got := rec.Header().Get(echo.HeaderSetCookie); got != "" {
		t.Fatalf("extraction wrote a cookie: %s", got)
	}
}
