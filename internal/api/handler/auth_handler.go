package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/frostline/freezer-api/internal/api/metrics"
	"github.com/frostline/freezer-api/internal/api/middleware"
	"github.com/frostline/freezer-api/internal/core/domain"
	"github.com/frostline/freezer-api/internal/core/ports"
)

// AuthHandler owns the session lifecycle: login writes a signed identity
// token into the auth cookie, logout clears it.
type AuthHandler struct {
	sessions   ports.SessionService
	sessionTTL time.Duration
}

func NewAuthHandler(sessions ports.SessionService, sessionTTL time.Duration) *AuthHandler {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthHandler{sessions: sessions, sessionTTL: sessionTTL}
}

type loginRequest struct {
	Login string `json:"login" validate:"required"`
}

// Login establishes an Identity for the session. The role is derived from
// the login name alone: "Admin" and "Moder" are reserved, everyone else is a
// plain user.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login name"
// @Success      200   {object}  domain.Identity
// @Failure      400   {object}  errorResponse
// @Router       /api/auth [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	identity := domain.Identity{
		Login: req.Login,
		Role:  domain.RoleForLogin(req.Login),
	}

	token, err := h.sessions.Issue(identity)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	metrics.LoginsTotal.WithLabelValues(identity.Role.String()).Inc()
	return c.JSON(http.StatusOK, identity)
}

// Me returns the Identity carried by the current session. The route is
// gated on any authenticated role; this only unpacks the context value.
//
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.Identity
// @Failure      401  {object}  errorResponse
// @Router       /api/auth [get]
func (h *AuthHandler) Me(c echo.Context) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return domain.ErrUnauthorized
	}
	return c.JSON(http.StatusOK, identity)
}

// Logout clears the session cookie. It succeeds whether or not a session
// existed.
//
// @Summary      Log out
// @Tags         auth
// @Success      200
// @Router       /api/auth [delete]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.NoContent(http.StatusOK)
}
