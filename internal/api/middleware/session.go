package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/frostline/freezer-api/internal/core/domain"
	"github.com/frostline/freezer-api/internal/core/ports"
)

// CookieName is the session cookie holding the signed identity token.
const CookieName = "auth"

const identityKey = "identity"

// Session reconstructs the caller's Identity from the auth cookie and stores
// it in the request context. It only reads; it never touches the cookie.
// An absent or invalid token simply leaves no identity behind — protected
// routes then fail closed in RequireRoles.
func Session(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			identity, err := sessions.Verify(cookie.Value)
			if err != nil {
				return next(c)
			}

			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// CurrentIdentity returns the identity extracted by Session, if any.
func CurrentIdentity(c echo.Context) (*domain.Identity, bool) {
	identity, ok := c.Get(identityKey).(*domain.Identity)
	return identity, ok && identity != nil
}
