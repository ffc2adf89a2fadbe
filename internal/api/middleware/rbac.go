package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/frostline/freezer-api/internal/core/domain"
)

// Allowed is the authorization decision: membership of the identity's role
// in the allowed set. A nil identity holds no roles and is always denied.
func Allowed(identity *domain.Identity, allowed map[domain.Role]struct{}) bool {
	if identity == nil {
		return false
	}
	_, ok := allowed[identity.Role]
	return ok
}

// RequireRoles enforces role-based access control for a route. The denial is
// identical whether no identity exists or the role is simply not in the set,
// so a caller cannot probe which of the two it was.
func RequireRoles(roles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, _ := CurrentIdentity(c)
			if !Allowed(identity, allowed) {
				return domain.ErrUnauthorized
			}
			return next(c)
		}
	}
}
