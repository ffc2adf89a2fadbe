package ports

import "github.com/frostline/freezer-api/internal/core/domain"

// SessionService issues and verifies the signed identity tokens carried in
// the session cookie.
type SessionService interface {
	// Issue signs a token embedding the identity, with an expiry.
	Issue(identity domain.Identity) (string, error)
	// Verify checks signature and expiry and reconstructs the identity.
	// It never mutates anything; failures map to domain.ErrUnauthorized.
	Verify(token string) (*domain.Identity, error)
}
