package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/frostline/freezer-api/internal/core/domain"
)

// SessionService signs and verifies identity tokens (HS256). The identity a
// cookie carries is trusted only after the signature and expiry check.
type SessionService struct {
	secret   []byte
	tokenTTL time.Duration
}

func NewSessionService(secret string, tokenTTL time.Duration) *SessionService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &SessionService{secret: []byte(secret), tokenTTL: tokenTTL}
}

func (s *SessionService) Issue(identity domain.Identity) (string, error) {
	claims := jwt.MapClaims{
		"login": identity.Login,
		"role":  int(identity.Role),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

func (s *SessionService) Verify(token string) (*domain.Identity, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrUnauthorized
	}

	login, _ := claims["login"].(string)
	rawRole, ok := claims["role"].(float64)
	if login == "" || !ok {
		return nil, domain.ErrUnauthorized
	}

	role, err := domain.RoleFromInt(int(rawRole))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	return &domain.Identity{Login: login, Role: role}, nil
}
