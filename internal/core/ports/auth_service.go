package ports

import (
	"context"

	"github.com/foodmenu/menu-system/internal/core/domain"
)

// TokenClaims is the identity recovered from a verified token.
type TokenClaims struct {
	Username string
	Role     string
}

// TokenVerifier validates a presented bearer token. Verification is
// stateless: no server-side session table is consulted.
type TokenVerifier interface {
	VerifyToken(token string) (*TokenClaims, error)
}

type AuthService interface {
	TokenVerifier
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
