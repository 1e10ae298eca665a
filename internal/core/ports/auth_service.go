package ports

import (
	"context"

	"github.com/skywings/booking-system/internal/core/domain"
)

// AuthResult is returned on successful registration or login.
type AuthResult struct {
	Token     string
	Principal domain.Principal
}

// AuthService wraps the identity provider: credential registration and
// sign-in, plus mock sessions for environments without a real provider.
// Principals carry the role resolved from the durable role map.
type AuthService interface {
	Register(ctx context.Context, email, password, displayName string, role domain.Role) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// CreateMockSession stores a fabricated principal in the durable local
	// store; it is consulted in preference to the real provider at startup.
	CreateMockSession(ctx context.Context, email string, role domain.Role, displayName string) domain.Principal
	MockSession(ctx context.Context) (domain.Principal, error)
	ClearMockSession(ctx context.Context)
}
