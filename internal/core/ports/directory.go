package ports

import (
	"context"

	"github.com/skywings/booking-system/internal/core/domain"
)

// RemoteDirectory is the external document collection holding the canonical
// multi-device user records. Every call may fail; callers treat failures as
// non-fatal and fall back to local state.
type RemoteDirectory interface {
	List(ctx context.Context) ([]domain.User, error)
	Upsert(ctx context.Context, id string, user domain.User) error
	Delete(ctx context.Context, id string) error
}

// CredentialRepository persists sign-in credentials for the built-in
// identity provider.
type CredentialRepository interface {
	Create(ctx context.Context, cred *domain.Credential) error
	FindByEmail(ctx context.Context, email string) (*domain.Credential, error)
}
