package ports

import (
	"context"

	"github.com/skywings/booking-system/internal/core/domain"
)

// Source tags where the current user list came from.
type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
)

// UserInput carries the data for a new directory entry; the id is assigned
// by the service (USR-### from the current end-user count).
type UserInput struct {
	Name          string
	Email         string
	Role          domain.Role
	MemberSince   string
	TotalFlights  int
	LoyaltyPoints int
	Status        domain.UserStatus
	LastLogin     string
}

// UserPatch is a partial update: nil fields are left untouched.
type UserPatch struct {
	Name          *string
	Email         *string
	Role          *domain.Role
	MemberSince   *string
	TotalFlights  *int
	LoyaltyPoints *int
	Status        *domain.UserStatus
	LastLogin     *string
}

// UserService owns the in-memory user directory. Local mutations apply
// synchronously; the matching remote-directory writes are enqueued
// best-effort and never block or fail the caller. Role-map updates keyed by
// email happen as a synchronous side effect of every mutation.
type UserService interface {
	Users() ([]domain.User, Source)
	Add(ctx context.Context, in UserInput) domain.User
	Update(ctx context.Context, id string, patch UserPatch)
	Delete(ctx context.Context, id string)

	// Reload refetches the remote directory. On success the in-memory list is
	// replaced and tagged SourceRemote; on any failure the list is retained
	// unchanged and tagged SourceLocal. Reload never returns an error.
	Reload(ctx context.Context) Source
}

// RoleResolver maps a lower-cased email to its durable role assignment.
type RoleResolver interface {
	// RoleFor reports the role recorded for email; ok is false when no
	// assignment exists (callers default to non-admin).
	RoleFor(email string) (role domain.Role, ok bool)
	SetRole(ctx context.Context, email string, role domain.Role)
}
