package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/skywings/booking-system/internal/core/domain"
	"github.com/skywings/booking-system/internal/core/ports"
)

// UserRoster owns the in-memory user directory for the current session.
// Local state is the source of truth: every mutation applies synchronously
// here and to the role map, while the matching remote-directory write is
// enqueued fire-and-forget. Remote failures never roll anything back.
type UserRoster struct {
	mu     sync.RWMutex
	users  []domain.User
	source ports.Source

	remote ports.RemoteDirectory // nil when the backend is unreachable
	queue  ports.SyncQueue       // nil disables remote sync
	roles  ports.RoleResolver
	log    zerolog.Logger
}

// NewUserRoster starts from the seed directory tagged SourceLocal; callers
// typically follow up with a best-effort Reload.
func NewUserRoster(seed []domain.User, remote ports.RemoteDirectory, queue ports.SyncQueue, roles ports.RoleResolver, log zerolog.Logger) *UserRoster {
	r := &UserRoster{source: ports.SourceLocal, remote: remote, queue: queue, roles: roles, log: log}
	r.users = append(r.users, seed...)
	return r
}

// Users returns a copy of the directory and where it came from.
func (r *UserRoster) Users() ([]domain.User, ports.Source) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out, r.source
}

// Add appends a new entry with id USR-### derived from the current end-user
// count. Ids can repeat after deletions; the directory tolerates that.
func (r *UserRoster) Add(ctx context.Context, in ports.UserInput) domain.User {
	r.mu.Lock()

	endUsers := 0
	for _, u := range r.users {
		if u.Role == domain.RoleUser {
			endUsers++
		}
	}

	user := domain.User{
		ID:            fmt.Sprintf("USR-%03d", endUsers+1),
		Name:          in.Name,
		Email:         in.Email,
		Role:          in.Role,
		MemberSince:   in.MemberSince,
		TotalFlights:  in.TotalFlights,
		LoyaltyPoints: in.LoyaltyPoints,
		Status:        in.Status,
		LastLogin:     in.LastLogin,
	}
	r.users = append(r.users, user)
	r.mu.Unlock()

	r.roles.SetRole(ctx, user.Email, user.Role)
	r.enqueue(ports.UserSyncTask{Op: ports.SyncUpsert, UserID: user.ID, User: user})

	r.log.Info().Str("id", user.ID).Str("email", user.Email).Msg("user added")
	return user
}

// Update merges the patch into the matching entry, re-records the role map
// when the result has an email and role, and enqueues a remote upsert.
// Unknown ids are a silent no-op.
func (r *UserRoster) Update(ctx context.Context, id string, patch ports.UserPatch) {
	r.mu.Lock()
	var updated *domain.User
	for i := range r.users {
		if r.users[i].ID != id {
			continue
		}
		applyUserPatch(&r.users[i], patch)
		u := r.users[i]
		updated = &u
		break
	}
	r.mu.Unlock()

	if updated == nil {
		return
	}
	if updated.Email != "" && updated.Role != "" {
		r.roles.SetRole(ctx, updated.Email, updated.Role)
	}
	r.enqueue(ports.UserSyncTask{Op: ports.SyncUpsert, UserID: updated.ID, User: *updated})
}

// Delete removes the matching entry, resets its role mapping to User rather
// than deleting it, and enqueues a remote delete. Unknown ids are a silent
// no-op.
func (r *UserRoster) Delete(ctx context.Context, id string) {
	r.mu.Lock()
	var removed *domain.User
	kept := r.users[:0]
	for _, u := range r.users {
		if u.ID == id && removed == nil {
			ru := u
			removed = &ru
			continue
		}
		kept = append(kept, u)
	}
	r.users = kept
	r.mu.Unlock()

	if removed == nil {
		return
	}
	r.roles.SetRole(ctx, removed.Email, domain.RoleUser)
	r.enqueue(ports.UserSyncTask{Op: ports.SyncDelete, UserID: removed.ID})

	r.log.Info().Str("id", removed.ID).Msg("user deleted")
}

// Reload refetches the remote directory. On success the in-memory list is
// replaced and tagged remote; on any failure — including no backend at all —
// the existing list is retained and tagged local. Never returns an error, so
// the admin surface stays usable offline.
func (r *UserRoster) Reload(ctx context.Context) ports.Source {
	if r.remote == nil {
		r.setSource(ports.SourceLocal)
		return ports.SourceLocal
	}

	users, err := r.remote.List(ctx)
	if err != nil {
		r.log.Warn().Err(err).Msg("remote user directory unavailable, keeping local list")
		r.setSource(ports.SourceLocal)
		return ports.SourceLocal
	}

	r.mu.Lock()
	r.users = users
	r.source = ports.SourceRemote
	r.mu.Unlock()
	return ports.SourceRemote
}

func (r *UserRoster) setSource(s ports.Source) {
	r.mu.Lock()
	r.source = s
	r.mu.Unlock()
}

func (r *UserRoster) enqueue(task ports.UserSyncTask) {
	if r.queue == nil {
		return
	}
	r.queue.Enqueue(task)
}

func applyUserPatch(u *domain.User, p ports.UserPatch) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.MemberSince != nil {
		u.MemberSince = *p.MemberSince
	}
	if p.TotalFlights != nil {
		u.TotalFlights = *p.TotalFlights
	}
	if p.LoyaltyPoints != nil {
		u.LoyaltyPoints = *p.LoyaltyPoints
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
	if p.LastLogin != nil {
		u.LastLogin = *p.LastLogin
	}
}
