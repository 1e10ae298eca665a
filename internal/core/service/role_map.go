package service

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/skywings/booking-system/internal/core/domain"
	"github.com/skywings/booking-system/internal/core/ports"
)

// RoleMap is the durable lower-cased email→role mapping. It is the actual
// authorization signal consulted when resolving a principal's role, and is
// independent of the user directory.
type RoleMap struct {
	mu    sync.RWMutex
	roles map[string]domain.Role
	store ports.SnapshotStore
	log   zerolog.Logger
}

// NewRoleMap loads the persisted mapping, starting empty when the snapshot
// is missing or unparseable.
func NewRoleMap(ctx context.Context, store ports.SnapshotStore, log zerolog.Logger) *RoleMap {
	m := &RoleMap{roles: make(map[string]domain.Role), store: store, log: log}
	var roles map[string]domain.Role
	if loadSnapshot(ctx, store, log, KeyRoles, &roles) && roles != nil {
		m.roles = roles
	}
	return m
}

// RoleFor looks up the role recorded for email, case-insensitively. ok is
// false when no assignment exists.
func (m *RoleMap) RoleFor(email string) (domain.Role, bool) {
	if email == "" {
		return "", false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	role, ok := m.roles[strings.ToLower(email)]
	return role, ok
}

// SetRole records the role for email (lower-cased key) and persists the full
// map.
func (m *RoleMap) SetRole(ctx context.Context, email string, role domain.Role) {
	if email == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roles[strings.ToLower(email)] = role
	persistSnapshot(ctx, m.store, m.log, KeyRoles, m.roles)
}
