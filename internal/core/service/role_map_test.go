package service

import (
	"context"
	"testing"

	"github.com/skywings/booking-system/internal/core/domain"
)

func TestRoleMap_LookupIsCaseInsensitive(t *testing.T) {
	m := NewRoleMap(context.Background(), nil, discardLogger)

	m.SetRole(context.Background(), "Admin@SkyWings.com", domain.RoleAdmin)

	role, ok := m.RoleFor("admin@skywings.com")
	if !ok || role != domain.RoleAdmin {
		t.Fatalf("expected Admin via lower-cased lookup, got %q ok=%v", role, ok)
	}
	role, ok = m.RoleFor("ADMIN@SKYWINGS.COM")
	if !ok || role != domain.RoleAdmin {
		t.Fatalf("expected Admin via upper-cased lookup, got %q ok=%v", role, ok)
	}
}

func TestRoleMap_UnknownEmail(t *testing.T) {
	m := NewRoleMap(context.Background(), nil, discardLogger)

	if _, ok := m.RoleFor("ghost@skywings.com"); ok {
		t.Fatal("unknown email must report ok=false")
	}
	if _, ok := m.RoleFor(""); ok {
		t.Fatal("empty email must report ok=false")
	}
}

func TestRoleMap_EmptyEmailSetIsNoOp(t *testing.T) {
	store := newStubSnapshotStore()
	m := NewRoleMap(context.Background(), store, discardLogger)

	m.SetRole(context.Background(), "", domain.RoleAdmin)
	if store.saves != 0 {
		t.Fatal("empty email must not be recorded or persisted")
	}
}

func TestRoleMap_OverwriteAndPersist(t *testing.T) {
	store := newStubSnapshotStore()
	m := NewRoleMap(context.Background(), store, discardLogger)

	m.SetRole(context.Background(), "a@b.com", domain.RoleAdmin)
	m.SetRole(context.Background(), "a@b.com", domain.RoleUser) // demotion overwrites

	reloaded := NewRoleMap(context.Background(), store, discardLogger)
	role, ok := reloaded.RoleFor("a@b.com")
	if !ok || role != domain.RoleUser {
		t.Fatalf("expected persisted demotion to User, got %q ok=%v", role, ok)
	}
}
