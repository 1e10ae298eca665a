package service

import (
	"context"
	"errors"
	"testing"

	"github.com/skywings/booking-system/internal/core/domain"
	"github.com/skywings/booking-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubRemoteDirectory struct {
	users   []domain.User
	listErr error
}

func (s *stubRemoteDirectory) List(_ context.Context) ([]domain.User, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *stubRemoteDirectory) Upsert(_ context.Context, _ string, _ domain.User) error {
	return nil
}

func (s *stubRemoteDirectory) Delete(_ context.Context, _ string) error {
	return nil
}

type recordingQueue struct {
	tasks []ports.UserSyncTask
}

func (q *recordingQueue) Enqueue(task ports.UserSyncTask) {
	q.tasks = append(q.tasks, task)
}

func seedUsers() []domain.User {
	return []domain.User{
		{ID: "USR-001", Name: "Sarah Johnson", Email: "sarah@example.com", Role: domain.RoleUser},
		{ID: "USR-002", Name: "Mike Chen", Email: "mike@example.com", Role: domain.RoleUser},
		{ID: "ADM-001", Name: "Admin", Email: "admin@skywings.com", Role: domain.RoleAdmin},
	}
}

// ---------------------------------------------------------------------------
// Add / Update / Delete
// ---------------------------------------------------------------------------

func TestUserRoster_Add_SequentialIDFromEndUserCount(t *testing.T) {
	roles := NewRoleMap(context.Background(), nil, discardLogger)
	queue := &recordingQueue{}
	r := NewUserRoster(seedUsers(), nil, queue, roles, discardLogger)

	user := r.Add(context.Background(), ports.UserInput{
		Name:   "Emma Wilson",
		Email:  "emma@example.com",
		Role:   domain.RoleUser,
		Status: domain.UserActive,
	})

	// Two seed end-users, the admin does not count.
	if user.ID != "USR-003" {
		t.Fatalf("expected USR-003, got %s", user.ID)
	}

	// Appended, not prepended.
	users, _ := r.Users()
	if users[len(users)-1].ID != "USR-003" {
		t.Fatal("new user must be appended at the end")
	}

	// Role recorded and remote upsert enqueued.
	if role, ok := roles.RoleFor("emma@example.com"); !ok || role != domain.RoleUser {
		t.Errorf("role mapping not recorded: %q ok=%v", role, ok)
	}
	if len(queue.tasks) != 1 || queue.tasks[0].Op != ports.SyncUpsert || queue.tasks[0].UserID != "USR-003" {
		t.Errorf("expected one upsert task, got %+v", queue.tasks)
	}
}

func TestUserRoster_Update_MergesPatchAndReRecordsRole(t *testing.T) {
	roles := NewRoleMap(context.Background(), nil, discardLogger)
	queue := &recordingQueue{}
	r := NewUserRoster(seedUsers(), nil, queue, roles, discardLogger)

	admin := domain.RoleAdmin
	r.Update(context.Background(), "USR-001", ports.UserPatch{Role: &admin})

	users, _ := r.Users()
	if users[0].Role != domain.RoleAdmin {
		t.Fatal("role not updated on the record")
	}
	// Promotion lands in the role map keyed by the record's email.
	if role, ok := roles.RoleFor("sarah@example.com"); !ok || role != domain.RoleAdmin {
		t.Errorf("role map not updated: %q ok=%v", role, ok)
	}
	if len(queue.tasks) != 1 || queue.tasks[0].Op != ports.SyncUpsert {
		t.Errorf("expected one upsert task, got %+v", queue.tasks)
	}
}

func TestUserRoster_Update_UnknownIDIsSilentNoOp(t *testing.T) {
	queue := &recordingQueue{}
	r := NewUserRoster(seedUsers(), nil, queue, NewRoleMap(context.Background(), nil, discardLogger), discardLogger)

	name := "Nobody"
	r.Update(context.Background(), "USR-999", ports.UserPatch{Name: &name})

	if len(queue.tasks) != 0 {
		t.Fatal("no-op update must not enqueue a sync task")
	}
}

func TestUserRoster_Delete_ResetsRoleMappingToUser(t *testing.T) {
	roles := NewRoleMap(context.Background(), nil, discardLogger)
	roles.SetRole(context.Background(), "mike@example.com", domain.RoleAdmin)
	queue := &recordingQueue{}
	r := NewUserRoster(seedUsers(), nil, queue, roles, discardLogger)

	r.Delete(context.Background(), "USR-002")

	users, _ := r.Users()
	if len(users) != 2 {
		t.Fatalf("expected 2 users after delete, got %d", len(users))
	}
	// The mapping is reset, not removed.
	role, ok := roles.RoleFor("mike@example.com")
	if !ok || role != domain.RoleUser {
		t.Fatalf("deleted user's role must reset to User, got %q ok=%v", role, ok)
	}
	if len(queue.tasks) != 1 || queue.tasks[0].Op != ports.SyncDelete || queue.tasks[0].UserID != "USR-002" {
		t.Errorf("expected one delete task, got %+v", queue.tasks)
	}
}

func TestUserRoster_Delete_UnknownIDIsSilentNoOp(t *testing.T) {
	queue := &recordingQueue{}
	r := NewUserRoster(seedUsers(), nil, queue, NewRoleMap(context.Background(), nil, discardLogger), discardLogger)

	r.Delete(context.Background(), "USR-999")

	users, _ := r.Users()
	if len(users) != 3 || len(queue.tasks) != 0 {
		t.Fatal("unknown id must change nothing")
	}
}

// ---------------------------------------------------------------------------
// Reload
// ---------------------------------------------------------------------------

func TestUserRoster_Reload_ReplacesListFromRemote(t *testing.T) {
	remote := &stubRemoteDirectory{users: []domain.User{
		{ID: "USR-010", Email: "remote@example.com", Role: domain.RoleUser},
	}}
	r := NewUserRoster(seedUsers(), remote, nil, NewRoleMap(context.Background(), nil, discardLogger), discardLogger)

	if src := r.Reload(context.Background()); src != ports.SourceRemote {
		t.Fatalf("expected remote source, got %s", src)
	}

	users, src := r.Users()
	if src != ports.SourceRemote {
		t.Errorf("source tag not updated: %s", src)
	}
	if len(users) != 1 || users[0].ID != "USR-010" {
		t.Fatalf("remote list must replace local: %+v", users)
	}
}

func TestUserRoster_Reload_FailureKeepsLocalList(t *testing.T) {
	remote := &stubRemoteDirectory{listErr: errors.New("backend down")}
	r := NewUserRoster(seedUsers(), remote, nil, NewRoleMap(context.Background(), nil, discardLogger), discardLogger)

	if src := r.Reload(context.Background()); src != ports.SourceLocal {
		t.Fatalf("expected local source on failure, got %s", src)
	}

	users, _ := r.Users()
	if len(users) != 3 {
		t.Fatalf("failed reload must keep the existing list, got %d users", len(users))
	}
}

func TestUserRoster_Reload_NoBackendDegradesToLocal(t *testing.T) {
	r := NewUserRoster(seedUsers(), nil, nil, NewRoleMap(context.Background(), nil, discardLogger), discardLogger)

	if src := r.Reload(context.Background()); src != ports.SourceLocal {
		t.Fatalf("expected local source without a backend, got %s", src)
	}
}
