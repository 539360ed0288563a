package engineers

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"enginuity/internal/platform/validation"
)

type memoryStore struct {
	byID map[string]Engineer
}

func newMemoryStore() *memoryStore {
	return &memoryStore{byID: map[string]Engineer{}}
}

func (m *memoryStore) emailTaken(email, exceptID string) bool {
	for id, e := range m.byID {
		if id != exceptID && strings.EqualFold(e.Email, email) {
			return true
		}
	}
	return false
}

func (m *memoryStore) Create(_ context.Context, p Profile) (Engineer, error) {
	if m.emailTaken(p.Email, "") {
		return Engineer{}, ErrEmailConflict
	}
	e := fromProfile(uuid.NewString(), p)
	m.byID[e.ID] = e
	return e, nil
}

func (m *memoryStore) Get(_ context.Context, id string) (Engineer, error) {
	e, ok := m.byID[id]
	if !ok {
		return Engineer{}, ErrEngineerNotFound
	}
	return e, nil
}

func (m *memoryStore) List(context.Context) ([]Engineer, error) {
	out := make([]Engineer, 0, len(m.byID))
	for _, e := range m.byID {
		out = append(out, e)
	}
	return out, nil
}

func (m *memoryStore) Update(_ context.Context, id string, p Profile) (Engineer, error) {
	if _, ok := m.byID[id]; !ok {
		return Engineer{}, ErrEngineerNotFound
	}
	if m.emailTaken(p.Email, id) {
		return Engineer{}, ErrEmailConflict
	}
	e := fromProfile(id, p)
	m.byID[id] = e
	return e, nil
}

func (m *memoryStore) Delete(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return ErrEngineerNotFound
	}
	delete(m.byID, id)
	return nil
}

func fromProfile(id string, p Profile) Engineer {
	now := time.Now().UTC()
	return Engineer{
		ID: id, FirstName: p.FirstName, LastName: p.LastName, Email: p.Email,
		CurrentRole: p.CurrentRole, CurrentLevel: p.CurrentLevel, Department: p.Department,
		StartDate: p.StartDate, TimeInRole: p.TimeInRole, LastYearRating: p.LastYearRating,
		CreatedAt: now, UpdatedAt: now,
	}
}

func validProfile() Profile {
	return Profile{
		FirstName:    "Grace",
		LastName:     "Hopper",
		Email:        "grace@example.com",
		CurrentRole:  "Software Engineer",
		CurrentLevel: "Senior",
		Department:   "Platform",
	}
}

func TestCreateNormalizesAndStores(t *testing.T) {
	svc := NewService(newMemoryStore())
	p := validProfile()
	p.Email = "  Grace@Example.COM "
	p.FirstName = " Grace "

	e, err := svc.Create(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.ID == "" || e.Email != "grace@example.com" || e.FirstName != "Grace" {
		t.Fatalf("unexpected engineer: %+v", e)
	}
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	svc := NewService(newMemoryStore())
	if _, err := svc.Create(context.Background(), validProfile()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dup := validProfile()
	dup.Email = "GRACE@example.com"
	_, err := svc.Create(context.Background(), dup)
	if !errors.Is(err, ErrEmailConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Profile)
		field  string
	}{
		{name: "missing first name", mutate: func(p *Profile) { p.FirstName = "  " }, field: "firstName"},
		{name: "bad email", mutate: func(p *Profile) { p.Email = "grace" }, field: "email"},
		{name: "missing role", mutate: func(p *Profile) { p.CurrentRole = "" }, field: "currentRole"},
		{name: "negative tenure", mutate: func(p *Profile) {
			months := -1
			p.TimeInRole = &months
		}, field: "timeInRole"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			p := validProfile()
			tc.mutate(&p)
			_, err := NewService(newMemoryStore()).Create(context.Background(), p)
			issues, ok := validation.Issues(err)
			if !ok {
				t.Fatalf("expected validation error, got %v", err)
			}
			if issues[0].Field != tc.field {
				t.Fatalf("expected issue on %s, got %v", tc.field, issues)
			}
		})
	}
}

func TestGetUnknownOrMalformedID(t *testing.T) {
	svc := NewService(newMemoryStore())
	for _, id := range []string{"not-a-uuid", uuid.NewString()} {
		if _, err := svc.Get(context.Background(), id); !errors.Is(err, ErrEngineerNotFound) {
			t.Fatalf("expected not found for %q, got %v", id, err)
		}
	}
}

func TestUpdateAndDelete(t *testing.T) {
	store := newMemoryStore()
	svc := NewService(store)
	created, err := svc.Create(context.Background(), validProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := validProfile()
	p.CurrentLevel = "Staff"
	updated, err := svc.Update(context.Background(), created.ID, p)
	if err != nil {
		t.Fatalf("unexpected update error: %v", err)
	}
	if updated.CurrentLevel != "Staff" {
		t.Fatalf("expected level to change, got %q", updated.CurrentLevel)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, ErrEngineerNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}
