package engineers

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"enginuity/internal/platform/validation"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

// Create registers an engineer. A second engineer with the same email
// (case-insensitive) fails with ErrEmailConflict.
func (s *Service) Create(ctx context.Context, profile Profile) (Engineer, error) {
	profile = normalize(profile)
	if err := validation.Struct(profile); err != nil {
		return Engineer{}, err
	}
	return s.store.Create(ctx, profile)
}

func (s *Service) Get(ctx context.Context, engineerID string) (Engineer, error) {
	if _, err := uuid.Parse(engineerID); err != nil {
		return Engineer{}, ErrEngineerNotFound
	}
	return s.store.Get(ctx, engineerID)
}

func (s *Service) List(ctx context.Context) ([]Engineer, error) {
	return s.store.List(ctx)
}

func (s *Service) Update(ctx context.Context, engineerID string, profile Profile) (Engineer, error) {
	if _, err := uuid.Parse(engineerID); err != nil {
		return Engineer{}, ErrEngineerNotFound
	}
	profile = normalize(profile)
	if err := validation.Struct(profile); err != nil {
		return Engineer{}, err
	}
	return s.store.Update(ctx, engineerID, profile)
}

// Delete removes the engineer together with their evaluations and
// calibration ratings.
func (s *Service) Delete(ctx context.Context, engineerID string) error {
	if _, err := uuid.Parse(engineerID); err != nil {
		return ErrEngineerNotFound
	}
	return s.store.Delete(ctx, engineerID)
}

func normalize(p Profile) Profile {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.CurrentRole = strings.TrimSpace(p.CurrentRole)
	p.CurrentLevel = strings.TrimSpace(p.CurrentLevel)
	p.Department = strings.TrimSpace(p.Department)
	p.LastYearRating = strings.TrimSpace(p.LastYearRating)
	return p
}
