package evaluation

import "context"

// ListCriteria returns the catalog grouped by category, heaviest first.
func (s *Service) ListCriteria(ctx context.Context) ([]Criterion, error) {
	return s.store.ListCriteria(ctx)
}
