package engineers

import "context"

type StoreAPI interface {
	Create(ctx context.Context, profile Profile) (Engineer, error)
	Get(ctx context.Context, engineerID string) (Engineer, error)
	List(ctx context.Context) ([]Engineer, error)
	Update(ctx context.Context, engineerID string, profile Profile) (Engineer, error)
	Delete(ctx context.Context, engineerID string) error
}
