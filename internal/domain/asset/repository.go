package asset

import "context"

// Repository defines the persistence contract for assets.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Asset, error)
	ListByProfile(ctx context.Context, profileID string) ([]*Asset, error)
	Create(ctx context.Context, a *Asset) error
	Update(ctx context.Context, a *Asset) error
	Delete(ctx context.Context, id string) error
}
