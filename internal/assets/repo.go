package assets

import "context"

// Repo defines persistence operations for assets.
type Repo interface {
	Create(ctx context.Context, asset Asset) error
	GetByID(ctx context.Context, ownerID, assetID string) (Asset, error)
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]Asset, error)
	UpdateHealthScore(ctx context.Context, assetID string, score int) error
}
