package assets

import (
	"context"
	"maps"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Asset // assetID -> asset
	now  func() time.Time
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Asset),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a new asset.
func (r *MemoryRepo) Create(ctx context.Context, asset Asset) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[asset.ID] = cloneAsset(asset)
	return nil
}

// GetByID returns an asset by ID for its owner.
func (r *MemoryRepo) GetByID(ctx context.Context, ownerID, assetID string) (Asset, error) {
	if err := ctx.Err(); err != nil {
		return Asset{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	asset, ok := r.data[assetID]
	if !ok || asset.OwnerID != ownerID {
		return Asset{}, ErrNotFound
	}
	return cloneAsset(asset), nil
}

// ListByOwner returns assets for an owner, newest first, honoring limit/offset.
func (r *MemoryRepo) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	owned := make([]Asset, 0)
	for _, asset := range r.data {
		if asset.OwnerID == ownerID {
			owned = append(owned, cloneAsset(asset))
		}
	}
	r.mu.RUnlock()

	if offset >= len(owned) {
		return []Asset{}, nil
	}

	sort.Slice(owned, func(i, j int) bool {
		if owned[i].CreatedAt.Equal(owned[j].CreatedAt) {
			return owned[i].ID < owned[j].ID
		}
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})

	end := len(owned)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return owned[offset:end], nil
}

// UpdateHealthScore overwrites the persisted health score of an asset.
func (r *MemoryRepo) UpdateHealthScore(ctx context.Context, assetID string, score int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	asset, ok := r.data[assetID]
	if !ok {
		return ErrNotFound
	}
	asset.HealthScore = &score
	asset.UpdatedAt = r.now()
	r.data[assetID] = asset
	return nil
}

func cloneAsset(a Asset) Asset {
	a.Content = maps.Clone(a.Content)
	if a.HealthScore != nil {
		score := *a.HealthScore
		a.HealthScore = &score
	}
	return a
}

var _ Repo = (*MemoryRepo)(nil)
