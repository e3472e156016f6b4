package bootstrap

import (
	"context"
	"errors"

	"resume-scoring/internal/assets"
	"resume-scoring/internal/scoring"
)

// ScoringStore exposes an assets.Repo as the scoring engine's asset store.
type ScoringStore struct {
	repo assets.Repo
}

// NewScoringStore wraps repo.
func NewScoringStore(repo assets.Repo) ScoringStore {
	return ScoringStore{repo: repo}
}

// FindOwnedAsset maps assets.ErrNotFound onto scoring.ErrNotFound.
func (s ScoringStore) FindOwnedAsset(ctx context.Context, ownerID, assetID string) (scoring.Asset, error) {
	if ownerID == "" || assetID == "" {
		return scoring.Asset{}, scoring.ErrNotFound
	}
	asset, err := s.repo.GetByID(ctx, ownerID, assetID)
	if err != nil {
		if errors.Is(err, assets.ErrNotFound) {
			return scoring.Asset{}, scoring.ErrNotFound
		}
		return scoring.Asset{}, err
	}
	var content any
	if asset.Content != nil {
		content = asset.Content
	}
	return scoring.Asset{ID: asset.ID, OwnerID: asset.OwnerID, Content: content}, nil
}

// UpdateHealthScore persists score on the asset.
func (s ScoringStore) UpdateHealthScore(ctx context.Context, assetID string, score int) error {
	err := s.repo.UpdateHealthScore(ctx, assetID, score)
	if errors.Is(err, assets.ErrNotFound) {
		return scoring.ErrNotFound
	}
	return err
}
