package scoring

import (
	"context"
	"sync"
)

type fakeStore struct {
	mu        sync.Mutex
	assets    map[string]Asset
	scores    map[string]int
	updateErr error
}

func newFakeStore(assets ...Asset) *fakeStore {
	s := &fakeStore{assets: map[string]Asset{}, scores: map[string]int{}}
	for _, a := range assets {
		s.assets[a.ID] = a
	}
	return s
}

func (s *fakeStore) FindOwnedAsset(_ context.Context, ownerID, assetID string) (Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.assets[assetID]
	if !ok || a.OwnerID != ownerID {
		return Asset{}, ErrNotFound
	}
	return a, nil
}

func (s *fakeStore) UpdateHealthScore(_ context.Context, assetID string, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.updateErr != nil {
		return s.updateErr
	}
	s.scores[assetID] = score
	return nil
}

func (s *fakeStore) score(assetID string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.scores[assetID]
	return v, ok
}

type recordCall struct {
	assetID   string
	operation string
	payload   any
}

type fakeRecorder struct {
	mu    sync.Mutex
	calls []recordCall
	err   error
}

func (r *fakeRecorder) Record(_ context.Context, assetID, operation string, payload any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, recordCall{assetID: assetID, operation: operation, payload: payload})
	return r.err
}
