package reports

import (
	"context"
	"encoding/json"
	"fmt"
)

// Store keeps the most recent payload of each scoring operation per asset.
type Store interface {
	Put(ctx context.Context, assetID, operation string, payload []byte) error
	// Latest returns the stored payloads keyed by operation. Expired or
	// missing entries are simply absent.
	Latest(ctx context.Context, assetID string) (map[string]json.RawMessage, error)
}

// Recorder encodes results as JSON and writes them to a Store.
type Recorder struct {
	Store Store
}

// NewRecorder constructs a Recorder over store.
func NewRecorder(store Store) *Recorder {
	return &Recorder{Store: store}
}

// Record stores payload as the latest result of operation for assetID.
func (r *Recorder) Record(ctx context.Context, assetID, operation string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s report: %w", operation, err)
	}
	return r.Store.Put(ctx, assetID, operation, data)
}
