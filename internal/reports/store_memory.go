package reports

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// MemoryStore is an in-process Store with per-entry expiry.
type MemoryStore struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data map[string]map[string]memoryEntry // assetID -> operation -> entry
	now  func() time.Time
}

// NewMemoryStore constructs a MemoryStore. A non-positive ttl keeps entries forever.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:  ttl,
		data: make(map[string]map[string]memoryEntry),
		now:  time.Now,
	}
}

// Put stores a copy of payload.
func (s *MemoryStore) Put(ctx context.Context, assetID, operation string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	entry := memoryEntry{payload: append([]byte(nil), payload...)}
	if s.ttl > 0 {
		entry.expiresAt = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	ops, ok := s.data[assetID]
	if !ok {
		ops = make(map[string]memoryEntry)
		s.data[assetID] = ops
	}
	ops[operation] = entry
	return nil
}

// Latest returns unexpired payloads for assetID.
func (s *MemoryStore) Latest(ctx context.Context, assetID string) (map[string]json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	now := s.now()

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]json.RawMessage)
	for op, entry := range s.data[assetID] {
		if !entry.expiresAt.IsZero() && !now.Before(entry.expiresAt) {
			continue
		}
		out[op] = append(json.RawMessage(nil), entry.payload...)
	}
	return out, nil
}

var _ Store = (*MemoryStore)(nil)
