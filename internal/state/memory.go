package state

import (
	"context"
	"encoding/json"
	"hash/fnv"
	"sync"
)

const memoryShards = 16

type memoryShard struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// MemoryStore is the process-local volatile backend. Keys are sharded
// across mutexes so unrelated sessions never contend on one lock. Values
// are stored serialized, so a caller mutating its copy after Set cannot
// corrupt the stored record.
type MemoryStore struct {
	shards [memoryShards]*memoryShard
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	m := &MemoryStore{}
	for i := range m.shards {
		m.shards[i] = &memoryShard{data: make(map[string][]byte)}
	}
	return m
}

func (m *MemoryStore) shard(key string) *memoryShard {
	h := fnv.New32a()
	h.Write([]byte(key))
	return m.shards[h.Sum32()%memoryShards]
}

func (m *MemoryStore) Get(_ context.Context, sessionKey string) (*SessionState, error) {
	sh := m.shard(sessionKey)
	sh.mu.RLock()
	raw, ok := sh.data[sessionKey]
	sh.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	var s SessionState
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (m *MemoryStore) Set(_ context.Context, sessionKey string, s *SessionState) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	sh := m.shard(sessionKey)
	sh.mu.Lock()
	sh.data[sessionKey] = raw
	sh.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, sessionKey string) error {
	sh := m.shard(sessionKey)
	sh.mu.Lock()
	delete(sh.data, sessionKey)
	sh.mu.Unlock()
	return nil
}
