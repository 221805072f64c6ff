package store

import (
	"context"
	"sync"

	"github.com/shopkit/shoprec/core"
)

// MemoryKV 是内存实现的 KeyValueStore，用于测试/开发/原型。
// 与 RedisStore 接口一致，快照读写逻辑可以不改一行地在两者间切换。
type MemoryKV struct {
	mu     sync.RWMutex
	data   map[string][]byte
	hashes map[string]map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{
		data:   make(map[string][]byte),
		hashes: make(map[string]map[string][]byte),
	}
}

func (m *MemoryKV) Name() string { return "memory" }

func (m *MemoryKV) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, core.ErrStoreNotFound
	}
	return v, nil
}

func (m *MemoryKV) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryKV) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	delete(m.hashes, key)
	return nil
}

func (m *MemoryKV) BatchGet(ctx context.Context, keys []string) (map[string][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make(map[string][]byte, len(keys))
	for _, k := range keys {
		if v, ok := m.data[k]; ok {
			result[k] = v
		}
	}
	return result, nil
}

func (m *MemoryKV) HGet(ctx context.Context, key, field string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.hashes[key]
	if !ok {
		return nil, core.ErrStoreNotFound
	}
	v, ok := h[field]
	if !ok {
		return nil, core.ErrStoreNotFound
	}
	return v, nil
}

func (m *MemoryKV) HSet(ctx context.Context, key, field string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.hashes[key] == nil {
		m.hashes[key] = make(map[string][]byte)
	}
	m.hashes[key][field] = value
	return nil
}

func (m *MemoryKV) HGetAll(ctx context.Context, key string) (map[string][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.hashes[key]
	if !ok {
		return map[string][]byte{}, nil
	}
	result := make(map[string][]byte, len(h))
	for f, v := range h {
		result[f] = v
	}
	return result, nil
}

func (m *MemoryKV) Close() error { return nil }

var _ core.KeyValueStore = (*MemoryKV)(nil)
