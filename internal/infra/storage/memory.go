package storage

import (
	"context"
	"sync"

	"event-customize/internal/usecase/shared"
)

type MemoryStore struct {
	prefix string

	mu      sync.RWMutex
	objects map[string][]byte
}

func NewMemoryStore(prefix string) *MemoryStore {
	return &MemoryStore{prefix: prefix, objects: make(map[string][]byte)}
}

func (s *MemoryStore) Upload(_ context.Context, data []byte, contentType string) (*shared.UploadResult, error) {
	key := objectKey(s.prefix, data, contentType)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[key]; !ok {
		s.objects[key] = append([]byte(nil), data...)
	}
	return &shared.UploadResult{Key: key, URL: "memory://" + key}, nil
}

func (s *MemoryStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[key]
	return data, ok
}
