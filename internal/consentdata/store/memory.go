// Package store provides the backends for ASPSP consent data.
package store

import (
	"context"
	"sync"

	"oba/pkg/platform/sentinel"
)

// InMemoryStore keeps blobs in process memory.
type InMemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewInMemoryStore creates an empty store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{data: make(map[string]string)}
}

func (s *InMemoryStore) Put(_ context.Context, encryptedID, blob string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[encryptedID] = blob
	return nil
}

func (s *InMemoryStore) Get(_ context.Context, encryptedID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	blob, ok := s.data[encryptedID]
	if !ok {
		return "", sentinel.ErrNotFound
	}
	return blob, nil
}

func (s *InMemoryStore) Delete(_ context.Context, encryptedIDs ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range encryptedIDs {
		delete(s.data, id)
	}
	return nil
}
