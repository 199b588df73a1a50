package local

import "sync"

// MemoryStorage keeps items in process memory
type MemoryStorage struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryStorage creates an empty in-memory storage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{items: make(map[string]string)}
}

// GetItem returns the stored value and whether it exists
func (s *MemoryStorage) GetItem(key string) (string, bool, error) {
	if err := checkKey(key); err != nil {
		return "", false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.items[key]
	return value, ok, nil
}

// SetItem overwrites the value under key
func (s *MemoryStorage) SetItem(key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = value
	return nil
}
