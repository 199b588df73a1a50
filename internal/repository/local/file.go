package local

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	defaultDirPerm  os.FileMode = 0o700
	defaultFilePerm os.FileMode = 0o600
)

// FileStorage keeps all items of one device in a single JSON object file
type FileStorage struct {
	path string
	mu   sync.Mutex
}

// NewFileStorage creates storage backed by the file at path
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: filepath.Clean(path)}
}

// Path returns the backing file location
func (s *FileStorage) Path() string {
	return s.path
}

// GetItem returns the stored value and whether it exists.
// A corrupt file reads as empty.
func (s *FileStorage) GetItem(key string) (string, bool, error) {
	if err := checkKey(key); err != nil {
		return "", false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read()
	if err != nil {
		return "", false, err
	}
	value, ok := items[key]
	return value, ok, nil
}

// SetItem overwrites the value under key and rewrites the file atomically
func (s *FileStorage) SetItem(key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read()
	if err != nil {
		return err
	}
	items[key] = value

	content, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}
	return writeAtomic(s.path, content)
}

func (s *FileStorage) read() (map[string]string, error) {
	items := make(map[string]string)

	content, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return items, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	if err := json.Unmarshal(content, &items); err != nil {
		// Corrupt content is dropped, the next write replaces it
		return make(map[string]string), nil
	}
	return items, nil
}

func writeAtomic(path string, content []byte) error {
	parentDir := filepath.Dir(path)
	if err := os.MkdirAll(parentDir, defaultDirPerm); err != nil {
		return fmt.Errorf("%w: ensure dir %s: %v", ErrAtomicWriteFailed, parentDir, err)
	}

	tmp, err := os.CreateTemp(parentDir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("%w: create temp for %s: %v", ErrAtomicWriteFailed, path, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("%w: write temp for %s: %v", ErrAtomicWriteFailed, path, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("%w: sync temp for %s: %v", ErrAtomicWriteFailed, path, err)
	}
	if err := tmp.Chmod(defaultFilePerm); err != nil {
		return fmt.Errorf("%w: chmod temp for %s: %v", ErrAtomicWriteFailed, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close temp for %s: %v", ErrAtomicWriteFailed, path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("%w: rename temp for %s: %v", ErrAtomicWriteFailed, path, err)
	}
	return nil
}
