package local

import "errors"

var (
	ErrInvalidKey        = errors.New("local storage: invalid key")
	ErrAtomicWriteFailed = errors.New("local storage: atomic write failed")
)

// Storage is a string key-value store scoped to one device
type Storage interface {
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
}

func checkKey(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	return nil
}
