package local

import (
	"path/filepath"
	"strconv"
	"sync"
)

// Devices hands out one storage namespace per chat.
// With an empty root every chat gets in-memory storage.
// The same chat always gets the same Storage value, so concurrent
// sessions of one chat share its lock.
type Devices struct {
	root string

	mu       sync.Mutex
	memories map[int64]*MemoryStorage
	files    map[int64]*FileStorage
}

// NewDevices creates a device registry rooted at dir
func NewDevices(dir string) *Devices {
	return &Devices{
		root:     dir,
		memories: make(map[int64]*MemoryStorage),
		files:    make(map[int64]*FileStorage),
	}
}

// Open returns the storage of the given chat
func (d *Devices) Open(chatID int64) Storage {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.root == "" {
		storage, ok := d.memories[chatID]
		if !ok {
			storage = NewMemoryStorage()
			d.memories[chatID] = storage
		}
		return storage
	}

	storage, ok := d.files[chatID]
	if !ok {
		storage = NewFileStorage(filepath.Join(d.root, strconv.FormatInt(chatID, 10)+".json"))
		d.files[chatID] = storage
	}
	return storage
}
