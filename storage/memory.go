package storage

import (
	"io/fs"
	"sync"
)

// MemStore is an in-memory DocumentStore used by tests. It reports
// fs.ErrNotExist until the first write, matching FileStore on a path that
// does not exist yet.
type MemStore struct {
	mu   sync.RWMutex
	data []byte
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) ReadAll() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil, fs.ErrNotExist
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, nil
}

func (s *MemStore) WriteAll(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make([]byte, len(data))
	copy(s.data, data)
	return nil
}
