package storage

import "os"

// FileStore persists a document as a single file on disk. Reads and writes
// always cover the whole file; a missing file surfaces as fs.ErrNotExist so
// the owning service can decide how to initialize it.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) ReadAll() ([]byte, error) {
	return os.ReadFile(s.path)
}

func (s *FileStore) WriteAll(data []byte) error {
	return os.WriteFile(s.path, data, 0o644)
}
