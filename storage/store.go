package storage

// DocumentStore is the port both collections persist through: a
// whole-document read and a whole-document overwrite. There is no partial
// access; callers re-read the full document on every operation.
type DocumentStore interface {
	ReadAll() ([]byte, error)
	WriteAll(data []byte) error
}
