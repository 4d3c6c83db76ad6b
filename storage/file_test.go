package storage

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "users.json"))

	_, err := s.ReadAll()
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFileStoreRoundTrip(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "users.json"))

	require.NoError(t, s.WriteAll([]byte(`[{"email":"a@x.com"}]`)))
	data, err := s.ReadAll()
	require.NoError(t, err)
	assert.JSONEq(t, `[{"email":"a@x.com"}]`, string(data))
}

func TestFileStoreOverwrite(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "users.json"))

	require.NoError(t, s.WriteAll([]byte(`["old content that is longer"]`)))
	require.NoError(t, s.WriteAll([]byte(`[]`)))

	data, err := s.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

func TestMemStoreStartsAbsent(t *testing.T) {
	s := NewMemStore()

	_, err := s.ReadAll()
	assert.ErrorIs(t, err, fs.ErrNotExist)

	require.NoError(t, s.WriteAll([]byte(`[]`)))
	data, err := s.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

func TestMemStoreReadReturnsCopy(t *testing.T) {
	s := NewMemStore()
	require.NoError(t, s.WriteAll([]byte(`[1]`)))

	data, err := s.ReadAll()
	require.NoError(t, err)
	data[1] = 'x'

	again, err := s.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(again))
}
