package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rpggio/farmrec/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestStore_ReadMissing(t *testing.T) {
	s := New(t.TempDir())

	_, err := s.ReadDocument(context.Background(), "crops")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStore_WriteRead(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := New(dir)
	ctx := context.Background()

	require.NoError(t, s.WriteDocument(ctx, "crops", []byte(`[{"name":"Lúa"}]`)))
	data, err := s.ReadDocument(ctx, "crops")
	require.NoError(t, err)
	require.Equal(t, `[{"name":"Lúa"}]`, string(data))

	onDisk, err := os.ReadFile(filepath.Join(dir, "crops.json"))
	require.NoError(t, err)
	require.Equal(t, data, onDisk)
}

func TestStore_OverwriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	ctx := context.Background()

	require.NoError(t, s.WriteDocument(ctx, "animals", []byte(`[1]`)))
	require.NoError(t, s.WriteDocument(ctx, "animals", []byte(`[2]`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "animals.json", entries[0].Name())

	data, err := s.ReadDocument(ctx, "animals")
	require.NoError(t, err)
	require.Equal(t, `[2]`, string(data))
}

func TestStore_RejectsTraversal(t *testing.T) {
	s := New(t.TempDir())
	ctx := context.Background()

	for _, name := range []string{"", "../users", "a/b", `a\b`} {
		err := s.WriteDocument(ctx, name, []byte(`[]`))
		require.ErrorIs(t, err, repository.ErrInvalidInput, "name %q", name)
	}
}

func TestStore_CanceledContext(t *testing.T) {
	s := New(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, s.WriteDocument(ctx, "crops", []byte(`[]`)), context.Canceled)
	_, err := s.ReadDocument(ctx, "crops")
	require.ErrorIs(t, err, context.Canceled)
}

func TestStore_UpdatedAt(t *testing.T) {
	s := New(t.TempDir())
	ctx := context.Background()

	_, err := s.UpdatedAt(ctx, "crops")
	require.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, s.WriteDocument(ctx, "crops", []byte(`[]`)))
	at, err := s.UpdatedAt(ctx, "crops")
	require.NoError(t, err)
	require.False(t, at.IsZero())
}
