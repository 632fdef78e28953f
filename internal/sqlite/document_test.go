package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rpggio/farmrec/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestDocumentRepository_ReadMissing(t *testing.T) {
	db := NewTestDB(t)
	repo := NewDocumentRepository(db)

	_, err := repo.ReadDocument(context.Background(), "crops")
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.UpdatedAt(context.Background(), "crops")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDocumentRepository_WriteReplace(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewDocumentRepository(db)

	require.NoError(t, repo.WriteDocument(ctx, "crops", []byte(`[{"name":"Lúa"}]`)))
	require.NoError(t, repo.WriteDocument(ctx, "crops", []byte(`[{"name":"Ngô"}]`)))
	require.NoError(t, repo.WriteDocument(ctx, "animals", []byte(`[]`)))

	data, err := repo.ReadDocument(ctx, "crops")
	require.NoError(t, err)
	require.Equal(t, `[{"name":"Ngô"}]`, string(data))

	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&count))
	require.Equal(t, 2, count)

	updatedAt, err := repo.UpdatedAt(ctx, "crops")
	require.NoError(t, err)
	require.False(t, updatedAt.IsZero())
}

func TestDocumentRepository_EmptyName(t *testing.T) {
	repo := NewDocumentRepository(NewTestDB(t))
	err := repo.WriteDocument(context.Background(), "", []byte(`[]`))
	require.ErrorIs(t, err, repository.ErrInvalidInput)
}

func TestDocumentRepository_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "farm.db")
	ctx := context.Background()

	db, err := New(path)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	require.NoError(t, NewDocumentRepository(db).WriteDocument(ctx, "users", []byte(`[{"username":"admin"}]`)))
	require.NoError(t, db.Close())

	db, err = New(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.RunMigrations())

	data, err := NewDocumentRepository(db).ReadDocument(ctx, "users")
	require.NoError(t, err)
	require.Equal(t, `[{"username":"admin"}]`, string(data))
}
