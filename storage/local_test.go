package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	path, err := store.Upload(ctx, uuid.New(), "questions_backup.json", strings.NewReader(`[{"question":"q"}]`))
	require.NoError(t, err)
	assert.Contains(t, path, "questions_backup")

	reader, err := store.Download(ctx, path)
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, `[{"question":"q"}]`, string(data))

	require.NoError(t, store.Delete(ctx, path))

	_, err = store.Download(ctx, path)
	assert.Error(t, err)
}

func TestLocalStorageSanitizesFilename(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	path, err := store.Upload(context.Background(), uuid.New(), "my backup/file.json", strings.NewReader("{}"))
	require.NoError(t, err)
	assert.NotContains(t, path, " ")
	assert.Contains(t, path, "my_backup_file")
}
