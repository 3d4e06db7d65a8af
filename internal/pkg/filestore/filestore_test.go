package filestore_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/forest-management-gis/internal/pkg/filestore"
)

func newStore(t *testing.T) (*filestore.Store, afero.Fs) {
	t.Helper()
	fsys := afero.NewMemMapFs()
	store, err := filestore.New(fsys, "uploads", zap.NewNop())
	require.NoError(t, err)
	return store, fsys
}

func TestStore_SaveAndRead(t *testing.T) {
	store, fsys := newStore(t)

	path, err := store.Save("tree-1_abc.jpg", []byte("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "uploads/tree-1_abc.jpg", path)

	exists, err := afero.Exists(fsys, "uploads/tree-1_abc.jpg")
	require.NoError(t, err)
	assert.True(t, exists)

	data, err := store.Read("tree-1_abc.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestStore_SaveStripsDirectories(t *testing.T) {
	store, fsys := newStore(t)

	path, err := store.Save("../../etc/passwd", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "uploads/passwd", path)

	exists, _ := afero.Exists(fsys, "etc/passwd")
	assert.False(t, exists)
}

func TestStore_Remove(t *testing.T) {
	store, _ := newStore(t)

	path, err := store.Save("photo.png", []byte("png"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(path))
	exists, err := store.Exists("photo.png")
	require.NoError(t, err)
	assert.False(t, exists)

	// повторное удаление не ошибка
	assert.NoError(t, store.Remove(path))
}

func TestStore_InvalidName(t *testing.T) {
	store, _ := newStore(t)

	_, err := store.Save("", []byte("x"))
	assert.ErrorIs(t, err, filestore.ErrInvalidName)

	err = store.Remove("/")
	assert.ErrorIs(t, err, filestore.ErrInvalidName)
}
