package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"inventori/internal/config"
)

func TestLocalStore_PutOpenDelete(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "http://localhost:8080/")
	assert.NoError(t, err)

	ctx := context.Background()
	url, err := store.Put(ctx, "boxes/1/photo.jpg", strings.NewReader("jpeg bytes"), "image/jpeg")
	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/images/boxes/1/photo.jpg", url)

	reader, err := store.Open(ctx, "boxes/1/photo.jpg")
	assert.NoError(t, err)
	data, err := io.ReadAll(reader)
	assert.NoError(t, err)
	reader.Close()
	assert.Equal(t, "jpeg bytes", string(data))

	assert.NoError(t, store.Delete(ctx, "boxes/1/photo.jpg"))
	_, err = store.Open(ctx, "boxes/1/photo.jpg")
	assert.Error(t, err)
}

func TestLocalStore_KeyFromURL(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "http://localhost:8080")
	assert.NoError(t, err)

	key, ok := store.KeyFromURL("http://localhost:8080/images/boxes/1/photo.jpg")
	assert.True(t, ok)
	assert.Equal(t, "boxes/1/photo.jpg", key)

	_, ok = store.KeyFromURL("https://cdn.example.com/somewhere/else.jpg")
	assert.False(t, ok)

	_, ok = store.KeyFromURL("http://localhost:8080/images/")
	assert.False(t, ok)
}

func TestLocalStore_DeleteMissingIsNoop(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "http://localhost:8080")
	assert.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "boxes/9/never-there.png"))
}

func TestLocalStore_RejectsTraversalKeys(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "http://localhost:8080")
	assert.NoError(t, err)

	_, err = store.Put(context.Background(), "../escape.jpg", strings.NewReader("x"), "image/jpeg")
	assert.Error(t, err)
}

func TestNewLocalStore_RequiresRoot(t *testing.T) {
	_, err := NewLocalStore("", "http://localhost:8080")
	assert.Error(t, err)
}

func TestNewStore_UnknownBackend(t *testing.T) {
	cfg := &config.Configuration{}
	cfg.Storage.Backend = "ftp"

	_, err := NewStore(cfg)
	assert.Error(t, err)
}
