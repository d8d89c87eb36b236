package storage

import (
	"context"
	"strings"
	"testing"

	"marketplace/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStore(t *testing.T) *blobImageStore {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewBlobImageStore(bucket, &config.Config{
		Storage: &config.StorageConfig{PublicBaseURL: "https://cdn.example.com/images/"},
	})

	return store.(*blobImageStore)
}

func TestBlobImageStore_SaveKeepsExtension(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	name, err := store.Save(ctx, "Photo.PNG", "image/png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".png"))

	data, err := store.bucket.ReadAll(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestBlobImageStore_SaveGeneratesUniqueNames(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.Save(ctx, "a.jpg", "image/jpeg", []byte("1"))
	require.NoError(t, err)
	second, err := store.Save(ctx, "a.jpg", "image/jpeg", []byte("2"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBlobImageStore_ExistsAndDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	name, err := store.Save(ctx, "a.webp", "image/webp", []byte("data"))
	require.NoError(t, err)

	exists, err := store.Exists(ctx, name)
	require.NoError(t, err)
	assert.True(t, exists)

	deleted, err := store.Delete(ctx, name)
	require.NoError(t, err)
	assert.True(t, deleted)

	exists, err = store.Exists(ctx, name)
	require.NoError(t, err)
	assert.False(t, exists)

	deleted, err = store.Delete(ctx, name)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestBlobImageStore_RejectsUnsafeNames(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"", "../etc/passwd", "dir/file.png"} {
		exists, err := store.Exists(ctx, name)
		require.NoError(t, err)
		assert.False(t, exists)

		deleted, err := store.Delete(ctx, name)
		require.NoError(t, err)
		assert.False(t, deleted)
	}
}

func TestBlobImageStore_URL(t *testing.T) {
	store := newTestStore(t)

	assert.Equal(t, "https://cdn.example.com/images/a.png", store.URL("a.png"))
	assert.Empty(t, store.URL(""))

	store.publicBaseURL = ""
	assert.Equal(t, "a.png", store.URL("a.png"))
}

func TestImageExtension_FallsBackToContentType(t *testing.T) {
	assert.Equal(t, ".jpg", imageExtension("photo.JPG", "image/jpeg"))
	assert.Equal(t, ".png", imageExtension("blob", "image/png"))
	assert.Empty(t, imageExtension("blob", "application/x-unknown-thing"))
}
