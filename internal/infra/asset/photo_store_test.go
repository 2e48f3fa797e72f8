package asset

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"shopdir/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

func newTestStore(t *testing.T) (service.AssetStore, *blob.Bucket) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := &photoStore{
		bucket:     bucket,
		publicPath: "/uploads",
		logger:     slog.New(slog.DiscardHandler),
	}

	return store, bucket
}

func TestPhotoStore_FinalizeAndRemove(t *testing.T) {
	store, bucket := newTestStore(t)
	ctx := context.Background()

	ref, err := store.Finalize(ctx, &service.StagedUpload{
		Filename: "Front Door.JPG",
		Size:     9,
		Content:  strings.NewReader("jpg bytes"),
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(ref, "/uploads/"), "ref %q should live under the public path", ref)
	assert.True(t, strings.HasSuffix(ref, ".jpg"), "extension should be kept lowercased, got %q", ref)

	key := strings.TrimPrefix(ref, "/uploads/")
	data, err := bucket.ReadAll(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpg bytes"), data)

	require.NoError(t, store.Remove(ctx, ref))

	exists, err := bucket.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPhotoStore_FinalizeNilUpload(t *testing.T) {
	store, _ := newTestStore(t)

	ref, err := store.Finalize(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, ref)
}

func TestPhotoStore_FinalizeFilenameWithoutExtension(t *testing.T) {
	store, _ := newTestStore(t)

	ref, err := store.Finalize(context.Background(), &service.StagedUpload{
		Filename: "photo",
		Size:     1,
		Content:  strings.NewReader("x"),
	})
	require.NoError(t, err)
	assert.NotContains(t, strings.TrimPrefix(ref, "/uploads/"), ".")
}

func TestPhotoStore_RemoveMissingFileIsSuccess(t *testing.T) {
	store, _ := newTestStore(t)

	assert.NoError(t, store.Remove(context.Background(), "/uploads/never-existed.jpg"))
}

func TestPhotoStore_RemoveEmptyRefIsNoop(t *testing.T) {
	store, _ := newTestStore(t)

	assert.NoError(t, store.Remove(context.Background(), ""))
}

func TestPhotoStore_RemoveRejectsForeignRefs(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	for _, ref := range []string{
		"/elsewhere/file.jpg",
		"/uploads/../config.yaml",
		"/uploads/nested/file.jpg",
		"/uploads/",
	} {
		assert.Error(t, store.Remove(ctx, ref), "ref %q should be rejected", ref)
	}
}

func TestSanitizeExt(t *testing.T) {
	assert.Equal(t, ".jpg", sanitizeExt("photo.jpg"))
	assert.Equal(t, ".png", sanitizeExt("My Shop.PNG"))
	assert.Equal(t, "", sanitizeExt("no-extension"))
	assert.Equal(t, ".jpg", sanitizeExt("../../etc/passwd.jpg"))
	assert.Equal(t, "", sanitizeExt("trailing."))
}
