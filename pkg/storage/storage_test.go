package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/haierkeys/second-brain-service/pkg/storage/local_fs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalStore(t *testing.T) Storager {
	t.Helper()
	store, err := NewClient(&Config{
		Type:          LOCAL,
		SavePath:      t.TempDir(),
		PublicBaseURL: "http://localhost:8000/uploads",
	})
	require.NoError(t, err)
	return store
}

func TestNewClient_InvalidType(t *testing.T) {
	_, err := NewClient(&Config{Type: "ftp"})
	assert.Error(t, err)

	_, err = NewClient(nil)
	assert.Error(t, err)
}

func TestLocalFS_SendAndDelete(t *testing.T) {
	store := newLocalStore(t)

	key, err := store.SendFile("u1/a.png", strings.NewReader("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "u1/a.png", key)

	keys, err := store.ListKeys("u1/")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1/a.png"}, keys)

	require.NoError(t, store.Delete(key))

	keys, err = store.ListKeys("u1/")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestLocalFS_DeleteMissingIsNoop(t *testing.T) {
	store := newLocalStore(t)
	assert.NoError(t, store.Delete("u1/missing.png"))
}

func TestLocalFS_URLRoundTrip(t *testing.T) {
	store := newLocalStore(t)

	url := store.PublicURL("u1/a.png")
	assert.Equal(t, "http://localhost:8000/uploads/u1/a.png", url)

	key, ok := store.KeyFromURL(url)
	require.True(t, ok)
	assert.Equal(t, "u1/a.png", key)

	_, ok = store.KeyFromURL("https://elsewhere.example.com/a.png")
	assert.False(t, ok)
}

func TestLocalFS_CustomPathPrefix(t *testing.T) {
	store, err := local_fs.NewClient(&local_fs.Config{
		SavePath:   t.TempDir(),
		CustomPath: "brain",
	})
	require.NoError(t, err)

	key, err := store.SendFile("u1/a.png", strings.NewReader("x"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "brain/u1/a.png", key)

	// ListKeys resolves the prefix the same way SendFile does and
	// returns the stored keys.
	keys, err := store.ListKeys("u1/")
	require.NoError(t, err)
	assert.Equal(t, []string{"brain/u1/a.png"}, keys)
}

func TestLocalFS_ModTime(t *testing.T) {
	store := newLocalStore(t)

	key, err := store.SendFile("u1/a.png", strings.NewReader("x"), "image/png")
	require.NoError(t, err)

	mod, err := store.ModTime(key)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), mod, time.Minute)

	_, err = store.ModTime("u1/missing.png")
	assert.Error(t, err)
}

func TestS3_URLRoundTrip(t *testing.T) {
	cfg := &Config{
		Type:            S3,
		Region:          "us-east-1",
		BucketName:      "second-brain-assets",
		AccessKeyID:     "test",
		AccessKeySecret: "test",
	}
	store, err := NewClient(cfg)
	require.NoError(t, err)

	url := store.PublicURL("u1/a.png")
	assert.Equal(t, "https://second-brain-assets.s3.us-east-1.amazonaws.com/u1/a.png", url)

	key, ok := store.KeyFromURL(url)
	require.True(t, ok)
	assert.Equal(t, "u1/a.png", key)

	_, ok = store.KeyFromURL("https://other-bucket.s3.us-east-1.amazonaws.com/u1/a.png")
	assert.False(t, ok)
}
