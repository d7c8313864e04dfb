package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/haierkeys/second-brain-service/internal/dao"
	"github.com/haierkeys/second-brain-service/internal/model"
	"github.com/haierkeys/second-brain-service/pkg/code"
	"github.com/haierkeys/second-brain-service/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAssetEnv(t *testing.T) (AssetService, ContentService, *fakeStore) {
	t.Helper()
	db, err := dao.NewDBEngine(&dao.DatabaseConfig{
		Type:         "sqlite",
		Path:         ":memory:",
		MaxIdleConns: 1,
		MaxOpenConns: 1,
	})
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrateAll(db))

	d := dao.New(db)
	contentRepo := dao.NewContentRepository(d)
	store := newFakeStore()
	assets := NewAssetService(store, contentRepo, zap.NewNop())
	contentSvc := NewContentService(contentRepo, assets, zap.NewNop())
	return assets, contentSvc, store
}

func TestCheckUpload(t *testing.T) {
	assert.Nil(t, CheckUpload("image/png", 1024))
	assert.Nil(t, CheckUpload("image/jpeg", MaxUploadSize))
	assert.Nil(t, CheckUpload("IMAGE/JPG", 1))
	assert.Equal(t, code.ErrorUploadInvalidFileType, CheckUpload("image/gif", 1024))
	assert.Equal(t, code.ErrorUploadInvalidFileType, CheckUpload("text/html", 1024))
	assert.Equal(t, code.ErrorUploadFileTooLarge, CheckUpload("image/png", MaxUploadSize+1))
}

func TestAssetService_Upload_KeyShape(t *testing.T) {
	assets, _, store := newAssetEnv(t)

	url, err := assets.Upload(context.Background(), "auth0|u1", "photo.PNG", "image/png", 9, strings.NewReader("png-bytes"))
	require.NoError(t, err)

	key, ok := store.KeyFromURL(url)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(key, "uploads/"))
	assert.True(t, strings.HasSuffix(key, ".png"))

	// Key namespaces by a hash of the owner, not the raw subject.
	assert.NotContains(t, key, "auth0|u1")
}

func TestAssetService_DeleteByURL_ForeignURLIgnored(t *testing.T) {
	assets, _, store := newAssetEnv(t)

	require.NoError(t, assets.DeleteByURL(context.Background(), "https://elsewhere.example.com/pic.png"))
	assert.Empty(t, store.deleted)
}

func TestAssetService_SweepOrphans(t *testing.T) {
	assets, contentSvc, store := newAssetEnv(t)
	ctx := context.Background()

	kept, err := contentSvc.CreateImage(ctx, "u1", imageRequest("keep"), pngUpload())
	require.NoError(t, err)
	keptKey, ok := store.KeyFromURL(kept.ImageURL)
	require.True(t, ok)

	orphanKey, err := store.SendFile("uploads/orphaned/zzz.png", strings.NewReader("x"), "image/png")
	require.NoError(t, err)
	store.backdate(orphanKey, 2*time.Hour)
	// referenced objects are kept no matter how old they are
	store.backdate(keptKey, 48*time.Hour)

	removed, err := assets.SweepOrphans(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	keys, err := store.ListKeys("uploads/")
	require.NoError(t, err)
	assert.Equal(t, []string{keptKey}, keys)
}

func TestAssetService_SweepOrphans_SkipsRecentUploads(t *testing.T) {
	assets, _, store := newAssetEnv(t)

	_, err := store.SendFile("uploads/orphaned/new.png", strings.NewReader("x"), "image/png")
	require.NoError(t, err)

	removed, err := assets.SweepOrphans(context.Background())
	require.NoError(t, err)
	assert.Zero(t, removed)

	keys, err := store.ListKeys("uploads/")
	require.NoError(t, err)
	assert.Len(t, keys, 1)
}

func TestAssetService_SweepOrphans_CustomPath(t *testing.T) {
	db, err := dao.NewDBEngine(&dao.DatabaseConfig{
		Type:         "sqlite",
		Path:         ":memory:",
		MaxIdleConns: 1,
		MaxOpenConns: 1,
	})
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrateAll(db))

	savePath := t.TempDir()
	store, err := storage.NewClient(&storage.Config{
		Type:          storage.LOCAL,
		SavePath:      savePath,
		CustomPath:    "brain",
		PublicBaseURL: "http://localhost:8000",
	})
	require.NoError(t, err)

	contentRepo := dao.NewContentRepository(dao.New(db))
	assets := NewAssetService(store, contentRepo, zap.NewNop())
	ctx := context.Background()

	url, err := assets.Upload(ctx, "u1", "a.png", "image/png", 1, strings.NewReader("x"))
	require.NoError(t, err)
	key, ok := store.KeyFromURL(url)
	require.True(t, ok)
	require.True(t, strings.HasPrefix(key, "brain/uploads/"), key)

	// age the unreferenced object past the grace period
	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(savePath, key), old, old))

	removed, err := assets.SweepOrphans(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	keys, err := store.ListKeys("uploads/")
	require.NoError(t, err)
	assert.Empty(t, keys)
}
