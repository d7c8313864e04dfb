// Package service 实现业务逻辑层
package service

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/haierkeys/second-brain-service/internal/domain"
	"github.com/haierkeys/second-brain-service/pkg/code"
	"github.com/haierkeys/second-brain-service/pkg/fileurl"
	"github.com/haierkeys/second-brain-service/pkg/logger"
	"github.com/haierkeys/second-brain-service/pkg/storage"
	"github.com/haierkeys/second-brain-service/pkg/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxUploadSize 上传文件大小上限
const MaxUploadSize = 5 * 1024 * 1024

// sweepGracePeriod 清理任务跳过的对象最小年龄
// An upload whose record insert has not committed yet must not be
// treated as an orphan.
const sweepGracePeriod = time.Hour

// allowedUploadTypes 上传文件类型白名单
var allowedUploadTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
}

// AssetService 定义图片资源业务服务接口
type AssetService interface {
	// Upload 上传图片并返回公开访问 URL
	Upload(ctx context.Context, sub string, fileName string, contentType string, size int64, file io.Reader) (string, error)

	// DeleteByURL 根据公开 URL 删除存储对象
	DeleteByURL(ctx context.Context, url string) error

	// SweepOrphans 清理存储中不再被任何条目引用的对象
	SweepOrphans(ctx context.Context) (int, error)
}

// assetService 实现 AssetService 接口
type assetService struct {
	store       storage.Storager
	contentRepo domain.ContentRepository
	log         *zap.Logger
}

// NewAssetService 创建 AssetService 实例
func NewAssetService(store storage.Storager, contentRepo domain.ContentRepository, log *zap.Logger) AssetService {
	return &assetService{
		store:       store,
		contentRepo: contentRepo,
		log:         log,
	}
}

// CheckUpload validates declared media type and size against the allow-list.
// Returns nil on success, a contract code otherwise.
func CheckUpload(contentType string, size int64) *code.Code {
	if _, ok := allowedUploadTypes[strings.ToLower(contentType)]; !ok {
		return code.ErrorUploadInvalidFileType
	}
	if size > MaxUploadSize {
		return code.ErrorUploadFileTooLarge
	}
	return nil
}

// Upload 上传图片，生成随机文件名并保留原始扩展名
func (s *assetService) Upload(ctx context.Context, sub string, fileName string, contentType string, size int64, file io.Reader) (string, error) {
	if c := CheckUpload(contentType, size); c != nil {
		return "", c
	}

	ext := strings.ToLower(fileurl.GetFileExt(fileName))
	if ext == "" {
		ext = allowedUploadTypes[strings.ToLower(contentType)]
	}

	fileKey := "uploads/" + util.EncodeMD5(sub) + "/" + uuid.NewString() + ext
	fileKey, err := s.store.SendFile(fileKey, io.LimitReader(file, MaxUploadSize), contentType)
	if err != nil {
		return "", err
	}
	return s.store.PublicURL(fileKey), nil
}

// DeleteByURL 删除 URL 对应的存储对象，URL 不属于当前存储时忽略
func (s *assetService) DeleteByURL(ctx context.Context, url string) error {
	fileKey, ok := s.store.KeyFromURL(url)
	if !ok {
		s.log.Warn("asset url does not map to a storage key",
			zap.String(logger.FieldFileKey, url))
		return nil
	}
	return s.store.Delete(fileKey)
}

// SweepOrphans 删除没有任何图片条目引用的存储对象，返回删除数量
func (s *assetService) SweepOrphans(ctx context.Context) (int, error) {
	urls, err := s.contentRepo.ListImageURLs(ctx)
	if err != nil {
		return 0, err
	}
	referenced := make(map[string]bool, len(urls))
	for _, u := range urls {
		if fileKey, ok := s.store.KeyFromURL(u); ok {
			referenced[fileKey] = true
		}
	}

	keys, err := s.store.ListKeys("uploads/")
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, fileKey := range keys {
		if referenced[fileKey] {
			continue
		}
		modTime, err := s.store.ModTime(fileKey)
		if err != nil {
			s.log.Warn("failed to stat orphan candidate",
				zap.String(logger.FieldFileKey, fileKey),
				zap.Error(err))
			continue
		}
		if time.Since(modTime) < sweepGracePeriod {
			continue
		}
		if err := s.store.Delete(fileKey); err != nil {
			s.log.Warn("failed to delete orphan asset",
				zap.String(logger.FieldFileKey, fileKey),
				zap.Error(err))
			continue
		}
		removed++
	}
	return removed, nil
}
