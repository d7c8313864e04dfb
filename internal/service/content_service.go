package service

import (
	"context"
	"io"

	"github.com/haierkeys/second-brain-service/internal/domain"
	"github.com/haierkeys/second-brain-service/internal/dto"
	"github.com/haierkeys/second-brain-service/pkg/code"
	"github.com/haierkeys/second-brain-service/pkg/logger"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ContentService 定义收藏条目业务服务接口
type ContentService interface {
	// List 获取用户的全部条目，按最近更新排序
	List(ctx context.Context, sub string) ([]*dto.ContentDTO, error)

	// Create 创建条目
	Create(ctx context.Context, sub string, params *dto.ContentRequest) (*dto.ContentDTO, error)

	// Edit 修改条目，类型切换时清空旧类型字段
	Edit(ctx context.Context, sub string, id int64, params *dto.ContentRequest) (*dto.ContentDTO, error)

	// Delete 删除条目，图片条目同时删除存储对象
	Delete(ctx context.Context, sub string, id int64) error

	// CreateImage 上传图片并创建图片条目
	CreateImage(ctx context.Context, sub string, params *dto.ImageContentRequest, upload *UploadFile) (*dto.ContentDTO, error)

	// EditImage 上传新图片替换条目内容
	EditImage(ctx context.Context, sub string, id int64, params *dto.ImageContentRequest, upload *UploadFile) (*dto.ContentDTO, error)
}

// UploadFile carries a single multipart upload into the service layer.
type UploadFile struct {
	FileName    string
	ContentType string
	Size        int64
	File        io.Reader
}

// contentService 实现 ContentService 接口
type contentService struct {
	contentRepo domain.ContentRepository
	assets      AssetService
	log         *zap.Logger
}

// NewContentService 创建 ContentService 实例
func NewContentService(contentRepo domain.ContentRepository, assets AssetService, log *zap.Logger) ContentService {
	return &contentService{
		contentRepo: contentRepo,
		assets:      assets,
		log:         log,
	}
}

func (s *contentService) List(ctx context.Context, sub string) ([]*dto.ContentDTO, error) {
	list, err := s.contentRepo.ListBySub(ctx, sub)
	if err != nil {
		return nil, errors.Wrap(err, "content list")
	}
	return dto.ContentListToDTO(list), nil
}

func (s *contentService) Create(ctx context.Context, sub string, params *dto.ContentRequest) (*dto.ContentDTO, error) {
	content := &domain.Content{
		Sub:           sub,
		Title:         params.Title,
		Type:          domain.ContentType(params.Type),
		CreatedAt:     params.CreatedAtTime(),
		LastUpdatedAt: params.LastUpdatedAtTime(),
	}
	content.SetPayload(params.Payload())

	created, err := s.contentRepo.Create(ctx, content)
	if err != nil {
		return nil, errors.Wrap(err, "content create")
	}
	return dto.ContentToDTO(created), nil
}

// getOwned 获取条目并校验归属
func (s *contentService) getOwned(ctx context.Context, sub string, id int64) (*domain.Content, error) {
	content, err := s.contentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, code.ErrorContentNotFound
		}
		return nil, errors.Wrap(err, "content get")
	}
	if content.Sub != sub {
		return nil, code.ErrorNotContentOwner
	}
	return content, nil
}

func (s *contentService) Edit(ctx context.Context, sub string, id int64, params *dto.ContentRequest) (*dto.ContentDTO, error) {
	content, err := s.getOwned(ctx, sub, id)
	if err != nil {
		return nil, err
	}

	oldImageURL := content.ImageURL

	content.Title = params.Title
	content.Type = domain.ContentType(params.Type)
	content.CreatedAt = params.CreatedAtTime()
	content.LastUpdatedAt = params.LastUpdatedAtTime()
	content.SetPayload(params.Payload())

	updated, err := s.contentRepo.Update(ctx, content)
	if err != nil {
		return nil, errors.Wrap(err, "content update")
	}

	// Record first, storage cleanup after. A failed delete leaves an
	// orphan for the sweep task.
	if oldImageURL != "" && oldImageURL != updated.ImageURL {
		if err := s.assets.DeleteByURL(ctx, oldImageURL); err != nil {
			s.log.Warn("failed to delete replaced asset",
				zap.String(logger.FieldSub, sub),
				zap.String(logger.FieldFileKey, oldImageURL),
				zap.Error(err))
		}
	}
	return dto.ContentToDTO(updated), nil
}

func (s *contentService) Delete(ctx context.Context, sub string, id int64) error {
	content, err := s.getOwned(ctx, sub, id)
	if err != nil {
		return err
	}

	if err := s.contentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return code.ErrorContentNotFound
		}
		return errors.Wrap(err, "content delete")
	}

	if content.IsImage() && content.ImageURL != "" {
		if err := s.assets.DeleteByURL(ctx, content.ImageURL); err != nil {
			s.log.Warn("failed to delete asset for removed content",
				zap.String(logger.FieldSub, sub),
				zap.String(logger.FieldFileKey, content.ImageURL),
				zap.Error(err))
		}
	}
	return nil
}

func (s *contentService) CreateImage(ctx context.Context, sub string, params *dto.ImageContentRequest, upload *UploadFile) (*dto.ContentDTO, error) {
	imageURL, err := s.assets.Upload(ctx, sub, upload.FileName, upload.ContentType, upload.Size, upload.File)
	if err != nil {
		return nil, err
	}

	content := &domain.Content{
		Sub:           sub,
		Title:         params.Title,
		Type:          domain.ContentTypeImage,
		CreatedAt:     params.CreatedAtTime(),
		LastUpdatedAt: params.LastUpdatedAtTime(),
	}
	content.SetPayload(imageURL)

	created, err := s.contentRepo.Create(ctx, content)
	if err != nil {
		// The record is the source of truth; the uploaded object is now
		// unreferenced and will be reclaimed by the sweep.
		s.log.Warn("content create failed after upload",
			zap.String(logger.FieldSub, sub),
			zap.String(logger.FieldFileKey, imageURL),
			zap.Error(err))
		return nil, errors.Wrap(err, "image content create")
	}
	return dto.ContentToDTO(created), nil
}

func (s *contentService) EditImage(ctx context.Context, sub string, id int64, params *dto.ImageContentRequest, upload *UploadFile) (*dto.ContentDTO, error) {
	content, err := s.getOwned(ctx, sub, id)
	if err != nil {
		return nil, err
	}

	imageURL, err := s.assets.Upload(ctx, sub, upload.FileName, upload.ContentType, upload.Size, upload.File)
	if err != nil {
		return nil, err
	}

	oldImageURL := content.ImageURL

	content.Title = params.Title
	content.Type = domain.ContentTypeImage
	content.CreatedAt = params.CreatedAtTime()
	content.LastUpdatedAt = params.LastUpdatedAtTime()
	content.SetPayload(imageURL)

	updated, err := s.contentRepo.Update(ctx, content)
	if err != nil {
		return nil, errors.Wrap(err, "image content update")
	}

	if oldImageURL != "" && oldImageURL != updated.ImageURL {
		if err := s.assets.DeleteByURL(ctx, oldImageURL); err != nil {
			s.log.Warn("failed to delete replaced asset",
				zap.String(logger.FieldSub, sub),
				zap.String(logger.FieldFileKey, oldImageURL),
				zap.Error(err))
		}
	}
	return dto.ContentToDTO(updated), nil
}
