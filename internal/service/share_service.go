package service

import (
	"context"
	"time"

	"github.com/haierkeys/second-brain-service/internal/domain"
	"github.com/haierkeys/second-brain-service/internal/dto"
	"github.com/haierkeys/second-brain-service/pkg/code"
	"github.com/haierkeys/second-brain-service/pkg/util"

	"github.com/pkg/errors"
)

// ShareService 定义分享链接业务服务接口
type ShareService interface {
	// Get 获取用户的分享链接
	Get(ctx context.Context, sub string) (*dto.ShareLinkResponse, error)

	// Generate 创建分享链接，初始为未激活状态
	Generate(ctx context.Context, sub string) (*dto.ShareLinkResponse, error)

	// Toggle 切换分享链接激活状态
	Toggle(ctx context.Context, sub string) (*dto.ShareLinkResponse, error)

	// ViewByHash 根据哈希获取被分享用户的全部条目
	ViewByHash(ctx context.Context, hash string) ([]*dto.ContentDTO, error)
}

// shareService 实现 ShareService 接口
type shareService struct {
	shareRepo   domain.ShareLinkRepository
	contentRepo domain.ContentRepository
}

// NewShareService 创建 ShareService 实例
func NewShareService(shareRepo domain.ShareLinkRepository, contentRepo domain.ContentRepository) ShareService {
	return &shareService{
		shareRepo:   shareRepo,
		contentRepo: contentRepo,
	}
}

func (s *shareService) Get(ctx context.Context, sub string) (*dto.ShareLinkResponse, error) {
	link, err := s.shareRepo.GetBySub(ctx, sub)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, code.ErrorLinkNotFound
		}
		return nil, errors.Wrap(err, "share get")
	}
	return dto.ShareLinkToDTO(link), nil
}

func (s *shareService) Generate(ctx context.Context, sub string) (*dto.ShareLinkResponse, error) {
	hash, err := util.GenerateShareHash(util.ShareHashLength)
	if err != nil {
		return nil, errors.Wrap(err, "share hash")
	}

	now := time.Now().UTC()
	link, err := s.shareRepo.Create(ctx, &domain.ShareLink{
		Sub:       sub,
		Hash:      hash,
		Active:    false,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, code.ErrorLinkAlreadyPresent
		}
		return nil, errors.Wrap(err, "share create")
	}
	return dto.ShareLinkToDTO(link), nil
}

func (s *shareService) Toggle(ctx context.Context, sub string) (*dto.ShareLinkResponse, error) {
	link, err := s.shareRepo.GetBySub(ctx, sub)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, code.ErrorLinkNotFound
		}
		return nil, errors.Wrap(err, "share toggle")
	}

	updated, err := s.shareRepo.UpdateActive(ctx, sub, !link.Active)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, code.ErrorLinkNotFound
		}
		return nil, errors.Wrap(err, "share toggle")
	}
	return dto.ShareLinkToDTO(updated), nil
}

// ViewByHash 未激活与不存在的哈希不可区分，均返回 Hash not found
func (s *shareService) ViewByHash(ctx context.Context, hash string) ([]*dto.ContentDTO, error) {
	link, err := s.shareRepo.GetActiveByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, code.ErrorHashNotFound
		}
		return nil, errors.Wrap(err, "share view")
	}

	list, err := s.contentRepo.ListBySub(ctx, link.Sub)
	if err != nil {
		return nil, errors.Wrap(err, "share view list")
	}
	return dto.ContentListToDTO(list), nil
}
