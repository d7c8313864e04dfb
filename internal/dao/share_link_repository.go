package dao

import (
	"context"

	"github.com/haierkeys/second-brain-service/internal/domain"
	"github.com/haierkeys/second-brain-service/internal/model"
	"github.com/haierkeys/second-brain-service/pkg/convert"
	"github.com/haierkeys/second-brain-service/pkg/timex"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// shareLinkRepository 实现 domain.ShareLinkRepository 接口
type shareLinkRepository struct {
	dao *Dao
}

// NewShareLinkRepository 创建 ShareLinkRepository 实例
func NewShareLinkRepository(dao *Dao) domain.ShareLinkRepository {
	return &shareLinkRepository{dao: dao}
}

func (r *shareLinkRepository) toDomain(m *model.ShareLink) *domain.ShareLink {
	if m == nil {
		return nil
	}
	return convert.StructAssign(m, &domain.ShareLink{}).(*domain.ShareLink)
}

func (r *shareLinkRepository) toModel(link *domain.ShareLink) *model.ShareLink {
	if link == nil {
		return nil
	}
	return convert.StructAssign(link, &model.ShareLink{}).(*model.ShareLink)
}

func (r *shareLinkRepository) GetBySub(ctx context.Context, sub string) (*domain.ShareLink, error) {
	var m model.ShareLink
	err := r.dao.Db.WithContext(ctx).Where("sub = ?", sub).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return r.toDomain(&m), nil
}

func (r *shareLinkRepository) GetActiveByHash(ctx context.Context, hash string) (*domain.ShareLink, error) {
	var m model.ShareLink
	err := r.dao.Db.WithContext(ctx).Where("hash = ? AND active = ?", hash, true).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return r.toDomain(&m), nil
}

func (r *shareLinkRepository) Create(ctx context.Context, link *domain.ShareLink) (*domain.ShareLink, error) {
	m := r.toModel(link)
	m.ID = 0
	if err := r.dao.Db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicate
		}
		return nil, err
	}
	return r.toDomain(m), nil
}

func (r *shareLinkRepository) UpdateActive(ctx context.Context, sub string, active bool) (*domain.ShareLink, error) {
	now := timex.Now()
	result := r.dao.Db.WithContext(ctx).
		Model(&model.ShareLink{}).
		Where("sub = ?", sub).
		Updates(map[string]interface{}{
			"active":     active,
			"updated_at": now,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetBySub(ctx, sub)
}
