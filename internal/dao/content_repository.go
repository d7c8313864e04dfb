package dao

import (
	"context"

	"github.com/haierkeys/second-brain-service/internal/domain"
	"github.com/haierkeys/second-brain-service/internal/model"
	"github.com/haierkeys/second-brain-service/pkg/convert"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// contentRepository 实现 domain.ContentRepository 接口
type contentRepository struct {
	dao *Dao
}

// NewContentRepository 创建 ContentRepository 实例
func NewContentRepository(dao *Dao) domain.ContentRepository {
	return &contentRepository{dao: dao}
}

// toDomain 将数据库模型转换为领域模型
func (r *contentRepository) toDomain(m *model.Content) *domain.Content {
	if m == nil {
		return nil
	}
	return convert.StructAssign(m, &domain.Content{}).(*domain.Content)
}

// toModel 将领域模型转换为数据库模型
func (r *contentRepository) toModel(c *domain.Content) *model.Content {
	if c == nil {
		return nil
	}
	return convert.StructAssign(c, &model.Content{}).(*model.Content)
}

func (r *contentRepository) GetByID(ctx context.Context, id int64) (*domain.Content, error) {
	var m model.Content
	err := r.dao.Db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return r.toDomain(&m), nil
}

func (r *contentRepository) ListBySub(ctx context.Context, sub string) ([]*domain.Content, error) {
	var ms []*model.Content
	err := r.dao.Db.WithContext(ctx).
		Where("sub = ?", sub).
		Order("last_updated_at DESC, id ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	list := make([]*domain.Content, 0, len(ms))
	for _, m := range ms {
		list = append(list, r.toDomain(m))
	}
	return list, nil
}

func (r *contentRepository) ListImageURLs(ctx context.Context) ([]string, error) {
	var urls []string
	err := r.dao.Db.WithContext(ctx).
		Model(&model.Content{}).
		Where("type = ? AND image_url <> ''", string(domain.ContentTypeImage)).
		Pluck("image_url", &urls).Error
	if err != nil {
		return nil, err
	}
	return urls, nil
}

func (r *contentRepository) Create(ctx context.Context, content *domain.Content) (*domain.Content, error) {
	m := r.toModel(content)
	m.ID = 0
	if err := r.dao.Db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// Update 整体覆盖更新，保证类型切换后旧的内容字段被清空
func (r *contentRepository) Update(ctx context.Context, content *domain.Content) (*domain.Content, error) {
	m := r.toModel(content)
	if err := r.dao.Db.WithContext(ctx).Save(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

func (r *contentRepository) Delete(ctx context.Context, id int64) error {
	result := r.dao.Db.WithContext(ctx).Where("id = ?", id).Delete(&model.Content{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
