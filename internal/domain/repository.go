package domain

import (
	"context"

	"github.com/pkg/errors"
)

// ErrNotFound 记录不存在
var ErrNotFound = errors.New("record not found")

// ErrDuplicate 唯一约束冲突
var ErrDuplicate = errors.New("record already exists")

// ContentRepository 收藏条目仓储接口
type ContentRepository interface {
	// GetByID 根据ID获取条目
	GetByID(ctx context.Context, id int64) (*Content, error)

	// ListBySub 获取某个用户的全部条目，按最近更新排序
	ListBySub(ctx context.Context, sub string) ([]*Content, error)

	// ListImageURLs 获取所有图片条目的 URL
	ListImageURLs(ctx context.Context) ([]string, error)

	// Create 创建条目
	Create(ctx context.Context, content *Content) (*Content, error)

	// Update 整体更新条目
	Update(ctx context.Context, content *Content) (*Content, error)

	// Delete 物理删除条目
	Delete(ctx context.Context, id int64) error
}

// ShareLinkRepository 分享链接仓储接口
type ShareLinkRepository interface {
	// GetBySub 获取用户的分享链接
	GetBySub(ctx context.Context, sub string) (*ShareLink, error)

	// GetActiveByHash 根据哈希获取处于激活状态的分享链接
	GetActiveByHash(ctx context.Context, hash string) (*ShareLink, error)

	// Create 创建分享链接
	Create(ctx context.Context, link *ShareLink) (*ShareLink, error)

	// UpdateActive 更新分享链接激活状态
	UpdateActive(ctx context.Context, sub string, active bool) (*ShareLink, error)
}
