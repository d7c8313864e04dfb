package model

import (
	"github.com/haierkeys/second-brain-service/pkg/timex"
)

// ShareLink 分享链接数据库模型
// sub 唯一索引保证每个用户最多一条分享链接
type ShareLink struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Sub       string     `gorm:"column:sub;type:varchar(255);not null;uniqueIndex" json:"sub"`
	Hash      string     `gorm:"column:hash;type:varchar(64);not null;uniqueIndex" json:"hash"`
	Active    bool       `gorm:"column:active;not null;default:false" json:"active"`
	CreatedAt timex.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt timex.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName 表名
func (ShareLink) TableName() string {
	return "share_link"
}
