package model

import (
	"github.com/haierkeys/second-brain-service/pkg/timex"
)

// Content 收藏条目数据库模型
type Content struct {
	ID            int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Sub           string     `gorm:"column:sub;type:varchar(255);not null;index" json:"sub"`
	Title         string     `gorm:"column:title;type:varchar(512);not null" json:"title"`
	Type          string     `gorm:"column:type;type:varchar(16);not null" json:"type"`
	LinkURL       string     `gorm:"column:link_url;type:text" json:"linkURL"`
	NoteContent   string     `gorm:"column:note_content;type:text" json:"noteContent"`
	ImageURL      string     `gorm:"column:image_url;type:text" json:"imageURL"`
	CreatedAt     timex.Time `gorm:"column:created_at" json:"createdAt"`
	LastUpdatedAt timex.Time `gorm:"column:last_updated_at" json:"lastUpdatedAt"`
}

// TableName 表名
func (Content) TableName() string {
	return "content"
}
