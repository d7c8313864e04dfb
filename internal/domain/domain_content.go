// Package domain 定义领域模型和接口
package domain

import "time"

// ContentType 定义收藏条目类型
type ContentType string

const (
	ContentTypeNote  ContentType = "note"
	ContentTypeLink  ContentType = "link"
	ContentTypeImage ContentType = "image"
)

// Valid 判断条目类型是否合法
func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeNote, ContentTypeLink, ContentTypeImage:
		return true
	}
	return false
}

// Content 收藏条目领域模型
// A content item holds exactly one payload variant, selected by Type.
type Content struct {
	ID            int64
	Sub           string
	Title         string
	Type          ContentType
	LinkURL       string
	NoteContent   string
	ImageURL      string
	CreatedAt     time.Time
	LastUpdatedAt time.Time
}

// SetPayload stores value into the variant field selected by Type and
// clears the other two, so a type change never leaves stale data behind.
func (c *Content) SetPayload(value string) {
	c.LinkURL = ""
	c.NoteContent = ""
	c.ImageURL = ""
	switch c.Type {
	case ContentTypeLink:
		c.LinkURL = value
	case ContentTypeNote:
		c.NoteContent = value
	case ContentTypeImage:
		c.ImageURL = value
	}
}

// Payload 返回当前类型对应的内容值
func (c *Content) Payload() string {
	switch c.Type {
	case ContentTypeLink:
		return c.LinkURL
	case ContentTypeNote:
		return c.NoteContent
	case ContentTypeImage:
		return c.ImageURL
	}
	return ""
}

// IsImage 判断条目是否为图片
func (c *Content) IsImage() bool {
	return c.Type == ContentTypeImage
}
