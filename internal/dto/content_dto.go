// Package dto Defines data transfer objects (request parameters and response structs)
// Package dto 定义数据传输对象（请求参数和响应结构体）
package dto

import (
	"time"

	"github.com/haierkeys/second-brain-service/internal/domain"
)

// ContentRequest Request parameters for creating or editing a content item
// 用于创建或修改收藏条目的请求参数
// The timestamp fields are client-supplied RFC3339 strings.
type ContentRequest struct {
	Title         string `json:"title" form:"title" binding:"required"`
	Type          string `json:"type" form:"type" binding:"required,oneof=note link image"`
	LinkURL       string `json:"linkURL" form:"linkURL" binding:"required_if=Type link,omitempty,url"`
	NoteContent   string `json:"noteContent" form:"noteContent" binding:"required_if=Type note"`
	ImageURL      string `json:"imageURL" form:"imageURL" binding:"required_if=Type image,omitempty,url"`
	CreatedAt     string `json:"createdAt" form:"createdAt" binding:"required,timestamp"`
	LastUpdatedAt string `json:"lastUpdatedAt" form:"lastUpdatedAt" binding:"required,timestamp"`
}

// Payload 返回与类型匹配的内容值，其余字段被忽略
func (r *ContentRequest) Payload() string {
	switch domain.ContentType(r.Type) {
	case domain.ContentTypeLink:
		return r.LinkURL
	case domain.ContentTypeNote:
		return r.NoteContent
	case domain.ContentTypeImage:
		return r.ImageURL
	}
	return ""
}

// CreatedAtTime parses the client-supplied creation timestamp.
func (r *ContentRequest) CreatedAtTime() time.Time {
	t, _ := time.Parse(time.RFC3339, r.CreatedAt)
	return t
}

// LastUpdatedAtTime parses the client-supplied update timestamp.
func (r *ContentRequest) LastUpdatedAtTime() time.Time {
	t, _ := time.Parse(time.RFC3339, r.LastUpdatedAt)
	return t
}

// ImageContentRequest Multipart form fields accompanying an image upload
// 图片上传时附带的表单字段
type ImageContentRequest struct {
	Title         string `form:"title" binding:"required"`
	CreatedAt     string `form:"createdAt" binding:"required,timestamp"`
	LastUpdatedAt string `form:"lastUpdatedAt" binding:"required,timestamp"`
}

// CreatedAtTime parses the client-supplied creation timestamp.
func (r *ImageContentRequest) CreatedAtTime() time.Time {
	t, _ := time.Parse(time.RFC3339, r.CreatedAt)
	return t
}

// LastUpdatedAtTime parses the client-supplied update timestamp.
func (r *ImageContentRequest) LastUpdatedAtTime() time.Time {
	t, _ := time.Parse(time.RFC3339, r.LastUpdatedAt)
	return t
}

// ContentDTO Content item response shape
// 收藏条目响应结构
// Exactly one payload field is set; the others are dropped via omitempty.
type ContentDTO struct {
	ID            int64  `json:"id"`
	Sub           string `json:"sub"`
	Title         string `json:"title"`
	Type          string `json:"type"`
	LinkURL       string `json:"linkURL,omitempty"`
	NoteContent   string `json:"noteContent,omitempty"`
	ImageURL      string `json:"imageURL,omitempty"`
	CreatedAt     string `json:"createdAt"`
	LastUpdatedAt string `json:"lastUpdatedAt"`
}

// ContentResponse wraps a single content item.
type ContentResponse struct {
	Content *ContentDTO `json:"content"`
}

// ContentListResponse wraps a content collection.
type ContentListResponse struct {
	Content []*ContentDTO `json:"content"`
}

// ContentToDTO 将领域模型转换为响应结构
func ContentToDTO(c *domain.Content) *ContentDTO {
	if c == nil {
		return nil
	}
	return &ContentDTO{
		ID:            c.ID,
		Sub:           c.Sub,
		Title:         c.Title,
		Type:          string(c.Type),
		LinkURL:       c.LinkURL,
		NoteContent:   c.NoteContent,
		ImageURL:      c.ImageURL,
		CreatedAt:     c.CreatedAt.UTC().Format(time.RFC3339),
		LastUpdatedAt: c.LastUpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ContentListToDTO 将领域模型列表转换为响应结构列表
func ContentListToDTO(list []*domain.Content) []*ContentDTO {
	dtos := make([]*ContentDTO, 0, len(list))
	for _, c := range list {
		dtos = append(dtos, ContentToDTO(c))
	}
	return dtos
}
