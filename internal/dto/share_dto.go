package dto

import (
	"github.com/haierkeys/second-brain-service/internal/domain"
)

// ShareLinkResponse 分享链接响应结构
type ShareLinkResponse struct {
	Hash   string `json:"hash"`
	Active bool   `json:"active"`
}

// ShareLinkToDTO 将领域模型转换为响应结构
func ShareLinkToDTO(link *domain.ShareLink) *ShareLinkResponse {
	if link == nil {
		return nil
	}
	return &ShareLinkResponse{
		Hash:   link.Hash,
		Active: link.Active,
	}
}
