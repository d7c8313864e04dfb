package domain

import "time"

// ShareLink 公共分享链接领域模型
// Each owner has at most one share link; Active gates public access.
type ShareLink struct {
	ID        int64
	Sub       string
	Hash      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
