package api_router

import (
	"github.com/haierkeys/second-brain-service/internal/app"
	"github.com/haierkeys/second-brain-service/internal/dto"
	pkgapp "github.com/haierkeys/second-brain-service/pkg/app"
	"github.com/haierkeys/second-brain-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// ShareHandler 分享链接 API 路由处理器
type ShareHandler struct {
	*Handler
}

// NewShareHandler 创建 ShareHandler 实例
func NewShareHandler(app *app.App) *ShareHandler {
	return &ShareHandler{
		Handler: &Handler{App: app},
	}
}

// Get returns the caller's share link.
func (h *ShareHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	sub := pkgapp.GetSub(c)
	link, err := h.App.ShareService.Get(c.Request.Context(), sub)
	if err != nil {
		toResponseErr(response, err)
		return
	}

	response.ToResponse(code.Success.WithData(link))
}

// Generate mints the caller's share link. A user has at most one.
func (h *ShareHandler) Generate(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	sub := pkgapp.GetSub(c)
	link, err := h.App.ShareService.Generate(c.Request.Context(), sub)
	if err != nil {
		toResponseErr(response, err)
		return
	}

	response.ToResponse(code.Success.WithData(link))
}

// Toggle flips the share link between active and revoked.
func (h *ShareHandler) Toggle(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	sub := pkgapp.GetSub(c)
	link, err := h.App.ShareService.Toggle(c.Request.Context(), sub)
	if err != nil {
		toResponseErr(response, err)
		return
	}

	response.ToResponse(code.Success.WithData(link))
}

// View serves the shared collection for an active hash. No auth.
func (h *ShareHandler) View(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	hash := c.Param("hash")
	list, err := h.App.ShareService.ViewByHash(c.Request.Context(), hash)
	if err != nil {
		toResponseErr(response, err)
		return
	}

	response.ToResponse(code.Success.WithData(&dto.ContentListResponse{Content: list}))
}
