package api_router

import (
	"net/http"

	"github.com/haierkeys/second-brain-service/internal/app"

	"github.com/gin-gonic/gin"
)

// HealthHandler 健康检查路由处理器
type HealthHandler struct {
	*Handler
}

// NewHealthHandler 创建 HealthHandler 实例
func NewHealthHandler(app *app.App) *HealthHandler {
	return &HealthHandler{
		Handler: &Handler{App: app},
	}
}

// Health reports service liveness and database reachability.
func (h *HealthHandler) Health(c *gin.Context) {
	status := "ok"
	httpStatus := http.StatusOK

	if sqlDB, err := h.App.DB.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, gin.H{
		"status":  status,
		"version": h.App.Version().Version,
	})
}
