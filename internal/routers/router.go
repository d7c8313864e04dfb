// Package routers assembles the gin engine, middleware chain and route table.
package routers

import (
	"net/http"
	"time"

	"github.com/haierkeys/second-brain-service/internal/app"
	"github.com/haierkeys/second-brain-service/internal/middleware"
	"github.com/haierkeys/second-brain-service/internal/routers/api_router"
	"github.com/haierkeys/second-brain-service/pkg/storage"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {

	cfg := appContainer.Config()

	r := gin.New()

	api := r.Group("/api")
	{
		api.Use(middleware.AppInfo())
		api.Use(middleware.ContextTimeout(time.Duration(cfg.App.DefaultContextTimeout) * time.Second))
		api.Use(middleware.Cors())
		api.Use(middleware.LangWithTranslator(uni))
		api.Use(middleware.AccessLog(appContainer.Logger()))
		api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

		// 创建 Handlers（注入 App Container）
		contentHandler := api_router.NewContentHandler(appContainer)
		shareHandler := api_router.NewShareHandler(appContainer)
		healthHandler := api_router.NewHealthHandler(appContainer)

		// 公共接口（无需认证）
		api.GET("/health", healthHandler.Health)
		api.GET("/share/brain/:hash", shareHandler.View)

		// 认证接口
		auth := api.Group("", middleware.UserAuthToken(appContainer.TokenVerifier))

		auth.GET("/content", contentHandler.List)
		auth.POST("/content", contentHandler.Create)
		auth.PUT("/content/:id", contentHandler.Edit)
		auth.DELETE("/content/:id", contentHandler.Delete)
		auth.POST("/content/image", contentHandler.CreateImage)
		auth.PUT("/content/image/:id", contentHandler.EditImage)

		auth.GET("/share/brain", shareHandler.Get)
		auth.POST("/share/brain", shareHandler.Generate)
		auth.PUT("/share/brain", shareHandler.Toggle)
	}

	// 本地存储时直接对外提供已上传的文件
	if cfg.Storage.Type == storage.LOCAL && cfg.Storage.SavePath != "" {
		r.StaticFS("/uploads", http.Dir(cfg.Storage.SavePath+"/uploads"))
	}

	r.Use(middleware.Cors())
	r.NoRoute(middleware.NoFound())

	return r
}
