package app

import (
	"context"
	"fmt"

	"github.com/haierkeys/second-brain-service/internal/dao"
	"github.com/haierkeys/second-brain-service/internal/domain"
	"github.com/haierkeys/second-brain-service/internal/model"
	"github.com/haierkeys/second-brain-service/internal/service"
	pkgapp "github.com/haierkeys/second-brain-service/pkg/app"
	"github.com/haierkeys/second-brain-service/pkg/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App 应用容器，封装所有依赖和服务
type App struct {
	// 基础设施（注入的依赖）
	config *AppConfig
	logger *zap.Logger
	DB     *gorm.DB
	Dao    *dao.Dao

	// Repository 层
	ContentRepo   domain.ContentRepository
	ShareLinkRepo domain.ShareLinkRepository

	// Service 层
	AssetService   service.AssetService
	ContentService service.ContentService
	ShareService   service.ShareService

	// 基础设施组件
	Storage       storage.Storager
	TokenVerifier pkgapp.TokenVerifier
}

// NewApp 创建应用容器实例
// 初始化所有依赖并进行依赖注入
// cfg: 应用配置（必须）
// logger: zap 日志器（必须）
// db: 数据库连接（必须）
func NewApp(cfg *AppConfig, logger *zap.Logger, db *gorm.DB) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	a := &App{
		config: cfg,
		logger: logger,
		DB:     db,
	}

	a.Dao = dao.New(db)

	if err := model.AutoMigrateAll(db); err != nil {
		return nil, fmt.Errorf("auto migrate failed: %w", err)
	}

	// 初始化 Repository 层
	a.ContentRepo = dao.NewContentRepository(a.Dao)
	a.ShareLinkRepo = dao.NewShareLinkRepository(a.Dao)

	// 初始化存储
	store, err := storage.NewClient(&cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("init storage failed: %w", err)
	}
	a.Storage = store

	// 初始化 Token 校验器，issuer 为空时跳过（由调用方注入，用于测试）
	if cfg.Security.AuthIssuer != "" {
		verifier, err := pkgapp.NewJWKSVerifier(context.Background(), cfg.Security.AuthIssuer, cfg.Security.AuthAudience)
		if err != nil {
			return nil, fmt.Errorf("init token verifier failed: %w", err)
		}
		a.TokenVerifier = verifier
	}

	// 初始化 Service 层（依赖注入）
	a.AssetService = service.NewAssetService(a.Storage, a.ContentRepo, logger)
	a.ContentService = service.NewContentService(a.ContentRepo, a.AssetService, logger)
	a.ShareService = service.NewShareService(a.ShareLinkRepo, a.ContentRepo)

	logger.Info("App container initialized successfully",
		zap.String("storage", cfg.Storage.Type))

	return a, nil
}

// Close 释放应用容器持有的资源
func (a *App) Close() error {
	if a.DB != nil {
		sqlDB, err := a.DB.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}
		if err := sqlDB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
		a.logger.Info("Database connection closed")
	}
	return nil
}

// Config 获取应用配置
func (a *App) Config() *AppConfig {
	return a.config
}

// Logger 获取日志器
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Version 获取版本信息
func (a *App) Version() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GitTag:    GitTag,
		BuildTime: BuildTime,
	}
}
