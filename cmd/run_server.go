package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/haierkeys/second-brain-service/global"
	internalApp "github.com/haierkeys/second-brain-service/internal/app"
	"github.com/haierkeys/second-brain-service/internal/dao"
	"github.com/haierkeys/second-brain-service/internal/routers"
	"github.com/haierkeys/second-brain-service/internal/task"
	"github.com/haierkeys/second-brain-service/pkg/logger"
	"github.com/haierkeys/second-brain-service/pkg/validator"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultShutdownTimeout default shutdown timeout duration
// DefaultShutdownTimeout 默认关闭超时时间
const DefaultShutdownTimeout = 30 * time.Second

type Server struct {
	logger     *zap.Logger             // Logger // 日志对象
	config     *internalApp.AppConfig  // App configuration (injected dependency) // 应用配置（注入的依赖）
	db         *gorm.DB                // Database connection // 数据库连接
	ut         *ut.UniversalTranslator // Translator // 翻译器
	httpServer *http.Server
	scheduler  *task.Scheduler
	app        *internalApp.App // App Container
}

func NewServer(runEnv *runFlags) (*Server, error) {

	// 使用 LoadConfig 直接加载配置到 AppConfig
	appConfig, configRealpath, err := internalApp.LoadConfig(runEnv.config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if len(runEnv.port) > 0 {
		appConfig.Server.HttpPort = runEnv.port
	}

	// 确定运行模式
	runMode := runEnv.runMode
	if len(runMode) <= 0 {
		runMode = appConfig.Server.RunMode
	}
	if len(runMode) > 0 {
		gin.SetMode(runMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		config: appConfig,
	}

	// 初始化日志器（使用注入的配置）
	lg, err := logger.NewLogger(logger.Config{
		Level:      appConfig.Log.Level,
		File:       appConfig.Log.File,
		Production: appConfig.Log.Production,
	})
	if err != nil {
		return nil, fmt.Errorf("initLogger: %w", err)
	}
	s.logger = lg
	global.Logger = lg
	global.Version = internalApp.Version

	// 初始化数据库（使用注入的配置）
	db, err := dao.NewDBEngine(&appConfig.Database)
	if err != nil {
		return nil, fmt.Errorf("initDatabase: %w", err)
	}
	s.db = db

	// 初始化 App Container（直接使用 AppConfig）
	app, err := internalApp.NewApp(appConfig, s.logger, db)
	if err != nil {
		return nil, fmt.Errorf("failed to create app container: %w", err)
	}
	s.app = app

	// 初始化验证器
	uni, err := validator.Setup()
	if err != nil {
		return nil, fmt.Errorf("validator setup: %w", err)
	}
	s.ut = uni

	// 启动调度器
	s.scheduler = task.NewScheduler(s.logger)
	if appConfig.Task.AssetSweepEnable {
		sweep := task.NewAssetSweepTask(app.AssetService, appConfig.Task.AssetSweepSpec, s.logger)
		if err := s.scheduler.AddTask(sweep); err != nil {
			return nil, fmt.Errorf("schedule asset sweep: %w", err)
		}
	}
	s.scheduler.Start()

	s.logger.Warn(fmt.Sprintf("%s v%s\nGit: %s\nBuildTime: %s\n", internalApp.Name, internalApp.Version, internalApp.GitTag, internalApp.BuildTime))
	s.logger.Warn("config loaded", zap.String("path", configRealpath))

	// 启动 HTTP API 服务器
	s.logger.Warn("api_router", zap.String("config.server.HttpPort", appConfig.Server.HttpPort))
	s.httpServer = &http.Server{
		Addr:           appConfig.Server.HttpPort,
		Handler:        routers.NewRouter(s.app, s.ut),
		ReadTimeout:    time.Duration(appConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(appConfig.Server.WriteTimeout) * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("api service err", zap.Error(err))
		}
	}()

	return s, nil
}

// Shutdown stops the HTTP server, the scheduler and the app container.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()

	var firstErr error
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			firstErr = err
		}
	}
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
	if s.app != nil {
		if err := s.app.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
