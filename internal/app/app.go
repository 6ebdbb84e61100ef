package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"pathfinder_backend/internal/careerdata"
	"pathfinder_backend/internal/config"
	"pathfinder_backend/internal/controller"
	"pathfinder_backend/internal/ml"
	"pathfinder_backend/internal/repository"
	"pathfinder_backend/internal/service"
	"pathfinder_backend/pkg/configwatcher"
	"pathfinder_backend/pkg/database"
	"pathfinder_backend/pkg/logger"
	"pathfinder_backend/pkg/monitoring"
	"pathfinder_backend/pkg/security"
	"pathfinder_backend/pkg/tracing"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	services       *services
	tracerProvider *sdktrace.TracerProvider
}

type repositories struct {
	user   *repository.UserRepository
	result *repository.ResultRepository
}

type services struct {
	auth       *service.AuthService
	user       *service.UserService
	storage    *service.StorageService
	prediction *service.PredictionService
	career     *service.CareerService
}

type controllers struct {
	auth   *controller.AuthController
	user   *controller.UserController
	career *controller.CareerController
	health *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:   repository.NewUserRepository(db),
		result: repository.NewResultRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	storage, err := service.NewStorageService(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize storage", zap.Error(err))
	}
	s.storage = storage

	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)

	bundle := loadBundle(cfg, s.storage)
	s.prediction = service.NewPredictionService(repos.result, rdb, bundle)

	catalog := loadCatalog(cfg.Careers.CatalogPath)
	s.career = service.NewCareerService(catalog)

	return s
}

// loadBundle 加载模型包。本地缺失时先尝试从对象存储拉取；
// 加载失败只记一次日志并返回 nil，服务以纯规则模式继续运行
func loadBundle(cfg *config.Config, storage *service.StorageService) *ml.ModelBundle {
	path := cfg.Model.BundlePath
	if path == "" {
		path = "ml_model/career_predictor.json"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) && cfg.Storage.Type == "minio" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := storage.Download(ctx, filepath.Base(path), path); err != nil {
			logger.Log.Warn("Failed to fetch model bundle from storage", zap.Error(err))
		}
	}

	bundle, err := ml.LoadBundle(path)
	if err != nil {
		logger.Log.Warn("Model bundle not loaded, serving rule-based predictions only",
			zap.String("path", path), zap.Error(err))
		return nil
	}

	logger.Log.Info("Model bundle loaded",
		zap.Int("features", bundle.VectorLen()),
		zap.Int("classes", bundle.Labels.Len()))
	return bundle
}

func loadCatalog(path string) *careerdata.Catalog {
	if path == "" {
		path = "configs/careers.yaml"
	}
	catalog, err := careerdata.Load(path)
	if err != nil {
		logger.Log.Warn("Careers catalog not loaded, using built-in data",
			zap.String("path", path), zap.Error(err))
		return careerdata.DefaultCatalog()
	}
	return catalog
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	catalogPath := a.Config.Careers.CatalogPath
	if catalogPath == "" {
		catalogPath = "configs/careers.yaml"
	}
	return &controllers{
		auth:   controller.NewAuthController(s.auth, s.user),
		user:   controller.NewUserController(s.user, s.storage),
		career: controller.NewCareerController(s.prediction, s.career, catalogPath),
		health: controller.NewHealthController(db, s.prediction.ModelLoaded),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// watchCatalog 监听职业目录资源文件，变更后热替换
func (a *App) watchCatalog(s *services) {
	path := a.Config.Careers.CatalogPath
	if path == "" || !a.Config.Careers.WatchReload {
		return
	}
	go configwatcher.WatchFile(path, func(p string) {
		catalog, err := careerdata.Load(p)
		if err != nil {
			logger.Log.Error("Failed to reload careers catalog", zap.Error(err))
			return
		}
		s.career.Reload(catalog)
		logger.Log.Info("Careers catalog reloaded", zap.String("path", p))
	})
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("pathfinder", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" && cfg.Storage.LocalPath != "" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.watchCatalog(services)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
