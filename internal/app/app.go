package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"teksher_backend/internal/config"
	"teksher_backend/internal/controller"
	"teksher_backend/internal/repository"
	"teksher_backend/internal/service"
	"teksher_backend/internal/util"
	"teksher_backend/pkg/configwatcher"
	"teksher_backend/pkg/database"
	"teksher_backend/pkg/logger"
	"teksher_backend/pkg/monitoring"
	"teksher_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	Revoker         service.TokenRevoker
	configCallbacks []func(*config.Config)
	shutdownTracer  func(context.Context) error
}

type repositories struct {
	user             *repository.UserRepository
	profile          *repository.ProfileRepository
	preferences      *repository.PreferencesRepository
	progress         *repository.ProgressRepository
	history          *repository.HistoryRepository
	category         *repository.CategoryRepository
	testSet          *repository.TestSetRepository
	question         *repository.QuestionRepository
	option           *repository.OptionRepository
	attempt          *repository.AttemptRepository
	answer           *repository.AnswerRepository
	questionBookmark *repository.QuestionBookmarkRepository
	testSetBookmark  *repository.TestSetBookmarkRepository
}

type services struct {
	auth     *service.AuthService
	account  *service.AccountService
	category *service.CategoryService
	content  *service.ContentService
	attempt  *service.AttemptService
	bookmark *service.BookmarkService
}

type controllers struct {
	auth     *controller.AuthController
	user     *controller.UserController
	category *controller.CategoryController
	content  *controller.ContentController
	attempt  *controller.AttemptController
	bookmark *controller.BookmarkController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:             repository.NewUserRepository(db),
		profile:          repository.NewProfileRepository(db),
		preferences:      repository.NewPreferencesRepository(db),
		progress:         repository.NewProgressRepository(db),
		history:          repository.NewHistoryRepository(db),
		category:         repository.NewCategoryRepository(db),
		testSet:          repository.NewTestSetRepository(db),
		question:         repository.NewQuestionRepository(db),
		option:           repository.NewOptionRepository(db),
		attempt:          repository.NewAttemptRepository(db),
		answer:           repository.NewAnswerRepository(db),
		questionBookmark: repository.NewQuestionBookmarkRepository(db),
		testSetBookmark:  repository.NewTestSetBookmarkRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB) *services {
	return &services{
		auth: service.NewAuthService(
			db,
			repos.user,
			repos.profile,
			repos.preferences,
			cfg,
			service.LogMailer{},
			a.Revoker,
		),
		account: service.NewAccountService(
			repos.profile,
			repos.preferences,
			repos.progress,
			repos.history,
			repos.testSet,
			repos.question,
		),
		category: service.NewCategoryService(repos.category),
		content:  service.NewContentService(repos.category, repos.testSet, repos.question, repos.option),
		attempt: service.NewAttemptService(
			repos.attempt,
			repos.answer,
			repos.testSet,
			repos.question,
			repos.option,
		),
		bookmark: service.NewBookmarkService(
			repos.questionBookmark,
			repos.testSetBookmark,
			repos.testSet,
			repos.question,
		),
	}
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth),
		user:     controller.NewUserController(s.account),
		category: controller.NewCategoryController(s.category),
		content:  controller.NewContentController(s.content),
		attempt:  controller.NewAttemptController(s.attempt),
		bookmark: controller.NewBookmarkController(s.bookmark),
		health:   controller.NewHealthController(a.DB, a.Redis),
	}
}

// New 基于已建立的连接组装路由，rdb 可为 nil
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *App {
	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	// 未启用 Redis 时退化为进程内注销表
	if rdb != nil {
		app.Revoker = service.NewRedisTokenRevoker(rdb)
	} else {
		app.Revoker = service.NewMemoryTokenRevoker()
	}

	util.RegisterValidators()
	monitoring.Init()

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db)
	controllers := app.initControllers(services)

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	return app
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	migrate := cfg.Server.Mode != gin.ReleaseMode || cfg.ForceMigrate
	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode, migrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	shutdown, err := tracing.InitTracer(context.Background(), cfg.Tracing)
	if err != nil {
		logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
	}

	app := New(cfg, db, rdb)
	app.shutdownTracer = shutdown

	// 热加载目前只调整日志级别
	app.RegisterConfigCallback(func(newCfg *config.Config) {
		logger.SetLevel(newCfg.Log.Level)
		logger.Log.Info("Log level updated", zap.String("level", logger.Level().String()))
	})

	return app
}

func (a *App) watchConfig(ctx context.Context) {
	if !a.Config.Server.WatchConfig || a.Config.ConfigDir == "" {
		return
	}
	go func() {
		err := configwatcher.WatchConfig(ctx, a.Config.ConfigDir, func(newCfg *config.Config) {
			for _, callback := range a.configCallbacks {
				callback(newCfg)
			}
		})
		if err != nil {
			logger.Log.Error("Config watcher stopped", zap.Error(err))
		}
	}()
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	a.watchConfig(watchCtx)

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen failed", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")
	stopWatch()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.shutdownTracer != nil {
		if err := a.shutdownTracer(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Log.Info("Server exiting")
}
