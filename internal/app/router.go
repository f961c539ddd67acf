package app

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"teksher_backend/docs"
	"teksher_backend/internal/config"
	"teksher_backend/internal/middleware"
	"teksher_backend/internal/util"
	"teksher_backend/pkg/monitoring"
	"teksher_backend/pkg/security"
	"teksher_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, rateWindow(cfg)))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func rateWindow(cfg *config.Config) time.Duration {
	if cfg.RateLimit.WindowMinutes <= 0 {
		return time.Minute
	}
	return time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
}

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = util.APIPrefix
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/api/health", c.health.HealthCheck)

	api := router.Group(util.APIPrefix)

	// 1. 公共路由(无需登录)，带令牌时解析用户用于日志
	public := api.Group("")
	public.Use(middleware.OptionalAuth(cfg.JWT.Secret, a.Revoker))
	a.registerPublicRoutes(public, c)

	// 2. 认证相关，单独限流
	authLimiter := security.RateLimiter(cfg.RateLimit.AuthMaxRequests, rateWindow(cfg))
	a.registerAuthRoutes(api.Group("/users", authLimiter), c)

	// 3. 需要授权的路由
	authGroup := api.Group("")
	authGroup.Use(middleware.AuthMiddleware(cfg.JWT.Secret, a.Revoker))
	{
		a.registerContentWriteRoutes(authGroup, c)
		a.registerAttemptRoutes(authGroup, c)
		a.registerBookmarkRoutes(authGroup, c)
		a.registerAccountRoutes(authGroup, c)
	}

	a.registerStaticRoutes(router, cfg)
}

func (a *App) registerPublicRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/categories", c.category.List)
	rg.GET("/categories/:id", c.category.Get)

	rg.GET("/testsets", c.content.ListTestSets)
	rg.GET("/testsets/:id", c.content.GetTestSet)
	rg.GET("/questions", c.content.ListQuestions)
	rg.GET("/questions/:id", c.content.GetQuestion)
	rg.GET("/options", c.content.ListOptions)
	rg.GET("/options/:id", c.content.GetOption)
}

func (a *App) registerAuthRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.POST("/register", c.auth.Register)
	rg.POST("/login", c.auth.Login)
	rg.POST("/reset-password", c.auth.RequestPasswordReset)
	rg.POST("/reset-password/confirm", c.auth.ConfirmPasswordReset)
}

func (a *App) registerContentWriteRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.POST("/categories", c.category.Create)
	rg.PUT("/categories/:id", c.category.Update)
	rg.PATCH("/categories/:id", c.category.Update)
	rg.DELETE("/categories/:id", c.category.Delete)

	rg.POST("/testsets", c.content.CreateTestSet)
	rg.PUT("/testsets/:id", c.content.UpdateTestSet)
	rg.PATCH("/testsets/:id", c.content.UpdateTestSet)
	rg.DELETE("/testsets/:id", c.content.DeleteTestSet)

	rg.POST("/questions", c.content.CreateQuestion)
	rg.PUT("/questions/:id", c.content.UpdateQuestion)
	rg.PATCH("/questions/:id", c.content.UpdateQuestion)
	rg.DELETE("/questions/:id", c.content.DeleteQuestion)

	rg.POST("/options", c.content.CreateOption)
	rg.PUT("/options/:id", c.content.UpdateOption)
	rg.PATCH("/options/:id", c.content.UpdateOption)
	rg.DELETE("/options/:id", c.content.DeleteOption)
}

func (a *App) registerAttemptRoutes(rg *gin.RouterGroup, c *controllers) {
	attempts := rg.Group("/attempts")
	{
		attempts.GET("", c.attempt.ListAttempts)
		attempts.POST("", c.attempt.CreateAttempt)
		attempts.GET("/:id", c.attempt.GetAttempt)
		attempts.PUT("/:id", c.attempt.UpdateAttempt)
		attempts.PATCH("/:id", c.attempt.UpdateAttempt)
		attempts.DELETE("/:id", c.attempt.DeleteAttempt)
	}

	answers := rg.Group("/answers")
	{
		answers.GET("", c.attempt.ListAnswers)
		answers.POST("", c.attempt.CreateAnswer)
		answers.GET("/:id", c.attempt.GetAnswer)
		answers.PUT("/:id", c.attempt.UpdateAnswer)
		answers.PATCH("/:id", c.attempt.UpdateAnswer)
		answers.DELETE("/:id", c.attempt.DeleteAnswer)
	}
}

func (a *App) registerBookmarkRoutes(rg *gin.RouterGroup, c *controllers) {
	questions := rg.Group("/bookmarks/question-bookmarks")
	{
		questions.GET("", c.bookmark.ListQuestionBookmarks)
		questions.POST("", c.bookmark.CreateQuestionBookmark)
		questions.GET("/:id", c.bookmark.GetQuestionBookmark)
		questions.PUT("/:id", c.bookmark.UpdateQuestionBookmark)
		questions.PATCH("/:id", c.bookmark.UpdateQuestionBookmark)
		questions.DELETE("/:id", c.bookmark.DeleteQuestionBookmark)
	}

	testSets := rg.Group("/bookmarks/testset-bookmarks")
	{
		testSets.GET("", c.bookmark.ListTestSetBookmarks)
		testSets.POST("", c.bookmark.CreateTestSetBookmark)
		testSets.GET("/:id", c.bookmark.GetTestSetBookmark)
		testSets.PUT("/:id", c.bookmark.UpdateTestSetBookmark)
		testSets.PATCH("/:id", c.bookmark.UpdateTestSetBookmark)
		testSets.DELETE("/:id", c.bookmark.DeleteTestSetBookmark)
	}
}

func (a *App) registerAccountRoutes(rg *gin.RouterGroup, c *controllers) {
	users := rg.Group("/users")
	{
		users.POST("/logout", c.auth.Logout)
		users.GET("/me", c.auth.Me)
		users.POST("/change-password", c.auth.ChangePassword)

		// 资料没有可写字段，PUT/PATCH 原样返回
		users.GET("/profiles", c.user.ListProfiles)
		users.POST("/profiles", c.user.CreateProfile)
		users.GET("/profiles/:id", c.user.GetProfile)
		users.PUT("/profiles/:id", c.user.GetProfile)
		users.PATCH("/profiles/:id", c.user.GetProfile)
		users.DELETE("/profiles/:id", c.user.DeleteProfile)

		users.GET("/preferences", c.user.ListPreferences)
		users.POST("/preferences", c.user.CreatePreferences)
		users.GET("/preferences/my_preferences", c.user.MyPreferences)
		users.GET("/preferences/:id", c.user.GetPreferences)
		users.PUT("/preferences/:id", c.user.UpdatePreferences)
		users.PATCH("/preferences/:id", c.user.UpdatePreferences)
		users.DELETE("/preferences/:id", c.user.DeletePreferences)

		users.GET("/progress", c.user.ListProgress)
		users.POST("/progress", c.user.CreateProgress)
		users.GET("/progress/by_status", c.user.ProgressByStatus)
		users.POST("/progress/reset_all", c.user.ResetAllProgress)
		users.GET("/progress/:id", c.user.GetProgress)
		users.PUT("/progress/:id", c.user.UpdateProgress)
		users.PATCH("/progress/:id", c.user.UpdateProgress)
		users.DELETE("/progress/:id", c.user.DeleteProgress)

		users.GET("/history", c.user.ListHistory)
		users.POST("/history", c.user.CreateHistory)
		users.GET("/history/:id", c.user.GetHistory)
		users.PUT("/history/:id", c.user.UpdateHistory)
		users.PATCH("/history/:id", c.user.UpdateHistory)
		users.DELETE("/history/:id", c.user.DeleteHistory)
	}
}

// registerStaticRoutes 配置 static_dir 时托管前端，未知的非 API 路径回退到 index.html
func (a *App) registerStaticRoutes(router *gin.Engine, cfg *config.Config) {
	dir := cfg.Server.StaticDir
	router.NoRoute(func(ctx *gin.Context) {
		path := ctx.Request.URL.Path
		if dir == "" || strings.HasPrefix(path, "/api/") || ctx.Request.Method != http.MethodGet {
			util.NotFound(ctx)
			return
		}

		file := filepath.Join(dir, filepath.Clean("/"+path))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			ctx.File(file)
			return
		}
		ctx.File(filepath.Join(dir, "index.html"))
	})
}
