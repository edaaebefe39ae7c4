package router

import (
	"os"
	"strings"

	"github.com/fixture-next/internal/cache"
	"github.com/fixture-next/internal/config"
	adminhandlers "github.com/fixture-next/internal/http/handlers/admin"
	publichandlers "github.com/fixture-next/internal/http/handlers/public"
	"github.com/fixture-next/internal/logger"
	"github.com/fixture-next/internal/provider"

	"github.com/gin-gonic/gin"
)

const defaultUploadMaxSize int64 = 10 << 20

// multipart 包装开销
const uploadBodyOverhead int64 = 1 << 20

const loginRateLimitMessage = "登入嘗試過於頻繁，請 %d 秒後再試"

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（公开/后台）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	loginRule := RateLimitRule{
		Prefix:        cache.Key("rate", "login"),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		Message:       loginRateLimitMessage,
	}
	uploadLimit := cfg.Upload.MaxSize
	if uploadLimit <= 0 {
		uploadLimit = defaultUploadMaxSize
	}
	uploadBodyLimit := BodyLimitMiddleware(uploadLimit + uploadBodyOverhead)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	if webRoot := strings.TrimSpace(cfg.Server.WebRoot); webRoot != "" {
		if info, err := os.Stat(webRoot); err == nil && info.IsDir() {
			r.Static("/app", webRoot)
		} else {
			logger.Warnw("web_root_not_mounted", "web_root", webRoot)
		}
	}

	r.GET("/", publicHandler.Root)
	r.GET("/healthz", publicHandler.Healthz)
	r.POST("/login", RateLimitMiddleware(c.Redis, loginRule, KeyByIPAndJSONField("username")), publicHandler.Login)

	// 账号管理
	users := r.Group("/users")
	{
		users.GET("", adminHandler.ListUsers)
		users.POST("", adminHandler.CreateUser)
		users.PUT("/:username", adminHandler.UpdateUser)
		users.DELETE("/:username", adminHandler.DeleteUser)
	}

	// 治具与治具资料
	fixtures := r.Group("/fixtures")
	{
		fixtures.GET("", adminHandler.ListFixtures)
		fixtures.POST("", adminHandler.CreateFixture)
		fixtures.PUT("/:id", adminHandler.UpdateFixture)
		fixtures.DELETE("/:id", adminHandler.DeleteFixture)
		fixtures.GET("/models", adminHandler.ListFixtureModels)
		fixtures.POST("/models", adminHandler.CreateFixtureModel)
		fixtures.POST("/import_xlsx", uploadBodyLimit, adminHandler.ImportFixtureModels)
	}

	// 机种资料
	machines := r.Group("/machines")
	{
		machines.GET("/models", adminHandler.ListMachineModels)
		machines.POST("/models", adminHandler.CreateMachineModel)
		machines.POST("/import_xlsx", uploadBodyLimit, adminHandler.ImportMachineModels)
	}

	// 收退料台账
	receipts := r.Group("/receipts")
	{
		receipts.GET("", adminHandler.ListReceipts)
		receipts.POST("", adminHandler.CreateReceipt)
		receipts.DELETE("/:id", adminHandler.DeleteReceipt)
	}
	returns := r.Group("/returns")
	{
		returns.GET("", adminHandler.ListReturns)
		returns.POST("", adminHandler.CreateReturn)
		returns.DELETE("/:id", adminHandler.DeleteReturn)
	}

	// 使用记录
	logs := r.Group("/logs")
	{
		logs.GET("", adminHandler.ListUsageLogs)
		logs.POST("", adminHandler.CreateUsageLog)
		logs.GET("/export", adminHandler.ExportUsageLogs)
	}

	// 设置管理
	settings := r.Group("/settings")
	{
		settings.GET("/smtp", adminHandler.GetSMTPSettings)
		settings.POST("/smtp", adminHandler.SaveSMTPSettings)
		settings.POST("/smtp/test", adminHandler.TestSMTPSettings)
	}

	// 统计与开站计算
	r.GET("/stats/summary", adminHandler.GetStatsSummary)
	models := r.Group("/models")
	{
		models.GET("/max_stations", adminHandler.GetMaxStations)
		models.GET("/requirements", adminHandler.ListRequirements)
		models.POST("/requirements", adminHandler.CreateRequirement)
		models.DELETE("/requirements/:id", adminHandler.DeleteRequirement)
		models.POST("/requirements/import_xlsx", uploadBodyLimit, adminHandler.ImportRequirements)
	}

	return r
}
