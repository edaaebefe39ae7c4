package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/fixture-next/internal/app"
	"github.com/fixture-next/internal/config"
	"github.com/fixture-next/internal/logger"
	"github.com/fixture-next/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiDim   = "\033[2m"
	ansiCyan  = "\033[36m"
)

func main() {
	printStartupBanner()

	// 加载配置
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()
	stdLog := logger.StdLogger()

	// 初始化数据库，重试耗尽后退出
	if err := models.InitDB(app.NewDBConfig(cfg)); err != nil {
		stdLog.Fatalf("数据库初始化失败: %v", err)
	}

	// 建表与默认管理员，失败不阻断启动，统计接口会再次自愈
	if err := models.InitSchema(models.DB); err != nil {
		logger.Errorw("schema_init_failed", "error", err)
	}

	// 设置 Gin 模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
	}); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}

func printStartupBanner() {
	fmt.Println(ansiCyan + ansiBold + "╔══════════════════════════════════════════════╗" + ansiReset)
	fmt.Println(ansiCyan + ansiBold + "║      Fixture Management API 启动中          ║" + ansiReset)
	fmt.Println(ansiCyan + ansiBold + "╚══════════════════════════════════════════════╝" + ansiReset)
	fmt.Println(ansiDim + "----------------------------------------------" + ansiReset)
}
