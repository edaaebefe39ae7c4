package main

import (
	"github.com/fixture-next/internal/app"
	"github.com/fixture-next/internal/config"
	"github.com/fixture-next/internal/logger"
	"github.com/fixture-next/internal/models"
)

// 单独执行建表与默认管理员初始化，可重复运行
func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()
	stdLog := logger.StdLogger()

	db, err := models.Connect(app.NewDBConfig(cfg))
	if err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}
	if err := models.InitSchema(db); err != nil {
		stdLog.Fatalf("Failed to init schema: %v", err)
	}
	logger.Infow("schema_initialized", "driver", cfg.Database.Driver)
}
