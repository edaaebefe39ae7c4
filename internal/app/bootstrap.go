package app

import (
	"errors"
	"time"

	"github.com/fixture-next/internal/config"
	"github.com/fixture-next/internal/models"
	"github.com/fixture-next/internal/provider"
	"github.com/fixture-next/internal/router"
)

// NewDBConfig 由应用配置生成数据库连接参数
func NewDBConfig(cfg *config.Config) models.DBConfig {
	db := cfg.Database
	return models.DBConfig{
		Driver: db.Driver,
		DSN:    db.ResolveDSN(),
		Mode:   cfg.Server.Mode,
		Pool: models.DBPoolConfig{
			MaxOpenConns:           db.Pool.MaxOpenConns,
			MaxIdleConns:           db.Pool.MaxIdleConns,
			ConnMaxLifetimeSeconds: db.Pool.ConnMaxLifetimeSeconds,
			ConnMaxIdleTimeSeconds: db.Pool.ConnMaxIdleTimeSeconds,
		},
		Retry: models.DBRetryConfig{
			Attempts: db.Retry.Attempts,
			Delay:    time.Duration(db.Retry.DelaySeconds) * time.Second,
		},
	}
}

// BuildRunner 构建服务运行器
func BuildRunner(cfg *config.Config) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if models.DB == nil {
		return nil, errors.New("database is not initialized")
	}

	container := provider.NewContainer(cfg, models.DB)
	engine := router.SetupRouter(cfg, container)
	httpService := NewHTTPService(listenAddr(cfg), engine)
	return NewRunner(httpService), nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	runner, err := BuildRunner(opts.Config)
	if err != nil {
		return err
	}

	opts.Logger.Infow("app_start", "addr", listenAddr(opts.Config), "mode", opts.Config.Server.Mode)
	return RunWithOptions(runner, opts)
}

func listenAddr(cfg *config.Config) string {
	return cfg.Server.Host + ":" + cfg.Server.Port
}
