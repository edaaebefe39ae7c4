package models

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fixture-next/internal/logger"

	"github.com/glebarez/sqlite" // 纯 Go SQLite 驱动（基于 modernc.org/sqlite）
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB 进程级数据库句柄，由 InitDB 设置
var DB *gorm.DB

// ErrConnection 重试次数用尽后仍无法连接数据库
var ErrConnection = errors.New("database connection failed")

const (
	defaultRetryAttempts = 10
	defaultRetryDelay    = 2 * time.Second
)

// DBPoolConfig 数据库连接池配置
type DBPoolConfig struct {
	MaxOpenConns           int
	MaxIdleConns           int
	ConnMaxLifetimeSeconds int
	ConnMaxIdleTimeSeconds int
}

// DBRetryConfig 启动连接重试配置，固定间隔
type DBRetryConfig struct {
	Attempts int
	Delay    time.Duration
}

// DBConfig 数据库连接配置
type DBConfig struct {
	Driver string
	DSN    string
	Mode   string // 服务运行模式，决定 SQL 日志级别
	Pool   DBPoolConfig
	Retry  DBRetryConfig
}

// InitDB 连接数据库并设置全局句柄
func InitDB(cfg DBConfig) error {
	db, err := Connect(cfg)
	if err != nil {
		return err
	}
	DB = db
	return nil
}

// Connect 按驱动打开数据库连接，失败时以固定间隔重试
func Connect(cfg DBConfig) (*gorm.DB, error) {
	dialector, err := openDialector(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}
	return connectWithRetry(dialector, cfg, time.Sleep)
}

func openDialector(driver, dsn string) (gorm.Dialector, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", "mysql":
		return mysql.Open(dsn), nil
	case "postgres", "postgresql":
		return postgres.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

func connectWithRetry(dialector gorm.Dialector, cfg DBConfig, sleep func(time.Duration)) (*gorm.DB, error) {
	attempts := cfg.Retry.Attempts
	if attempts <= 0 {
		attempts = defaultRetryAttempts
	}
	delay := cfg.Retry.Delay
	if delay <= 0 {
		delay = defaultRetryDelay
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := gorm.Open(dialector, &gorm.Config{
			Logger: logger.NewGormLogger(cfg.Mode),
		})
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				applyDBPool(sqlDB, cfg.Pool)
				if attempt > 1 {
					logger.Infow("db_connect_recovered", "attempt", attempt)
				}
				return db, nil
			}
			err = dbErr
		}
		lastErr = err
		logger.Warnw("db_connect_failed", "attempt", attempt, "max_attempts", attempts, "error", err)
		if attempt < attempts {
			sleep(delay)
		}
	}
	return nil, fmt.Errorf("%w after %d attempts: %v", ErrConnection, attempts, lastErr)
}

func applyDBPool(sqlDB *sql.DB, pool DBPoolConfig) {
	if sqlDB == nil {
		return
	}
	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns >= 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetimeSeconds > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(pool.ConnMaxLifetimeSeconds) * time.Second)
	}
	if pool.ConnMaxIdleTimeSeconds > 0 {
		sqlDB.SetConnMaxIdleTime(time.Duration(pool.ConnMaxIdleTimeSeconds) * time.Second)
	}
}
