package config

import (
	"fmt"
	"strings"

	"github.com/fixture-next/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 应用配置结构
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Upload   UploadConfig   `mapstructure:"upload"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Security SecurityConfig `mapstructure:"security"`
	Email    EmailConfig    `mapstructure:"email"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Host    string `mapstructure:"host"`
	Port    string `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`     // debug / release
	WebRoot string `mapstructure:"web_root"` // 前端静态目录，为空则不挂载
}

// LogConfig 日志配置
type LogConfig struct {
	Dir        string `mapstructure:"dir"`
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// ToLoggerOptions 转换为 logger 配置
func (c LogConfig) ToLoggerOptions() logger.Options {
	return logger.Options{
		Dir:        c.Dir,
		Filename:   c.Filename,
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAgeDays: c.MaxAgeDays,
		Compress:   c.Compress,
	}
}

// DatabasePoolConfig 数据库连接池配置
type DatabasePoolConfig struct {
	MaxOpenConns           int `mapstructure:"max_open_conns"`
	MaxIdleConns           int `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeSeconds int `mapstructure:"conn_max_lifetime_seconds"`
	ConnMaxIdleTimeSeconds int `mapstructure:"conn_max_idle_time_seconds"`
}

// DatabaseRetryConfig 启动连接重试配置（固定间隔）
type DatabaseRetryConfig struct {
	Attempts     int `mapstructure:"attempts"`
	DelaySeconds int `mapstructure:"delay_seconds"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver   string              `mapstructure:"driver"` // mysql / postgres / sqlite
	Host     string              `mapstructure:"host"`
	Port     int                 `mapstructure:"port"`
	Name     string              `mapstructure:"name"`
	User     string              `mapstructure:"user"`
	Password string              `mapstructure:"password"`
	DSN      string              `mapstructure:"dsn"` // 非空时优先于 host/port 等字段
	Pool     DatabasePoolConfig  `mapstructure:"pool"`
	Retry    DatabaseRetryConfig `mapstructure:"retry"`
}

// ResolveDSN 返回连接串：显式 DSN 优先，否则按 mysql 驱动由各字段拼接
func (c DatabaseConfig) ResolveDSN() string {
	if dsn := strings.TrimSpace(c.DSN); dsn != "" {
		return dsn
	}
	driver := strings.ToLower(strings.TrimSpace(c.Driver))
	if driver == "postgres" || driver == "postgresql" {
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			c.Host, c.Port, c.User, c.Password, c.Name)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// UploadConfig 表格上传配置
type UploadConfig struct {
	MaxSize int64 `mapstructure:"max_size"`
}

// EmailConfig 邮件发送运行时配置（由 settings 表的 smtp 分类生成）
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	UseSSL   bool
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// SecurityConfig 安全配置
type SecurityConfig struct {
	LoginRateLimit LoginRateLimitConfig `mapstructure:"login_rate_limit"`
}

// LoginRateLimitConfig 登录限流配置
type LoginRateLimitConfig struct {
	WindowSeconds int `mapstructure:"window_seconds"`
	MaxAttempts   int `mapstructure:"max_attempts"`
}

// envBindings 沿用容器部署时的环境变量名
var envBindings = map[string]string{
	"database.driver":   "DB_DRIVER",
	"database.host":     "DB_HOST",
	"database.port":     "DB_PORT",
	"database.name":     "DB_NAME",
	"database.user":     "DB_USER",
	"database.password": "DB_PASS",
	"database.dsn":      "DB_DSN",
}

// Load 从 .env、config.yml 与环境变量加载配置
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logger.Debugw("dotenv_not_loaded", "error", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("../")
	v.AddConfigPath("./etc")

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	if err := v.ReadInConfig(); err != nil {
		logger.Warnw("config_file_read_failed",
			"error", err,
			"fallback", "env_or_defaults",
		)
	} else {
		logger.Infow("config_file_loaded", "file", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		logger.Errorw("config_unmarshal_failed", "error", err)
		panic(fmt.Errorf("配置解析失败: %w", err))
	}

	logger.Infow("database_config_loaded",
		"driver", cfg.Database.Driver,
		"host", cfg.Database.Host,
		"port", cfg.Database.Port,
		"name", cfg.Database.Name,
		"user", cfg.Database.User,
		"password_masked", strings.Repeat("*", len(cfg.Database.Password)),
	)
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.web_root", "./web")
	v.SetDefault("log.dir", "")
	v.SetDefault("log.filename", "fixture.log")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 7)
	v.SetDefault("log.max_age_days", 30)
	v.SetDefault("log.compress", true)
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.host", "db")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.name", "fixture_management")
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.pool.max_open_conns", 10)
	v.SetDefault("database.pool.max_idle_conns", 5)
	v.SetDefault("database.pool.conn_max_lifetime_seconds", 1800)
	v.SetDefault("database.pool.conn_max_idle_time_seconds", 0)
	v.SetDefault("database.retry.attempts", 10)
	v.SetDefault("database.retry.delay_seconds", 2)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "127.0.0.1")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "fx")
	v.SetDefault("upload.max_size", 10485760)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Content-Type", "X-Request-ID", "X-Requested-With"})
	v.SetDefault("cors.allow_credentials", true)
	v.SetDefault("cors.max_age", 600)
	v.SetDefault("security.login_rate_limit.window_seconds", 300)
	v.SetDefault("security.login_rate_limit.max_attempts", 10)
}
