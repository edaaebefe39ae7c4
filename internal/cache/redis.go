package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fixture-next/internal/config"

	"github.com/redis/go-redis/v9"
)

const (
	defaultRedisHost   = "127.0.0.1"
	defaultRedisPort   = 6379
	defaultRedisPrefix = "fx"
	pingTimeout        = 3 * time.Second
)

var redisClient *redis.Client
var redisPrefix = defaultRedisPrefix

// InitRedis 初始化 Redis 客户端，未启用时返回 nil 客户端
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	if cfg == nil || !cfg.Enabled {
		redisClient = nil
		return nil, nil
	}
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = defaultRedisHost
	}
	port := cfg.Port
	if port <= 0 {
		port = defaultRedisPort
	}
	redisPrefix = strings.TrimSpace(cfg.Prefix)
	if redisPrefix == "" {
		redisPrefix = defaultRedisPrefix
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		redisClient = nil
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	redisClient = client
	return client, nil
}

// Enabled 判断缓存是否启用
func Enabled() bool {
	return redisClient != nil
}

// Client 获取 Redis 客户端
func Client() *redis.Client {
	return redisClient
}

// Key 拼接带前缀的 key
func Key(parts ...string) string {
	segments := make([]string, 0, len(parts)+1)
	segments = append(segments, redisPrefix)
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			segments = append(segments, trimmed)
		}
	}
	return strings.Join(segments, ":")
}
