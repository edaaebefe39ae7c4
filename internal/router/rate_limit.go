package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fixture-next/internal/http/response"
	"github.com/fixture-next/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	defaultRateLimitMessage     = "請求過於頻繁，請 %d 秒後再試"
	rateLimitUnavailableMessage = "限流服務暫不可用"
)

// RateLimitKeyFunc 生成限流 key 的函数
type RateLimitKeyFunc func(*gin.Context) string

// RateLimitRule 固定窗口限流规则
type RateLimitRule struct {
	Prefix        string
	WindowSeconds int
	MaxRequests   int
	Message       string // 需包含一个 %d 占位，表示等待秒数
}

func (r RateLimitRule) enabled() bool {
	return r.WindowSeconds > 0 && r.MaxRequests > 0
}

// windowCounter 固定窗口计数，返回窗口内次数与剩余秒数
type windowCounter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// redisCounter 以 INCR + EXPIRE NX 实现窗口计数
type redisCounter struct {
	client *redis.Client
}

func (r redisCounter) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	var incr *redis.IntCmd
	var ttl *redis.DurationCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, window)
		ttl = pipe.TTL(ctx, key)
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return incr.Val(), ttl.Val(), nil
}

// RateLimitMiddleware Redis 频率限制中间件，client 为空或规则未配置时放行
func RateLimitMiddleware(client *redis.Client, rule RateLimitRule, keyFunc RateLimitKeyFunc) gin.HandlerFunc {
	if client == nil {
		return rateLimit(nil, rule, keyFunc)
	}
	return rateLimit(redisCounter{client: client}, rule, keyFunc)
}

func rateLimit(counter windowCounter, rule RateLimitRule, keyFunc RateLimitKeyFunc) gin.HandlerFunc {
	window := time.Duration(rule.WindowSeconds) * time.Second
	format := strings.TrimSpace(rule.Message)
	if format == "" {
		format = defaultRateLimitMessage
	}

	return func(c *gin.Context) {
		if counter == nil || !rule.enabled() {
			c.Next()
			return
		}

		key := ""
		if keyFunc != nil {
			key = strings.TrimSpace(keyFunc(c))
		}
		if key == "" {
			key = c.ClientIP()
		}
		if rule.Prefix != "" {
			key = rule.Prefix + ":" + key
		}

		count, ttl, err := counter.Hit(c.Request.Context(), key, window)
		if err != nil {
			logger.Warnw("rate_limit_unavailable", "key", key, "error", err)
			response.Error(c, response.CodeInternal, rateLimitUnavailableMessage)
			return
		}
		if count > int64(rule.MaxRequests) {
			wait := int(ttl / time.Second)
			if wait < 1 {
				wait = rule.WindowSeconds
			}
			c.Header("Retry-After", strconv.Itoa(wait))
			response.Error(c, response.CodeTooManyRequests, fmt.Sprintf(format, wait))
			return
		}
		c.Next()
	}
}

// KeyByIP 使用 IP 作为限流 key
func KeyByIP(c *gin.Context) string {
	return c.ClientIP()
}

// KeyByIPAndJSONField 使用 JSON 字段 + IP 作为限流 key，读取后恢复请求体
func KeyByIPAndJSONField(field string) RateLimitKeyFunc {
	return func(c *gin.Context) string {
		value := strings.ToLower(strings.TrimSpace(peekJSONField(c, field)))
		if value == "" {
			return c.ClientIP()
		}
		return value + "|" + c.ClientIP()
	}
}

func peekJSONField(c *gin.Context, field string) string {
	if c == nil || c.Request == nil || c.Request.Body == nil {
		return ""
	}
	body, err := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil || len(body) == 0 {
		return ""
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	text, _ := payload[field].(string)
	return text
}
