package router

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/fixture-next/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	requestIDKey    = "request_id"
	requestIDHeader = "X-Request-ID"
	maxRequestIDLen = 64
)

// 默认放行的请求头，登录无令牌，故不含 Authorization
var defaultCORSHeaders = []string{"Content-Type", "X-Request-ID", "X-Requested-With"}

// 前端需要读取的响应头：请求 ID、CSV 下载文件名、限流重试秒数
var corsExposeHeaders = strings.Join([]string{requestIDHeader, "Content-Disposition", "Retry-After"}, ", ")

// 健康检查与静态资源日志降为 debug
var quietPathPrefixes = []string{"/healthz", "/app/"}

type corsPolicy struct {
	origins     []string
	wildcard    bool
	credentials bool
	methods     string
	headers     string
	maxAge      string
}

func newCORSPolicy(cfg config.CORSConfig) corsPolicy {
	p := corsPolicy{
		credentials: cfg.AllowCredentials,
		methods:     strings.Join(orDefault(cfg.AllowedMethods, []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}), ", "),
		headers:     strings.Join(orDefault(cfg.AllowedHeaders, defaultCORSHeaders), ", "),
	}
	for _, origin := range orDefault(cfg.AllowedOrigins, []string{"*"}) {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		if origin == "*" {
			p.wildcard = true
			continue
		}
		if origin != "" {
			p.origins = append(p.origins, origin)
		}
	}
	if cfg.MaxAge > 0 {
		p.maxAge = strconv.Itoa(cfg.MaxAge)
	}
	return p
}

// allowOrigin 返回 Access-Control-Allow-Origin 的值，空串表示不放行
// 通配且允许凭据时回显来源，浏览器不接受 * 与凭据同时出现
func (p corsPolicy) allowOrigin(origin string) string {
	if p.wildcard {
		if p.credentials && origin != "" {
			return origin
		}
		return "*"
	}
	for _, allowed := range p.origins {
		if origin != "" && strings.EqualFold(allowed, origin) {
			return origin
		}
	}
	return ""
}

func orDefault(values, fallback []string) []string {
	if len(values) == 0 {
		return fallback
	}
	return values
}

// CORSMiddleware 跨域中间件，OPTIONS 预检直接 204
func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	policy := newCORSPolicy(cfg)
	return func(c *gin.Context) {
		header := c.Writer.Header()
		if allowed := policy.allowOrigin(c.GetHeader("Origin")); allowed != "" {
			header.Set("Access-Control-Allow-Origin", allowed)
			if allowed != "*" {
				header.Add("Vary", "Origin")
			}
			header.Set("Access-Control-Expose-Headers", corsExposeHeaders)
		}
		if policy.credentials {
			header.Set("Access-Control-Allow-Credentials", "true")
		}

		if c.Request.Method == http.MethodOptions {
			header.Set("Access-Control-Allow-Headers", policy.headers)
			header.Set("Access-Control-Allow-Methods", policy.methods)
			if policy.maxAge != "" {
				header.Set("Access-Control-Max-Age", policy.maxAge)
			}
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// RequestIDMiddleware 沿用调用方传入的请求 ID，过长或含不可见字符时重新生成
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if !validRequestID(requestID) {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for _, r := range id {
		if r <= ' ' || r > '~' {
			return false
		}
	}
	return true
}

// LoggerMiddleware 请求日志：5xx 或有 c.Errors 记 error，4xx 记 warn
func LoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	sugar := logger.Sugar()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		fields := []interface{}{
			"request_id", getRequestID(c),
			"method", c.Request.Method,
			"route", route,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
			"bytes_out", c.Writer.Size(),
		}
		// 表格导入记录上传体积
		if c.Request.ContentLength > 0 && strings.HasPrefix(c.ContentType(), "multipart/") {
			fields = append(fields, "upload_bytes", c.Request.ContentLength)
		}

		switch {
		case len(c.Errors) > 0:
			sugar.Errorw("http_request", append(fields, "errors", c.Errors.String())...)
		case status >= http.StatusInternalServerError:
			sugar.Errorw("http_request", fields...)
		case status >= http.StatusBadRequest:
			sugar.Warnw("http_request", fields...)
		case isQuietPath(c.Request.URL.Path):
			sugar.Debugw("http_request", fields...)
		default:
			sugar.Infow("http_request", fields...)
		}
	}
}

func isQuietPath(path string) bool {
	for _, prefix := range quietPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func getRequestID(c *gin.Context) string {
	if requestID, ok := c.Get(requestIDKey); ok {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}

// BodyLimitMiddleware 限制请求体大小，超出部分读取时报错
func BodyLimitMiddleware(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
