package logger

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 500 * time.Millisecond

// GormLogger 将 GORM 日志转发到 zap
type GormLogger struct {
	level gormlogger.LogLevel
}

// NewGormLogger 按运行模式创建 GORM 日志：debug 打印全部 SQL，其余模式只记录告警与错误
func NewGormLogger(mode string) *GormLogger {
	level := gormlogger.Warn
	if IsDebug(mode) {
		level = gormlogger.Info
	}
	return &GormLogger{level: level}
}

// LogMode 实现 gormlogger.Interface
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	next := *l
	next.level = level
	return &next
}

// Info 实现 gormlogger.Interface
func (l *GormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		S().Infof(msg, args...)
	}
}

// Warn 实现 gormlogger.Interface
func (l *GormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		S().Warnf(msg, args...)
	}
}

// Error 实现 gormlogger.Interface
func (l *GormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		S().Errorf(msg, args...)
	}
}

// Trace 实现 gormlogger.Interface
func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		sql, rows := fc()
		Z().Error("gorm_query_failed", zap.String("sql", sql), zap.Int64("rows", rows), zap.Duration("elapsed", elapsed), zap.Error(err))
	case elapsed > slowQueryThreshold && l.level >= gormlogger.Warn:
		sql, rows := fc()
		Z().Warn("gorm_slow_query", zap.String("sql", sql), zap.Int64("rows", rows), zap.Duration("elapsed", elapsed))
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		Z().Debug("gorm_query", zap.String("sql", sql), zap.Int64("rows", rows), zap.Duration("elapsed", elapsed))
	}
}
