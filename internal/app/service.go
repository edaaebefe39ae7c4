package app

import (
	"context"
	"errors"
	"os/signal"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Service 可启停的后台服务
type Service interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// Runner 统一启动服务，任一服务退出或收到信号时全部停止
type Runner struct {
	services []Service
}

// NewRunner 创建服务运行器，忽略 nil 服务
func NewRunner(services ...Service) *Runner {
	kept := make([]Service, 0, len(services))
	for _, svc := range services {
		if svc != nil {
			kept = append(kept, svc)
		}
	}
	return &Runner{services: kept}
}

// RunWithOptions 运行服务并处理系统信号
func RunWithOptions(runner *Runner, opts Options) error {
	if runner == nil {
		return errors.New("runner is nil")
	}
	opts = normalizeOptions(opts)
	ctx := context.Background()
	if len(opts.Signals) > 0 {
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, opts.Signals...)
		defer stop()
	}
	return runner.Run(ctx, opts.ShutdownTimeout, opts.Logger)
}

// Run 启动全部服务并阻塞到退出，ctx 取消视为正常退出
func (r *Runner) Run(ctx context.Context, stopTimeout time.Duration, log *zap.SugaredLogger) error {
	if r == nil || len(r.services) == 0 {
		return errors.New("no services to run")
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	exited := make(chan error, len(r.services))
	for _, svc := range r.services {
		wg.Add(1)
		go func(svc Service) {
			defer wg.Done()
			log.Infow("service_start", "service", svc.Name())
			err := svc.Start(ctx)
			log.Infow("service_exit", "service", svc.Name(), "error", err)
			exited <- err
		}(svc)
	}

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-exited:
	}
	cancel()

	stopErr := r.stopAll(stopTimeout, log)
	wg.Wait()
	return errors.Join(runErr, stopErr)
}

func (r *Runner) stopAll(timeout time.Duration, log *zap.SugaredLogger) error {
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	stopCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var errs []error
	for _, svc := range r.services {
		if err := svc.Stop(stopCtx); err != nil {
			log.Errorw("service_stop_failed", "service", svc.Name(), "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
