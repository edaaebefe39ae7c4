package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fixture-next/internal/config"
)

type stubService struct {
	name     string
	startErr error
	block    bool
	stopped  atomic.Bool
}

func (s *stubService) Name() string { return s.name }

func (s *stubService) Start(ctx context.Context) error {
	if s.block {
		<-ctx.Done()
		return nil
	}
	return s.startErr
}

func (s *stubService) Stop(context.Context) error {
	s.stopped.Store(true)
	return nil
}

func TestRunnerStopsAllServicesOnFailure(t *testing.T) {
	failing := &stubService{name: "failing", startErr: errors.New("bind failed")}
	blocking := &stubService{name: "blocking", block: true}

	err := NewRunner(failing, blocking).Run(context.Background(), time.Second, nil)
	if err == nil || err.Error() != "bind failed" {
		t.Fatalf("expected start error, got %v", err)
	}
	if !failing.stopped.Load() || !blocking.stopped.Load() {
		t.Fatalf("all services should be stopped")
	}
}

func TestRunnerCancelIsCleanExit(t *testing.T) {
	blocking := &stubService{name: "blocking", block: true}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NewRunner(blocking).Run(ctx, time.Second, nil); err != nil {
		t.Fatalf("cancelled runner should return nil, got %v", err)
	}
}

func TestNewDBConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Mode = "release"
	cfg.Database = config.DatabaseConfig{
		Driver:   "mysql",
		Host:     "db",
		Port:     3306,
		Name:     "fixture_management",
		User:     "root",
		Password: "pw",
		Retry:    config.DatabaseRetryConfig{Attempts: 5, DelaySeconds: 3},
	}

	dbCfg := NewDBConfig(cfg)
	if dbCfg.DSN != "root:pw@tcp(db:3306)/fixture_management?charset=utf8mb4&parseTime=true&loc=Local" {
		t.Fatalf("unexpected dsn: %s", dbCfg.DSN)
	}
	if dbCfg.Retry.Attempts != 5 || dbCfg.Retry.Delay != 3*time.Second || dbCfg.Mode != "release" {
		t.Fatalf("unexpected db config: %+v", dbCfg)
	}
}

func TestBuildRunnerRequiresConfig(t *testing.T) {
	if _, err := BuildRunner(nil); err == nil {
		t.Fatalf("nil config should fail")
	}
}

func TestHTTPServiceServeAndStop(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen failed: %v", err)
	}
	svc := NewHTTPService(listener.Addr().String(), http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	done := make(chan error, 1)
	go func() {
		done <- svc.Serve(context.Background(), listener)
	}()

	resp, err := http.Get("http://" + listener.Addr().String() + "/")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200 got %d", resp.StatusCode)
	}

	if err := svc.Stop(context.Background()); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("serve should exit cleanly, got %v", err)
	}
}
