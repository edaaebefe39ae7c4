package cache

import (
	"testing"

	"github.com/fixture-next/internal/config"
)

func TestInitRedisDisabled(t *testing.T) {
	client, err := InitRedis(&config.RedisConfig{Enabled: false})
	if err != nil {
		t.Fatalf("disabled redis should not fail: %v", err)
	}
	if client != nil || Enabled() || Client() != nil {
		t.Fatalf("disabled redis should leave no client")
	}
	if _, err := InitRedis(nil); err != nil {
		t.Fatalf("nil config should not fail: %v", err)
	}
}

func TestKeySkipsBlankParts(t *testing.T) {
	redisPrefix = "fx"
	if got := Key("rate", " ", "login"); got != "fx:rate:login" {
		t.Fatalf("unexpected key: %s", got)
	}
	if got := Key(); got != "fx" {
		t.Fatalf("unexpected bare key: %s", got)
	}
}
