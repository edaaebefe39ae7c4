package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestResolveDSNMySQLFromFields(t *testing.T) {
	cfg := DatabaseConfig{Driver: "mysql", Host: "db", Port: 3306, Name: "fixture_management", User: "root", Password: "secret"}
	want := "root:secret@tcp(db:3306)/fixture_management?charset=utf8mb4&parseTime=true&loc=Local"
	if got := cfg.ResolveDSN(); got != want {
		t.Fatalf("unexpected dsn: %s", got)
	}
}

func TestResolveDSNPrefersExplicit(t *testing.T) {
	cfg := DatabaseConfig{Driver: "sqlite", DSN: " file:fixture.db "}
	if got := cfg.ResolveDSN(); got != "file:fixture.db" {
		t.Fatalf("unexpected dsn: %s", got)
	}
}

func TestResolveDSNPostgres(t *testing.T) {
	cfg := DatabaseConfig{Driver: "postgres", Host: "pg", Port: 5432, Name: "fx", User: "u", Password: "p"}
	want := "host=pg port=5432 user=u password=p dbname=fx sslmode=disable"
	if got := cfg.ResolveDSN(); got != want {
		t.Fatalf("unexpected dsn: %s", got)
	}
}

func TestDefaultsMatchContainerLayout(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		t.Fatalf("unmarshal defaults failed: %v", err)
	}
	if cfg.Database.Host != "db" || cfg.Database.Port != 3306 || cfg.Database.Name != "fixture_management" || cfg.Database.User != "root" {
		t.Fatalf("unexpected database defaults: %+v", cfg.Database)
	}
	if cfg.Database.Retry.Attempts != 10 || cfg.Database.Retry.DelaySeconds != 2 {
		t.Fatalf("unexpected retry defaults: %+v", cfg.Database.Retry)
	}
	if cfg.Server.Port != "8000" {
		t.Fatalf("unexpected server port: %s", cfg.Server.Port)
	}
}

func TestLoadBindsStoreEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_HOST", "mysql.internal")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_PASS", "pw")
	cfg := Load()
	if cfg.Database.Host != "mysql.internal" || cfg.Database.Port != 3307 || cfg.Database.Password != "pw" {
		t.Fatalf("env bindings not applied: %+v", cfg.Database)
	}
}
