package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/storygraph/storygraph/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[api]
base_url = "https://story.example"
token = "tok"
timeout = "30s"

[cache]
backend = "file"
dir = "/tmp/sg"
ttl = "1h"

[server]
listen = ":9090"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "https://story.example" || cfg.API.Token != "tok" {
		t.Errorf("api = %+v", cfg.API)
	}
	if cfg.API.TimeoutDuration() != 30*time.Second {
		t.Errorf("timeout = %v", cfg.API.TimeoutDuration())
	}
	if cfg.Cache.TTLDuration() != time.Hour || cfg.Cache.Dir != "/tmp/sg" {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.Server.Listen != ":9090" {
		t.Errorf("listen = %q", cfg.Server.Listen)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Default()
	if cfg.API.BaseURL == "" || cfg.Cache.Backend != CacheFile || cfg.Server.Listen == "" {
		t.Errorf("Default() = %+v", cfg)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.CodeNotFound) {
		t.Errorf("Load(missing) = %v, want NOT_FOUND", err)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "[api\nbase_url=")
	if _, err := Load(path); !errors.Is(err, errors.CodeBadRequest) {
		t.Errorf("Load(malformed) = %v, want BAD_REQUEST", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[api]
base_url = "https://file.example"
`)
	t.Setenv(EnvAPIURL, "https://env.example")
	t.Setenv(EnvAccessToken, "env-token")
	t.Setenv(EnvRedisAddr, "localhost:6379")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "https://env.example" {
		t.Errorf("BaseURL = %q, want env override", cfg.API.BaseURL)
	}
	if cfg.API.Token != "env-token" {
		t.Errorf("Token = %q", cfg.API.Token)
	}
	if cfg.Cache.Backend != CacheRedis || cfg.Cache.RedisAddr != "localhost:6379" {
		t.Errorf("redis env did not switch backend: %+v", cfg.Cache)
	}
}

func TestValidateRedisNeedsAddr(t *testing.T) {
	path := writeConfig(t, `
[cache]
backend = "redis"
`)
	if _, err := Load(path); !errors.Is(err, errors.CodeBadRequest) {
		t.Errorf("Load(redis without addr) = %v, want BAD_REQUEST", err)
	}
}

func TestValidateUnknownBackend(t *testing.T) {
	path := writeConfig(t, `
[cache]
backend = "memcached"
`)
	if _, err := Load(path); !errors.Is(err, errors.CodeBadRequest) {
		t.Errorf("Load(unknown backend) = %v, want BAD_REQUEST", err)
	}
}
