// Package config loads storygraph configuration from a TOML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/storygraph/storygraph/pkg/errors"
)

// Environment variables recognized by [Load]. They override the file.
const (
	EnvAPIURL      = "STORYGRAPH_API_URL"
	EnvAccessToken = "STORYGRAPH_ACCESS_TOKEN"
	EnvCacheDir    = "STORYGRAPH_CACHE_DIR"
	EnvRedisAddr   = "STORYGRAPH_REDIS_ADDR"
	EnvListenAddr  = "STORYGRAPH_LISTEN_ADDR"
)

// API configures the backend connection.
type API struct {
	BaseURL string   `toml:"base_url"`
	Token   string   `toml:"token"`
	Timeout duration `toml:"timeout"`
}

// CacheBackend names a cache implementation.
type CacheBackend string

const (
	CacheFile  CacheBackend = "file"
	CacheRedis CacheBackend = "redis"
	CacheNone  CacheBackend = "none"
)

// Cache configures the render cache.
type Cache struct {
	Backend CacheBackend `toml:"backend"`
	Dir     string       `toml:"dir"`
	TTL     duration     `toml:"ttl"`

	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// Server configures the HTTP server.
type Server struct {
	Listen string `toml:"listen"`
}

// Config is the root configuration.
type Config struct {
	API    API    `toml:"api"`
	Cache  Cache  `toml:"cache"`
	Server Server `toml:"server"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		API: API{
			BaseURL: "http://localhost:8000",
			Timeout: duration(5 * time.Second),
		},
		Cache: Cache{
			Backend: CacheFile,
			Dir:     defaultCacheDir(),
			TTL:     duration(15 * time.Minute),
		},
		Server: Server{
			Listen: ":8080",
		},
	}
}

// Load reads the configuration file at path, falling back to defaults when
// path is empty or the default file is absent, then applies environment
// overrides. A named file that does not exist is an error; the default
// location silently falls back.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		_, err := toml.DecodeFile(path, &cfg)
		switch {
		case err == nil:
		case os.IsNotExist(err) && !explicit:
			// No config file, defaults apply.
		case os.IsNotExist(err):
			return Config{}, errors.New(errors.CodeNotFound, "config file %s does not exist", path)
		default:
			return Config{}, errors.Wrap(errors.CodeBadRequest, err, "parsing %s", path)
		}
	}

	applyEnv(&cfg)
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultPath returns the default config file location, or empty when the
// user config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "storygraph", "config.toml")
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ".storygraph-cache"
	}
	return filepath.Join(dir, "storygraph")
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv(EnvAccessToken); v != "" {
		cfg.API.Token = v
	}
	if v := os.Getenv(EnvCacheDir); v != "" {
		cfg.Cache.Dir = v
	}
	if v := os.Getenv(EnvRedisAddr); v != "" {
		cfg.Cache.RedisAddr = v
		cfg.Cache.Backend = CacheRedis
	}
	if v := os.Getenv(EnvListenAddr); v != "" {
		cfg.Server.Listen = v
	}
}

func (c Config) validate() error {
	if c.API.BaseURL == "" {
		return errors.New(errors.CodeBadRequest, "api.base_url must be set")
	}
	switch c.Cache.Backend {
	case CacheFile, CacheNone:
	case CacheRedis:
		if c.Cache.RedisAddr == "" {
			return errors.New(errors.CodeBadRequest, "cache.redis_addr must be set for the redis backend")
		}
	default:
		return errors.New(errors.CodeBadRequest, "unknown cache backend %q", c.Cache.Backend)
	}
	return nil
}

// Timeout returns the API timeout as a [time.Duration].
func (a API) TimeoutDuration() time.Duration { return time.Duration(a.Timeout) }

// TTLDuration returns the cache TTL as a [time.Duration].
func (c Cache) TTLDuration() time.Duration { return time.Duration(c.TTL) }

// duration adds TOML decoding of Go duration strings ("30s", "5m").
type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = duration(v)
	return nil
}
