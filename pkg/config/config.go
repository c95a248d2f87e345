package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/yi-nology/tool_inventory/pkg/storage"
	"gopkg.in/yaml.v3"
)

// Config captures service level configuration loaded from config.yaml.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Database DatabaseConfig `yaml:"database"`
	CORS     CORSConfig     `yaml:"cors"`
	Redis    RedisConfig    `yaml:"redis"`
	Identity IdentityConfig `yaml:"identity"`
	Storage  storage.Config `yaml:"storage"`
}

// ServerConfig defines HTTP server options.
type ServerConfig struct {
	Address string `yaml:"address"`
	// ExitWaitTime bounds graceful shutdown.
	ExitWaitTime time.Duration `yaml:"exit_wait_time"`
}

// LogConfig defines the hlog level: trace, debug, info, notice, warn, error or fatal.
type LogConfig struct {
	Level string `yaml:"level"`
}

// RedisConfig defines Redis connection settings for the distributed write lock.
type RedisConfig struct {
	Enabled     bool          `yaml:"enabled"`
	Address     string        `yaml:"address"`
	Password    string        `yaml:"password"`
	DB          int           `yaml:"db"`
	LockKey     string        `yaml:"lock_key"`
	LockTTL     time.Duration `yaml:"lock_ttl"`
	LockTimeout time.Duration `yaml:"lock_timeout"`
}

// CORSConfig defines CORS middleware settings.
type CORSConfig struct {
	AllowOrigin      string `yaml:"allow_origin"`
	AllowMethods     string `yaml:"allow_methods"`
	AllowHeaders     string `yaml:"allow_headers"`
	AllowCredentials bool   `yaml:"allow_credentials"`
}

// IdentityConfig locates the role and user services used for authorization.
type IdentityConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
	// AdminRole must exist before the service starts.
	AdminRole string `yaml:"admin_role"`
	// ToolManagerRole is created on startup when missing and linked under AdminRole.
	ToolManagerRole string `yaml:"tool_manager_role"`
}

// DatabaseConfig defines the database backend configuration.
type DatabaseConfig struct {
	Driver   string         `yaml:"driver"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	MySQL    MySQLConfig    `yaml:"mysql"`
	Postgres PostgresConfig `yaml:"postgres"`
	Pool     PoolConfig     `yaml:"pool"`
}

// PoolConfig tunes the sql.DB pool and the slow query log.
type PoolConfig struct {
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	// SlowThreshold is the duration above which queries are logged at warn.
	SlowThreshold time.Duration `yaml:"slow_threshold"`
}

// SQLiteConfig contains SQLite specific settings.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// MySQLConfig contains MySQL specific connection details.
type MySQLConfig struct {
	DSN string `yaml:"dsn"`
}

// PostgresConfig contains PostgreSQL specific connection details.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// Load reads a YAML configuration file from the provided path.
// It searches in the current working directory first, then next to the binary executable.
func Load(name string) (*Config, error) {
	cfg := defaultConfig()

	configPath := findConfigFile(name)
	if configPath == "" {
		log.Printf("Warning: config file %q not found, using defaults", name)
		return cfg, nil
	}

	log.Printf("Loading config from: %s", configPath)
	f, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = f.Close() }()

	var parsed Config
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	applyDefaults(&parsed)
	if err := parsed.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	return &parsed, nil
}

// Validate rejects settings that would only fail later at startup.
func (c *Config) Validate() error {
	if c.Identity.AdminRole == c.Identity.ToolManagerRole {
		return fmt.Errorf("identity.admin_role and identity.tool_manager_role must differ (both %q)", c.Identity.AdminRole)
	}
	if c.Redis.Enabled && c.Redis.LockTimeout > c.Redis.LockTTL {
		return fmt.Errorf("redis.lock_timeout (%s) must not exceed redis.lock_ttl (%s)", c.Redis.LockTimeout, c.Redis.LockTTL)
	}
	if c.Database.Pool.MaxOpenConns > 0 && c.Database.Pool.MaxIdleConns > c.Database.Pool.MaxOpenConns {
		return fmt.Errorf("database.pool.max_idle_conns exceeds max_open_conns")
	}
	return nil
}

func defaultConfig() *Config {
	cfg := &Config{
		CORS: CORSConfig{
			AllowOrigin:      "*",
			AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
			AllowHeaders:     "Content-Type,X-User-Id",
			AllowCredentials: false,
		},
		Storage: storage.DefaultConfig(),
	}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8080"
	}
	if cfg.Server.ExitWaitTime == 0 {
		cfg.Server.ExitWaitTime = 5 * time.Second
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	if cfg.Database.SQLite.Path == "" {
		cfg.Database.SQLite.Path = "data/inventory.db"
	}
	if cfg.Database.Pool.MaxIdleConns == 0 {
		cfg.Database.Pool.MaxIdleConns = 10
	}
	if cfg.Database.Pool.MaxOpenConns == 0 {
		cfg.Database.Pool.MaxOpenConns = 100
	}
	if cfg.Database.Pool.ConnMaxLifetime == 0 {
		cfg.Database.Pool.ConnMaxLifetime = 30 * time.Minute
	}
	if cfg.Database.Pool.SlowThreshold == 0 {
		cfg.Database.Pool.SlowThreshold = 200 * time.Millisecond
	}
	if cfg.Redis.LockKey == "" {
		cfg.Redis.LockKey = "tool_inventory:write_lock"
	}
	if cfg.Redis.LockTTL == 0 {
		cfg.Redis.LockTTL = 10 * time.Second
	}
	if cfg.Redis.LockTimeout == 0 {
		cfg.Redis.LockTimeout = 3 * time.Second
	}
	if cfg.Identity.BaseURL == "" {
		cfg.Identity.BaseURL = "http://localhost:8081"
	}
	if cfg.Identity.Timeout == 0 {
		cfg.Identity.Timeout = 5 * time.Second
	}
	if cfg.Identity.AdminRole == "" {
		cfg.Identity.AdminRole = "administrators"
	}
	if cfg.Identity.ToolManagerRole == "" {
		cfg.Identity.ToolManagerRole = "toolsmanagers"
	}
	if cfg.Storage.Type == "" {
		cfg.Storage.Type = "local"
	}
	if cfg.Storage.Local.BasePath == "" {
		cfg.Storage.Local.BasePath = "data/manifests"
	}
}

// findConfigFile searches for a config file in the current directory first,
// then next to the binary executable. Returns the full path or empty string.
func findConfigFile(name string) string {
	// 1. Current working directory
	if _, err := os.Stat(name); err == nil {
		abs, _ := filepath.Abs(name)
		return abs
	}

	// 2. Next to the binary executable
	exe, err := os.Executable()
	if err == nil {
		exeDir := filepath.Dir(exe)
		candidate := filepath.Join(exeDir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}
