// Package config loads service settings from a TOML file, a .env file and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"bodyprogress/internal/domain"
)

// Storage backends.
const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

type Config struct {
	Addr   string `toml:"addr"`
	WebDir string `toml:"web_dir"`
	// storage
	Storage     string `toml:"storage"`
	DataDir     string `toml:"data_dir"`
	DatabaseURL string `toml:"database_url"`
	// redis
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	RedisPrefix   string `toml:"redis_prefix"`
	CacheSizeMB   int    `toml:"cache_size_mb"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogFile       string `toml:"log_file"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	// ui
	WeightUnit         string `toml:"weight_unit"`
	Theme              string `toml:"theme"`
	EntryDeleteEnabled bool   `toml:"entry_delete_enabled"`
}

// section maps an -env value to its TOML table.
func section(env string) (string, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return "development", nil
	case "prod", "production":
		return "production", nil
	default:
		return "", fmt.Errorf("unknown env: %s", env)
	}
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Addr:        ":8080",
		WebDir:      "web",
		Storage:     StorageFile,
		DataDir:     "data",
		RedisPrefix: "bodyprogress::",
		LogLevel:    "info",
		LogToStdout: true,
		WeightUnit:  domain.UnitKg,
		Theme:       "indigo",
	}
}

// Load reads the [development] or [production] table of the TOML file at path
// over the defaults, then applies .env and environment overrides. A missing
// file is not an error.
func Load(path, env string) (*Config, error) {
	name, err := section(env)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	var tables map[string]toml.Primitive
	md, err := toml.DecodeFile(path, &tables)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("config %s: %w", path, err)
	default:
		if t, ok := tables[name]; ok {
			if err := md.PrimitiveDecode(t, cfg); err != nil {
				return nil, fmt.Errorf("config %s [%s]: %w", path, name, err)
			}
		}
	}

	// .env is optional; real environment variables win over it
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	var errs []error
	num := func(key string, dst *int) {
		if v, ok := lookup(key); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = n
		}
	}
	flag := func(key string, dst *bool) {
		if v, ok := lookup(key); ok && v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = b
		}
	}

	str("ADDR", &c.Addr)
	str("WEB_DIR", &c.WebDir)
	str("STORAGE", &c.Storage)
	str("DATA_DIR", &c.DataDir)
	str("DATABASE_URL", &c.DatabaseURL)
	str("REDIS_ADDR", &c.RedisAddr)
	str("REDIS_PASSWORD", &c.RedisPassword)
	num("REDIS_DB", &c.RedisDB)
	str("REDIS_PREFIX", &c.RedisPrefix)
	num("CACHE_SIZE_MB", &c.CacheSizeMB)
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FILE", &c.LogFile)
	flag("LOG_TO_STDOUT", &c.LogToStdout)
	flag("LOG_FORMAT_JSON", &c.LogFormatJSON)
	str("WEIGHT_UNIT", &c.WeightUnit)
	str("THEME", &c.Theme)
	flag("ENTRY_DELETE_ENABLED", &c.EntryDeleteEnabled)

	return errors.Join(errs...)
}

// Validate checks that the selected backend is fully configured and that the
// UI settings name known values.
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageMemory:
	case StorageFile:
		if c.DataDir == "" {
			return errors.New("data_dir is required for file storage")
		}
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return errors.New("database_url is required for postgres storage")
		}
	case StorageRedis:
		if c.RedisAddr == "" {
			return errors.New("redis_addr is required for redis storage")
		}
	default:
		return fmt.Errorf("unknown storage %q", c.Storage)
	}
	if c.CacheSizeMB < 0 {
		return errors.New("cache_size_mb must not be negative")
	}
	if !domain.ValidUnit(c.WeightUnit) {
		return fmt.Errorf("unknown weight unit %q", c.WeightUnit)
	}
	if _, ok := domain.ThemeByName(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	return nil
}
