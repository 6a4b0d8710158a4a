package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvPrefix      = "HYPERSOMNIA"
	DefaultDBName  = "HypersomniaDB.db"
	defaultDataDir = "StreamingAssets"
)

type Config struct {
	Environment   string        `mapstructure:"environment"`
	LogLevel      string        `mapstructure:"log_level"`
	DataDir       string        `mapstructure:"data_dir"`
	DBPath        string        `mapstructure:"db_path"`
	SelectionPath string        `mapstructure:"selection_path"`
	CatalogPath   string        `mapstructure:"catalog_path"`
	BusyTimeout   time.Duration `mapstructure:"busy_timeout"`
}

// Load reads configuration from defaults, an optional YAML file and
// HYPERSOMNIA_* environment variables, in increasing precedence.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("data_dir", defaultDataDir)
	v.SetDefault("db_path", "")
	v.SetDefault("selection_path", "")
	v.SetDefault("catalog_path", "")
	v.SetDefault("busy_timeout", 5*time.Second)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.applyDerived()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// New builds a configuration rooted at dataDir with defaults for everything else.
func New(dataDir string) (Config, error) {
	cfg := Config{
		Environment: "development",
		LogLevel:    "info",
		DataDir:     dataDir,
		BusyTimeout: 5 * time.Second,
	}
	cfg.applyDerived()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDerived() {
	c.DataDir = strings.TrimSpace(c.DataDir)
	if strings.TrimSpace(c.DBPath) == "" && c.DataDir != "" {
		c.DBPath = filepath.Join(c.DataDir, DefaultDBName)
	}
	if strings.TrimSpace(c.SelectionPath) == "" && c.DBPath != "" {
		c.SelectionPath = filepath.Join(filepath.Dir(c.DBPath), "current-player.json")
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return errors.New("data_dir is required")
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return errors.New("db_path is required")
	}
	if c.BusyTimeout <= 0 {
		return errors.New("busy_timeout must be positive")
	}
	return nil
}

// Resolve fills derived paths after callers override fields and validates
// the result.
func Resolve(cfg Config) (Config, error) {
	cfg.applyDerived()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
