package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultServerAddr = ":8080"
	envPrefix         = "LOCKER"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Locker    LockerConfig    `mapstructure:"locker"`
	Assets    AssetsConfig    `mapstructure:"assets"`
	Site      SiteConfig      `mapstructure:"site"`
	Templates TemplatesConfig `mapstructure:"templates"`
	Log       LogConfig       `mapstructure:"log"`
	Dev       bool            `mapstructure:"dev"`

	// File is the config file that was read, empty when none was found
	File string `mapstructure:"-"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// LockerConfig locates the portfolio document
type LockerConfig struct {
	Path  string `mapstructure:"path"`
	Watch bool   `mapstructure:"watch"`
}

// AssetsConfig maps a directory of models and images onto a URL prefix
type AssetsConfig struct {
	Dir    string `mapstructure:"dir"`
	Prefix string `mapstructure:"prefix"`
}

// SiteConfig holds page chrome text
type SiteConfig struct {
	Title  string `mapstructure:"title"`
	Kicker string `mapstructure:"kicker"`
}

// TemplatesConfig optionally overrides the embedded templates with a directory on disk
type TemplatesConfig struct {
	Dir string `mapstructure:"dir"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from defaults, an optional config file and the environment.
// cfgFile may be empty, in which case ./config.yaml is used when present.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", defaultServerAddr)
	v.SetDefault("locker.path", "your_projects/locker.json")
	v.SetDefault("locker.watch", false)
	v.SetDefault("assets.dir", "your_projects")
	v.SetDefault("assets.prefix", "/your_projects")
	v.SetDefault("site.title", "Lance Locker • Portfolio")
	v.SetDefault("site.kicker", "Lance Locker")
	v.SetDefault("templates.dir", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("dev", false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("server.addr", envPrefix+"_SERVER_ADDR", "SERVER_ADDR"); err != nil {
		return nil, fmt.Errorf("failed to bind server address env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	// Cloud Run style PORT applies only when no address was configured.
	if cfg.Server.Addr == defaultServerAddr {
		if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
			cfg.Server.Addr = ":" + port
		}
	}
	cfg.Assets.Prefix = "/" + strings.Trim(cfg.Assets.Prefix, "/")

	return &cfg, nil
}
