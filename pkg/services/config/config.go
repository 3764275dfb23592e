// Package config loads the application settings for the web server and CLI.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Server struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type Store struct {
	Path string `mapstructure:"path"`
}

type Upload struct {
	Bucket string `mapstructure:"bucket"`
	Region string `mapstructure:"region"`
	Prefix string `mapstructure:"prefix"`
}

type Charts struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

type Config struct {
	Server Server `mapstructure:"server"`
	Locale string `mapstructure:"locale"`
	Store  Store  `mapstructure:"store"`
	Upload Upload `mapstructure:"upload"`
	Charts Charts `mapstructure:"charts"`
}

// LoadConfig reads settings from the given file, if any, with LINCE_*
// environment variables taking precedence. Every field has a default, so
// an empty path yields a runnable local configuration.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("locale", "pt-BR")
	v.SetDefault("store.path", "lince-report.db")
	v.SetDefault("charts.timeout", 30*time.Second)

	v.SetEnvPrefix("LINCE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
