// Package config loads shell settings from defaults, an optional
// .mdnotes.yaml file and MDNOTES_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"mdnotes/internal/logger"
)

const (
	EnvPrefix       = "MDNOTES"
	ConfigName      = ".mdnotes"
	ConfigPathEnv   = "MDNOTES_CONFIG_PATH"
	MinWindowWidth  = 480
	MinWindowHeight = 320
)

type Window struct {
	Width  float32
	Height float32
}

type Config struct {
	AppID        string
	LogLevel     string
	LogFormat    string
	SignalBuffer int
	Window       Window
}

// NewViper returns a viper instance with defaults and environment binding.
// Keys use dots; MDNOTES_WINDOW_WIDTH sets window.width.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("app_id", "dev.mdnotes.shell")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("signal_buffer", 64)
	v.SetDefault("window.width", 1024)
	v.SetDefault("window.height", 768)

	v.SetConfigName(ConfigName) // .yaml is implicit
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file, if any, and validates the result. dir is
// searched before MDNOTES_CONFIG_PATH and the working directory; "~" is
// expanded in both.
func Load(v *viper.Viper, dir string) (*Config, error) {
	for _, d := range []string{dir, os.Getenv(ConfigPathEnv)} {
		if d == "" {
			continue
		}
		expanded, err := homedir.Expand(d)
		if err != nil {
			return nil, fmt.Errorf("expand config path %q: %w", d, err)
		}
		v.AddConfigPath(expanded)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		AppID:        v.GetString("app_id"),
		LogLevel:     v.GetString("log_level"),
		LogFormat:    v.GetString("log_format"),
		SignalBuffer: v.GetInt("signal_buffer"),
		Window: Window{
			Width:  float32(v.GetFloat64("window.width")),
			Height: float32(v.GetFloat64("window.height")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.AppID) == "" {
		return fmt.Errorf("config: app_id must not be empty")
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := logger.ParseFormat(c.LogFormat); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.SignalBuffer < 1 {
		return fmt.Errorf("config: signal_buffer must be positive, got %d", c.SignalBuffer)
	}
	if c.Window.Width < MinWindowWidth || c.Window.Height < MinWindowHeight {
		return fmt.Errorf("config: window must be at least %dx%d, got %.0fx%.0f",
			MinWindowWidth, MinWindowHeight, c.Window.Width, c.Window.Height)
	}
	return nil
}

// Logger builds the logger described by the config. Validate has run.
func (c *Config) Logger() logger.Logger {
	level, _ := logger.ParseLevel(c.LogLevel)
	format, _ := logger.ParseFormat(c.LogFormat)
	return logger.New(format, level)
}
