package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// ConfigPathEnv names an optional YAML file read before the environment.
const ConfigPathEnv = "CHECKERS_CONFIG"

type Config struct {
	HTTPAddr        string        `mapstructure:"HTTP_ADDR"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	GinMode         string        `mapstructure:"GIN_MODE"`
	CORSAllowAll    bool          `mapstructure:"CORS_ALLOW_ALL"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
	WS              WebSocket     `mapstructure:",squash"`
}

type WebSocket struct {
	WriteTimeout    time.Duration `mapstructure:"WS_WRITE_TIMEOUT"`
	PongTimeout     time.Duration `mapstructure:"WS_PONG_TIMEOUT"`
	MaxMessageBytes int64         `mapstructure:"WS_MAX_MESSAGE_BYTES"`
	SendBuffer      int           `mapstructure:"WS_SEND_BUFFER"`
}

// PingPeriod must stay below PongTimeout so a healthy peer always answers
// before its read deadline.
func (w WebSocket) PingPeriod() time.Duration {
	return w.PongTimeout * 9 / 10
}

var defaults = map[string]any{
	"HTTP_ADDR":            ":8000",
	"LOG_LEVEL":            "info",
	"GIN_MODE":             "release",
	"CORS_ALLOW_ALL":       true,
	"SHUTDOWN_TIMEOUT":     "5s",
	"WS_WRITE_TIMEOUT":     "10s",
	"WS_PONG_TIMEOUT":      "60s",
	"WS_MAX_MESSAGE_BYTES": 4096,
	"WS_SEND_BUFFER":       16,
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	cfg, err := load(viper.New())
	if err != nil {
		panic(fmt.Errorf("default config: %w", err))
	}
	return cfg
}

// Load reads defaults, then the file named by CHECKERS_CONFIG if set, then
// environment variables.
func Load() (Config, error) {
	v := viper.New()

	if path := os.Getenv(ConfigPathEnv); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.AutomaticEnv()

	return load(v)
}

func load(v *viper.Viper) (Config, error) {
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.HTTPAddr == "":
		return errors.New("HTTP_ADDR must not be empty")
	case c.WS.PongTimeout <= 0:
		return errors.New("WS_PONG_TIMEOUT must be positive")
	case c.WS.WriteTimeout <= 0:
		return errors.New("WS_WRITE_TIMEOUT must be positive")
	case c.WS.MaxMessageBytes <= 0:
		return errors.New("WS_MAX_MESSAGE_BYTES must be positive")
	case c.WS.SendBuffer <= 0:
		return errors.New("WS_SEND_BUFFER must be positive")
	}
	return nil
}
