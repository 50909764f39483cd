package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultAPIEndpoint is the Telegram Bot API endpoint format: bot token, then method.
const DefaultAPIEndpoint = "https://api.telegram.org/bot%s/%s"

// ProxyConfig configures the messaging proxy.
type ProxyConfig struct {
	Port            int           `yaml:"port" env:"TICTACCUBE_PORT" env-default:"8080"`
	AllowOrigin     string        `yaml:"allow-origin" env:"TICTACCUBE_ALLOW_ORIGIN" env-default:"*"`
	BotToken        string        `yaml:"bot-token" env:"TICTACCUBE_BOT_TOKEN"`
	APIEndpoint     string        `yaml:"api-endpoint" env:"TICTACCUBE_API_ENDPOINT" env-default:"https://api.telegram.org/bot%s/%s"`
	LogLevel        string        `yaml:"log-level" env:"TICTACCUBE_LOG_LEVEL" env-default:"info"`
	ShutdownTimeout time.Duration `yaml:"shutdown-timeout" env:"TICTACCUBE_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LoadProxyConfig reads the YAML file at path, if any, then the environment.
// Environment variables override the file.
func LoadProxyConfig(path string) (*ProxyConfig, error) {
	cfg := &ProxyConfig{}
	if path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %v", path, err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *ProxyConfig) Validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("bot token is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}
