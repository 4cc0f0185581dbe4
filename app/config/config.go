package config

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log      Log      `yaml:"log"`
	Telegram Telegram `yaml:"telegram"`
	DeepSeek DeepSeek `yaml:"deepseek"`
	Session  Session  `yaml:"session"`
	Server   Server   `yaml:"server"`
}

type Telegram struct {
	// Chat bot token, obtain it via BotFather
	Token string `yaml:"token" example:"1234567890:ABCdefGHIjklMNopQRstUVwxyZ-123456789" validate:"required"`
}

type DeepSeek struct {
	// OpenAI-compatible base url
	BaseURL string `yaml:"base_url" example:"https://api.deepseek.com/v1"`
	// API token; when empty the bot runs with analysis degraded
	Token string `yaml:"token" example:"sk-abc123456789DEF789ghi012JKL345mno678PQR901stu234VWX"`
	// Model name
	Model string `yaml:"model" example:"deepseek-chat"`
}

type Session struct {
	// Sessions inactive longer than this are evicted
	TTL time.Duration `yaml:"ttl" example:"2h"`
	// How often the reaper sweeps the store
	ReapInterval time.Duration `yaml:"reap_interval" example:"10m"`
}

type Server struct {
	// Health endpoint listen address
	Address string `yaml:"address" example:":8080"`
}

type Log struct {
	// Telegram logging config
	Telegram TelegramLog `yaml:"telegram"`
}

type TelegramLog struct {
	// Chat bot token, obtain it via BotFather
	Token string `yaml:"token" example:"1234567890:ABCdefGHIjklMNopQRstUVwxyZ-123456789"`
	// Chat ID to send messages to
	ChatID string `yaml:"chat_id" example:"1001234567890"`
}

func Load() (*Config, error) {
	var result Config

	data, err := os.ReadFile("config.yaml")
	if err != nil {
		return nil, oops.Errorf("failed to read config file: %w", err)
	}

	if err = yaml.Unmarshal(data, &result); err != nil {
		return nil, oops.Errorf("failed to parse YAML config: %w", err)
	}

	if result.DeepSeek.BaseURL == "" {
		result.DeepSeek.BaseURL = "https://api.deepseek.com/v1"
	}
	if result.DeepSeek.Model == "" {
		result.DeepSeek.Model = "deepseek-chat"
	}
	if result.Session.TTL == 0 {
		result.Session.TTL = 2 * time.Hour
	}
	if result.Session.ReapInterval == 0 {
		result.Session.ReapInterval = 10 * time.Minute
	}
	if result.Server.Address == "" {
		result.Server.Address = ":8080"
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(result); err != nil {
		return nil, oops.Errorf("failed to validate config: %w", err)
	}

	return &result, nil
}
