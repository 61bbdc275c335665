package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

type Server struct {
	Host  string `toml:"host"`
	Port  int    `toml:"port"`
	Debug bool   `toml:"debug_mode"`
}

type Storage struct {
	Driver     string `toml:"driver"` // sqlite, memory or file
	SqliteFile string `toml:"sqlite_file"`
	FilePath   string `toml:"file_path"`
}

type Stripe struct {
	SecretKey      string `toml:"secret_key"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type Subscriptions struct {
	SeasonEnd       string `toml:"season_end"` // YYYY-MM-DD
	FallbackWinRate string `toml:"fallback_win_rate"`
}

type Auth struct {
	AdminPassword string `toml:"admin_password"`
	Token         string `toml:"token"`
	Expiration    string `toml:"expiration"`
}

type Mail struct {
	Enabled    bool     `toml:"enabled"`
	PublicKey  string   `toml:"public_key"`
	PrivateKey string   `toml:"private_key"`
	Sender     string   `toml:"sender"`
	Recipients []string `toml:"recipients"`
}

type TgBot struct {
	Enabled  bool   `toml:"enabled"`
	ApiToken string `toml:"api_token"`
}

type Config struct {
	Server        Server        `toml:"server"`
	Storage       Storage       `toml:"storage"`
	Stripe        Stripe        `toml:"stripe"`
	Subscriptions Subscriptions `toml:"subscriptions"`
	Auth          Auth          `toml:"auth"`
	Mail          Mail          `toml:"mail"`
	TgBot         TgBot         `toml:"tg_bot"`
}

func New() (Config, error) {
	path := os.Getenv("PICKSSERVER_CONFIG")
	if path == "" {
		path = "configs/server.toml"
	}
	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}

	// Secrets come from the environment when set.
	if v := os.Getenv("STRIPE_SECRET_KEY"); v != "" {
		cfg.Stripe.SecretKey = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		cfg.Auth.AdminPassword = v
	}
	if v := os.Getenv("AUTH_TOKEN_SECRET"); v != "" {
		cfg.Auth.Token = v
	}
	if v := os.Getenv("TELEGRAM_APITOKEN"); v != "" {
		cfg.TgBot.ApiToken = v
	}
	if v := os.Getenv("MAILJET_PUBLIC_KEY"); v != "" {
		cfg.Mail.PublicKey = v
	}
	if v := os.Getenv("MAILJET_PRIVATE_KEY"); v != "" {
		cfg.Mail.PrivateKey = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("PORT: %w", err)
		}
		cfg.Server.Port = port
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 3000
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = "sqlite"
	}
	if c.Storage.SqliteFile == "" {
		c.Storage.SqliteFile = "picks.sqlite"
	}
	if c.Storage.FilePath == "" {
		c.Storage.FilePath = "data/ledger.json"
	}
	if c.Stripe.TimeoutSeconds == 0 {
		c.Stripe.TimeoutSeconds = 10
	}
	if c.Subscriptions.SeasonEnd == "" {
		c.Subscriptions.SeasonEnd = "2026-02-15"
	}
	if c.Subscriptions.FallbackWinRate == "" {
		c.Subscriptions.FallbackWinRate = "61%"
	}
	if c.Auth.Expiration == "" {
		c.Auth.Expiration = "24h"
	}
}

// SeasonEndTime parses the configured end-of-season date.
func (s Subscriptions) SeasonEndTime() (time.Time, error) {
	t, err := time.Parse("2006-01-02", s.SeasonEnd)
	if err != nil {
		return time.Time{}, fmt.Errorf("season_end: %w", err)
	}
	return t, nil
}
