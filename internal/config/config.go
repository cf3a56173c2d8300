package config

import (
	"flag"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	RunAddr     string `env:"RUN_ADDRESS"`
	DatabaseDSN string `env:"DATABASE_URI"`
	AuthSecret  string `env:"AUTH_SECRET"`
	AuthHash    string `env:"AUTH_HASH"` // "plain" | "bcrypt"

	// Shared settings
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`
	EnableHTTPS   bool   `env:"ENABLE_HTTPS"`

	// Session TTLs
	AdminSessionTTL time.Duration `env:"ADMIN_SESSION_TTL"`
	OwnerSessionTTL time.Duration `env:"OWNER_SESSION_TTL"`

	// Client-side settings
	ServerURL string `env:"SERVER_URL"`
	Version   bool   `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.RunAddr, "a", cfg.RunAddr, "адрес и порт сервера")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (путь к sqlite-файлу или postgres:// DSN)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи session-cookie")
	flag.StringVar(&cfg.AuthHash, "auth-hash", cfg.AuthHash, "схема сравнения паролей: plain или bcrypt")
	// Shared/client flags
	flag.StringVar(&cfg.PublicBaseURL, "public-base-url", cfg.PublicBaseURL, "базовый URL публичных карточек (цель QR-кода)")
	flag.StringVar(&cfg.ServerURL, "server-url", cfg.ServerURL, "URL API-сервера для kkcli")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	// Defaults
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = "kisibilgisi.db"
	}
	if cfg.AuthHash != "bcrypt" {
		cfg.AuthHash = "plain"
	}
	// validate RunAddr: must be in "address:port" form (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]*:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.RunAddr) {
		cfg.RunAddr = "localhost:8080"
	}

	if cfg.ServerURL == "" {
		if cfg.EnableHTTPS {
			cfg.ServerURL = "https://" + cfg.RunAddr
		} else {
			cfg.ServerURL = "http://" + cfg.RunAddr
		}
	}
	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = cfg.ServerURL
	}
	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")

	// admin-сессия живёт сутки, owner-сессия — 30 дней
	if cfg.AdminSessionTTL <= 0 {
		cfg.AdminSessionTTL = 24 * time.Hour
	}
	if cfg.OwnerSessionTTL <= 0 {
		cfg.OwnerSessionTTL = 30 * 24 * time.Hour
	}

	return cfg
}
