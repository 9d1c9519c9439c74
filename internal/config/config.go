package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	RunAddress string `env:"RUN_ADDRESS"`
	AuthSecret string `env:"AUTH_SECRET"`

	// Shared settings
	DatabasePath string `env:"ARSIPKU_DB_PATH"`

	// Client-side settings
	DownloadDir string `env:"ARSIPKU_DOWNLOAD_DIR"`
	Version     bool   `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags apply only when the env variables are not set
	flag.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "address the HTTP API listens on (host:port)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "secret used to sign auth cookies")
	flag.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "path to the archive database file")
	flag.StringVar(&cfg.DownloadDir, "download-dir", cfg.DownloadDir, "directory downloads are written to")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	// Defaults
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	// RunAddress must be "address:port" (no scheme, no path); otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.RunAddress) {
		cfg.RunAddress = "localhost:8080"
	}

	if cfg.DatabasePath == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			cfg.DatabasePath = filepath.Join(dir, "ArsipKu", "arsip.db")
		} else {
			cfg.DatabasePath = "arsip.db"
		}
	}
	if cfg.DownloadDir == "" {
		cfg.DownloadDir = "."
	}

	return cfg
}
