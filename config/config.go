package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Env               string        `env:"ENV"`
	LogLevel          string        `env:"LOG_LEVEL"`
	SessionExpiration time.Duration `env:"SESSION_EXPIRATION"`
	Store             Store
	Telegram          Telegram
	Redis             Redis
	Mail              Mail
}

type Store struct {
	Url     string        `env:"STORE_URL"`
	Timeout time.Duration `env:"STORE_TIMEOUT"`
}

type Telegram struct {
	Token      string `env:"TELEGRAM_TOKEN"`
	UpdTimeout int    `env:"TELEGRAM_UPD_TIMEOUT"`
}

type Redis struct {
	Host     string `env:"REDIS_HOST"`
	Port     int    `env:"REDIS_PORT"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB"`
}

type Mail struct {
	Enabled  bool   `env:"MAIL_ENABLED"`
	Host     string `env:"MAIL_HOST"`
	Port     int    `env:"MAIL_PORT"`
	Address  string `env:"MAIL_ADDRESS"`
	Password string `env:"MAIL_PASSWORD"`
}

func MustLoad() *Config {
	_ = godotenv.Load(".env")

	cfg := &Config{}

	opts := env.Options{RequiredIfNoDef: true}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		log.Fatalf("parse config error: %s", err)
	}

	return cfg
}
