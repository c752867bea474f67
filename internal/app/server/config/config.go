package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Env     string `env:"APP_ENV" envDefault:"local"`
	DB      DB
	Server  Server
	Storage Storage
	Logger  Logger
}

type DB struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH" envDefault:"migrations/postgres"`
}

type Server struct {
	RunAddress string `env:"RUN_ADDRESS" envDefault:"localhost:8080"`
	APIToken   string `env:"API_TOKEN"`
}

// Storage используется, когда DATABASE_URI не задан.
type Storage struct {
	DataPath       string `env:"DATA_PATH" envDefault:"accounts.db"`
	MasterPassword string `env:"MASTER_PASSWORD"`
	// MigratePlaintext разрешает прочитать незашифрованные данные при заданном MASTER_PASSWORD.
	MigratePlaintext bool `env:"MIGRATE_PLAINTEXT" envDefault:"false"`
}

type Logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// MustLoad загружает конфигурацию сервера и завершает процесс при ошибке.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Ошибка конфигурации: %v", err)
	}
	return cfg
}

func Load() (*Config, error) {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			log.Printf("Ошибка загрузки .env файла: %v", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("неизвестное окружение APP_ENV: %q", c.Env)
	}
	if c.Server.RunAddress == "" {
		return errors.New("run_address не может быть пустым")
	}
	if c.DB.DatabaseURI == "" && c.Storage.DataPath == "" {
		return errors.New("нужен DATABASE_URI или DATA_PATH")
	}
	return nil
}

// UsePostgres сообщает, что данные хранятся в PostgreSQL, а не в файле SQLite.
func (c *Config) UsePostgres() bool {
	return c.DB.DatabaseURI != ""
}
