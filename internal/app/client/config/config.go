package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultLogLevel   = "warn"
	defaultEnv        = "prod"
	defaultConfigDir  = ".accountkeeper"
	defaultDataFile   = "accounts.db"
	defaultConfigName = "config"
)

type Config struct {
	Env            string `mapstructure:"app_env"`
	LogLevel       string `mapstructure:"log_level"`
	ConfigDir      string `mapstructure:"config_dir"`
	DataPath       string `mapstructure:"data_path"`
	MasterPassword string `mapstructure:"master_password"`
	InMemory       bool   `mapstructure:"in_memory"`
	// MigratePlaintext разрешает один раз прочитать незашифрованный файл
	// при заданном MASTER_PASSWORD.
	MigratePlaintext bool `mapstructure:"migrate_plaintext"`
}

// Load читает .env, переменные окружения и необязательный yaml файл
// (cfgFile или config.yaml в каталоге конфигурации).
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	// Определяем путь к .env файлу (относительно места запуска)
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Fprintf(os.Stderr, "Ошибка загрузки .env файла: %v\n", err)
		}
	}

	v.AutomaticEnv()

	v.SetDefault("APP_ENV", defaultEnv)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.SetDefault("CONFIG_DIR", defaultConfigDir)
	v.SetDefault("IN_MEMORY", false)
	v.SetDefault("MIGRATE_PLAINTEXT", false)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := v.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(configDir)
		v.SetConfigName(defaultConfigName)
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	dataPath := v.GetString("DATA_PATH")
	if dataPath == "" {
		dataPath = filepath.Join(configDir, defaultDataFile)
	}

	cfg := &Config{
		Env:            v.GetString("APP_ENV"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		ConfigDir:      configDir,
		DataPath:       dataPath,
		MasterPassword: v.GetString("MASTER_PASSWORD"),
		InMemory:       v.GetBool("IN_MEMORY"),

		MigratePlaintext: v.GetBool("MIGRATE_PLAINTEXT"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Env {
	case "local", "dev", "prod":
	default:
		return fmt.Errorf("неизвестное окружение APP_ENV: %q", c.Env)
	}
	if !c.InMemory && c.DataPath == "" {
		return errors.New("data_path не может быть пустым")
	}
	return nil
}

// EnsureDirs создает каталог для файла данных.
func (c *Config) EnsureDirs() error {
	if c.InMemory {
		return nil
	}
	return os.MkdirAll(filepath.Dir(c.DataPath), 0700)
}

// Encrypted сообщает, нужно ли шифровать хранилище мастер-паролем.
func (c *Config) Encrypted() bool {
	return c.MasterPassword != ""
}
