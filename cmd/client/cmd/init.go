// cmd/client/cmd/init.go
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"accountkeeper/cmd/client/cmd/account"
	domain "accountkeeper/internal/domain/account"
)

var force bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Инициализировать клиент AccountKeeper",
	Long: `Команда init выполняет первоначальную настройку клиента:
	1. Создает каталог ~/.accountkeeper и файл config.yaml
	2. Создает файл данных и применяет миграции

Мастер-пароль не сохраняется в config.yaml, задайте его через MASTER_PASSWORD.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := filepath.Join(cfg.ConfigDir, "config.yaml")
		if _, err := os.Stat(path); err == nil && !force {
			fmt.Fprintf(cmd.OutOrStdout(), "Конфигурация уже существует: %s\n", path)
		} else {
			if err := writeConfigFile(path); err != nil {
				return fmt.Errorf("ошибка записи конфигурации: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Создан файл конфигурации: %s\n", path)
		}

		accounts, err := app.ListAccounts(cmd.Context(), domain.Filter{})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Файл данных: %s\n", cfg.DataPath)
		if cfg.Encrypted() {
			fmt.Fprintln(cmd.OutOrStdout(), "Шифрование: включено")
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Готово, учетных записей: %d\n", len(accounts))
		return nil
	},
}

type fileConfig struct {
	AppEnv   string `yaml:"app_env"`
	LogLevel string `yaml:"log_level"`
	DataPath string `yaml:"data_path"`
}

func writeConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	out, err := yaml.Marshal(fileConfig{
		AppEnv:   cfg.Env,
		LogLevel: cfg.LogLevel,
		DataPath: cfg.DataPath,
	})
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0600)
}

func init() {
	initCmd.Flags().BoolVar(&force, "force", false, "перезаписать существующий config.yaml")
	rootCmd.AddCommand(initCmd)

	rootCmd.AddCommand(account.AccountCmd)
	account.AccountCmd.AddCommand(account.AddCmd)
	account.AccountCmd.AddCommand(account.UpdateCmd)
	account.AccountCmd.AddCommand(account.RemoveCmd)
	account.AccountCmd.AddCommand(account.ListCmd)
	account.AccountCmd.AddCommand(account.GetCmd)
	account.AccountCmd.AddCommand(account.ValidateCmd)
}
