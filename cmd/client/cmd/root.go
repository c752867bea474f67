// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"accountkeeper/internal/app/client"
	"accountkeeper/internal/app/client/config"
	"accountkeeper/internal/utils/logger"
)

var (
	cfgFile  string
	cfg      *config.Config
	log      *slog.Logger
	app      *client.App
	debug    bool
	dataPath string
)

var rootCmd = &cobra.Command{
	Use:   "accountkeeper",
	Short: "AccountKeeper - менеджер списка учетных записей",
	Long: `AccountKeeper хранит список учетных записей (логин, пароль, тип, метки)
в локальном файле SQLite.

Пара логин + тип уникальна. Для локальных записей пароль обязателен,
для LDAP пароль не хранится. Если задан MASTER_PASSWORD, файл шифруется.`,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: closeApp,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(viper.GetViper(), cfgFile)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Переопределяем настройки из флагов командной строки
	if dataPath != "" {
		cfg.DataPath = dataPath
	}
	level := cfg.LogLevel
	if debug {
		level = "debug"
	}

	log = logger.NewWriter(os.Stderr, cfg.Env, level)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	app, err = client.New(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	cmd.SetContext(client.WithApp(ctx, app))
	return nil
}

func closeApp(_ *cobra.Command, _ []string) error {
	if app == nil {
		return nil
	}
	return app.Close()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл (по умолчанию ~/.accountkeeper/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "путь к файлу данных")

	// Команды добавляются в init.go
}
