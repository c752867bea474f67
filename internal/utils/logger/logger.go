package logger

import (
	"io"
	"os"
	"strings"

	"golang.org/x/exp/slog"

	"accountkeeper/internal/app/server/config"
	"accountkeeper/internal/utils/logger/slogpretty"
)

// New создает логгер под окружение: local - цветной вывод, dev - JSON с DEBUG,
// prod и все остальное - JSON с INFO.
func New(env string) *slog.Logger {
	return NewWriter(os.Stdout, env, "")
}

// NewWriter пишет в out. Непустой level (debug, info, warn, error)
// переопределяет уровень окружения.
func NewWriter(out io.Writer, env, level string) *slog.Logger {
	var lvl slog.Level
	switch env {
	case config.EnvLocal, config.EnvDev:
		lvl = slog.LevelDebug
	default:
		lvl = slog.LevelInfo
	}
	if level != "" {
		lvl = ParseLevel(level, lvl)
	}

	if env == config.EnvLocal {
		return setupPrettySlog(out, lvl)
	}
	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: lvl}))
}

// ParseLevel разбирает имя уровня, для неизвестных имен возвращает fallback.
func ParseLevel(level string, fallback slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return fallback
}

func setupPrettySlog(out io.Writer, level slog.Level) *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: level,
		},
	}

	return slog.New(opts.NewPrettyHandler(out))
}

// Err - атрибут для ошибки.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}
