package logger

import (
	"io"
	"os"

	"golang.org/x/exp/slog"

	"postboard/internal/config"
)

// New создает логгер в зависимости от окружения:
// local - цветной вывод в консоль, dev - JSON с DEBUG, prod - JSON с INFO.
func New(env string) *slog.Logger {
	return newLogger(os.Stdout, env, nil)
}

// NewWithLevel создает логгер как New, но уровень берется из конфигурации,
// если его удается разобрать.
func NewWithLevel(env, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return New(env)
	}
	return newLogger(os.Stdout, env, &lvl)
}

func newLogger(w io.Writer, env string, level *slog.Level) *slog.Logger {
	pick := func(def slog.Level) slog.Level {
		if level != nil {
			return *level
		}
		return def
	}

	switch env {
	case config.EnvLocal, "":
		return slog.New(newPrettyHandler(w, &slog.HandlerOptions{Level: pick(slog.LevelDebug)}))
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: pick(slog.LevelDebug)}))
	default:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: pick(slog.LevelInfo)}))
	}
}

func setupPrettySlog() *slog.Logger {
	return slog.New(newPrettyHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Err оборачивает ошибку в атрибут для логов
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}
