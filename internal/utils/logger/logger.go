package logger

import (
	"io"
	"os"

	"golang.org/x/exp/slog"
	"usercrud/internal/app/server/config"
)

// New создает логгер под окружение: local - цветной вывод, dev/prod - JSON
func New(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvLocal, "":
		log = setupPrettySlog()
	case config.EnvDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}

// NewWithLevel - как New, но уровень берется из LOG_LEVEL, если он задан
func NewWithLevel(env, level string) *slog.Logger {
	if level == "" {
		return New(env)
	}
	return NewWithWriter(env, level, os.Stdout)
}

// NewWithWriter пишет в out. Клиент использует stderr, чтобы не смешивать
// логи с выводом команд.
func NewWithWriter(env, level string, out io.Writer) *slog.Logger {
	lvl := slog.LevelInfo
	if env == config.EnvLocal || env == config.EnvDev || env == "" {
		lvl = slog.LevelDebug
	}
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			lvl = slog.LevelInfo
		}
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if env == config.EnvLocal || env == "" {
		return slog.New(PrettyHandlerOptions{SlogOpts: opts}.NewPrettyHandler(out))
	}
	return slog.New(slog.NewJSONHandler(out, opts))
}

func setupPrettySlog() *slog.Logger {
	opts := PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	return slog.New(opts.NewPrettyHandler(os.Stdout))
}
