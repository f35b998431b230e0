package logger

import (
	"fmt"
	"log/slog"
	"os"
)

// Logger описывает минимальный интерфейс логирования приложения.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(err error, format string, args ...any)
}

type slogLogger struct {
	log *slog.Logger
}

// NewSlogLogger создает логгер поверх log/slog с выводом в stdout.
func NewSlogLogger() Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	return &slogLogger{log: slog.New(handler)}
}

func (s *slogLogger) Debugf(format string, args ...any) {
	s.log.Debug(fmt.Sprintf(format, args...))
}

func (s *slogLogger) Infof(format string, args ...any) {
	s.log.Info(fmt.Sprintf(format, args...))
}

func (s *slogLogger) Warnf(format string, args ...any) {
	s.log.Warn(fmt.Sprintf(format, args...))
}

func (s *slogLogger) Errorf(err error, format string, args ...any) {
	s.log.Error(fmt.Sprintf(format, args...), slog.Any("error", err))
}
