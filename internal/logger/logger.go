package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/bagdasarian/tuesday/internal/config"
)

// New создает логгер для окружения env: local - человекочитаемый вывод и уровень trace,
// dev - JSON и debug, prod - JSON и info.
func New(env string, w io.Writer) (zerolog.Logger, error) {
	zerolog.TimestampFieldName = "timestamp"
	// Уровень задается на самом логгере, глобальный фильтр не должен его урезать
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	level := zerolog.InfoLevel
	switch env {
	case config.EnvLocal:
		level = zerolog.TraceLevel

		consoleWriter := zerolog.NewConsoleWriter()
		consoleWriter.TimeFormat = time.DateTime
		consoleWriter.Out = w
		consoleWriter.NoColor = w != os.Stdout
		w = consoleWriter
	case config.EnvDev:
		level = zerolog.DebugLevel
	case config.EnvProd:
		level = zerolog.InfoLevel
	default:
		return zerolog.Nop(), fmt.Errorf("unknown env: %s", env)
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Int("pid", os.Getpid()).
		Logger(), nil
}

func MustNew(env string) zerolog.Logger {
	log, err := New(env, os.Stdout)
	if err != nil {
		panic(err)
	}
	return log
}
