package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opsi untuk logger.
type Config struct {
	Env   string // development -> console yang mudah dibaca; production -> JSON
	Level string // trace, debug, info, warn, error
}

// Logger pembungkus zerolog supaya mudah diinjeksi dan konsisten.
type Logger struct {
	zl zerolog.Logger
}

// New membuat logger terstruktur. Development memakai ConsoleWriter, selainnya JSON.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zl := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()

	// Arahkan juga logger global zerolog untuk library yang memakainya
	log.Logger = zl

	return &Logger{zl: zl}
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Debug..Fatal delegasi langsung ke zerolog.
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With membuat sublogger dengan field tetap.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog mengembalikan logger internal bila perlu API langsung.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
