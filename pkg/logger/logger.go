package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config ロガーの設定。
type Config struct {
	Env   string // development なら読みやすいコンソール出力、production ならJSON
	Level string // trace, debug, info, warn, error
}

// Logger 注入しやすいよう zerolog を薄く包んだラッパー。
type Logger struct {
	zl zerolog.Logger
}

// New は構造化ロガーを作ります。development では色付きコンソール、それ以外はJSON。
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	level := parseLevel(cfg.Level)
	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()

	// zerolog のグローバルロガーも差し替える（直接 log を使うライブラリ向け）
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

// Trace, Debug, Info, Warn, Error は zerolog へ委譲。
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With は固定フィールド付きのサブロガー用コンテキストを返します。
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog は内部のロガーをそのまま返します。生のAPIが必要なとき用。
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
