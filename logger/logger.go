// Package logger provides structured, optionally-rotated logging for
// mp4dump's parse tracing (parse start, track count, parse failure; the
// parser itself logs no per-box events). It wraps zap the same way the
// rest of the stack's tooling does, rather than writing trace lines with
// log or fmt.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Level mirrors zapcore.Level without exposing the zap import to callers
// that only want to set a log level from a flag or config file.
type Level int8

const (
	LevelDebug Level = iota - 1
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Options configures New. Filename left empty disables file rotation and
// logs to stdout only.
type Options struct {
	Stdout     bool   `config:"stdout"`
	Level      Level  `config:"level"`
	Filename   string `config:"filename"`
	MaxSizeMB  int    `config:"max_size_mb"`
	MaxAgeDays int    `config:"max_age_days"`
	MaxBackups int    `config:"max_backups"`
}

// Logger is a thin sugared wrapper around *zap.Logger.
type Logger struct {
	sugared *zap.SugaredLogger
}

// New builds a Logger from opt. With Filename set, output is rotated via
// lumberjack; Stdout additionally tees to the console.
func New(opt Options) *Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var cores []zapcore.Core
	level := zap.NewAtomicLevelAt(opt.Level.zapLevel())

	if opt.Filename != "" {
		rotator := &lumberjack.Logger{
			Filename:   opt.Filename,
			MaxSize:    orDefault(opt.MaxSizeMB, 100),
			MaxAge:     orDefault(opt.MaxAgeDays, 28),
			MaxBackups: orDefault(opt.MaxBackups, 3),
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.AddSync(rotator),
			level,
		))
	}
	if opt.Stdout || opt.Filename == "" {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderCfg),
			zapcore.Lock(zapcore.AddSync(os.Stdout)),
			level,
		))
	}

	core := zapcore.NewTee(cores...)
	return &Logger{sugared: zap.New(core).Sugar()}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func (l *Logger) Debugf(template string, args ...any) { l.sugared.Debugf(template, args...) }
func (l *Logger) Infof(template string, args ...any)  { l.sugared.Infof(template, args...) }
func (l *Logger) Warnf(template string, args ...any)  { l.sugared.Warnf(template, args...) }
func (l *Logger) Errorf(template string, args ...any) { l.sugared.Errorf(template, args...) }

// Sync flushes any buffered log entries, and should be called before the
// process exits.
func (l *Logger) Sync() error { return l.sugared.Sync() }
