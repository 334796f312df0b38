// Package logx builds the zap logger used by the driver and the CLI.
// Nothing below internal/driver logs; the checker reports through errors.
package logx

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Уровни подробности по числу флагов -v.
const (
	VerbosityUser  = 0 // только предупреждения и ошибки
	VerbosityInfo  = 1 // -v: + запуск, итоги, попадания в кэш
	VerbosityDebug = 2 // -vv: + каждый модуль, тайминги
)

// VerbosityToLevel maps the -v count to a zap level.
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= VerbosityUser:
		return zapcore.WarnLevel
	case verbosity == VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

type Options struct {
	Verbosity int
	// JSON selects the production JSON encoder instead of the console one.
	JSON bool
	// Output defaults to stderr so that diagnostics on stdout stay parseable.
	Output io.Writer
}

// New builds a sugared logger.
func New(opts Options) *zap.SugaredLogger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	var enc zapcore.Encoder
	if opts.JSON {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(cfg)
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		enc = zapcore.NewConsoleEncoder(cfg)
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(out), VerbosityToLevel(opts.Verbosity))
	return zap.New(core).Named("docstyle").Sugar()
}

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
