package logger

import (
	"io"
	"os"
	"strings"

	// Packages
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// New returns a logger which writes JSON lines at the level, or human-readable
// lines including debug messages in debug mode. Output goes to stderr when
// w is nil
func New(level string, debug bool, w io.Writer) *zap.Logger {
	if w == nil {
		w = os.Stderr
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if debug {
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(
		encoder,
		zapcore.Lock(zapcore.AddSync(w)),
		Level(level, debug),
	)

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

// Level returns the level for a name, which is info for unknown names and
// debug in debug mode
func Level(level string, debug bool) zapcore.Level {
	if debug {
		return zapcore.DebugLevel
	}
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
