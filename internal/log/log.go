// Package log provides the command line logger.
package log

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a "sugared" variant of the zap logger.
var Logger *zap.SugaredLogger

func init() {
	if err := SetGlobalLogger("info"); err != nil {
		panic(err)
	}
}

// SetGlobalLogger replaces Logger with one logging at verbosityLevel
// ("debug", "info", "warn", "error", ...) to stderr.
func SetGlobalLogger(verbosityLevel string) error {
	logLevel, err := zapcore.ParseLevel(verbosityLevel)
	if err != nil {
		return err
	}

	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	// ISO8601, UTC
	config.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.UTC().Format("2006-01-02T15:04:05Z0700"))
	}
	config.Level.SetLevel(logLevel)

	logger, err := config.Build()
	if err != nil {
		return err
	}
	Logger = logger.Sugar()

	return nil
}
