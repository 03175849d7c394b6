package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger = zap.NewNop()

// Init builds the global logger: JSON in production, colored console
// otherwise. The instance also replaces zap's globals.
func Init(level, env string) error {
	var lvl zapcore.Level
	switch level {
	case "debug":
		lvl = zapcore.DebugLevel
	case "info":
		lvl = zapcore.InfoLevel
	case "warn":
		lvl = zapcore.WarnLevel
	case "error":
		lvl = zapcore.ErrorLevel
	default:
		lvl = zapcore.InfoLevel
	}

	var err error
	if env == "production" {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(lvl)
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		log, err = cfg.Build(zap.Fields(
			zap.String("service", "saloniumpro"),
		))
	} else {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(lvl)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		log, err = cfg.Build()
	}
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(log)
	return nil
}

func Get() *zap.Logger {
	return log
}

func Sync() {
	_ = log.Sync()
}
