package logger

import (
	"fmt"
	"os"

	"hustlex/internal/config"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production JSON logger on stdout.
// When a log file is configured, output is also written to a rotating file.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	sink := zapcore.Lock(os.Stdout)
	if cfg.File != "" {
		sink = zapcore.NewMultiWriteSyncer(sink, zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    50,
			MaxBackups: 3,
			MaxAge:     30,
		}))
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), sink, level)
	return zap.New(core, zap.AddCaller()), nil
}
