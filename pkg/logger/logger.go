// Package logger provides the process-wide structured logger.
package logger

import (
	"sync"

	"github.com/facilityinv/catalogue-api/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Log *zap.Logger
var m sync.Mutex

// InitLogger builds the process-wide zap logger at the configured level.
func InitLogger(logDriver string) {
	m.Lock()
	defer m.Unlock()

	Log = newZapLogger()

	if Log != nil {
		Log.Info("Logger initialized successfully",
			zap.String("driver", logDriver),
			zap.String("level", config.GetConfig().Log.Level),
		)
	}
}

func newZapLogger() *zap.Logger {
	level := zapcore.InfoLevel
	if cfg := config.GetConfig(); cfg != nil {
		if err := level.Set(cfg.Log.Level); err != nil {
			level = zapcore.InfoLevel
		}
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.EncoderConfig.TimeKey = "timestamp"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := zapCfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
