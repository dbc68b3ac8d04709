package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/BruksfildServices01/customer-crm/internal/config"
)

// New builds the process logger. Development mode uses the human-readable
// console encoder; everything else defaults to JSON.
func New(cfg config.LoggerConfig) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	if cfg.Encoding != "" {
		zcfg.Encoding = cfg.Encoding
	}
	zcfg.DisableCaller = cfg.DisableCaller
	zcfg.DisableStacktrace = cfg.DisableStacktrace

	return zcfg.Build()
}
