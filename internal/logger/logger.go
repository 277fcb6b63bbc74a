// Package logger builds the application's zap logger from configuration.
package logger

import (
	"go.uber.org/zap"

	"doccatalog/internal/config"
)

// New builds a zap logger. Format "json" selects the production encoder,
// anything else the human-readable development one.
func New(cfg config.LogConfig, service string) (*zap.Logger, error) {
	var zapConfig zap.Config

	if cfg.Format == "json" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zapConfig.Level = level
	zapConfig.EncoderConfig.TimeKey = "ts"

	zapConfig.InitialFields = map[string]interface{}{
		"service": service,
	}

	return zapConfig.Build()
}
