// Package log installs the process-wide zap logger.
package log

import (
	"github.com/kiltia/genescan/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Init builds the global logger from the configuration. Everything else in
// the program logs through [zap.S].
func Init(cfg config.LogConfig) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	conf := zap.NewDevelopmentConfig()
	conf.Level = zap.NewAtomicLevelAt(level)
	if cfg.Encoding != "" {
		conf.Encoding = cfg.Encoding
	}
	zap.ReplaceGlobals(zap.Must(conf.Build()))
}
