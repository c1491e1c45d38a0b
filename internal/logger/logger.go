package logger

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ariefcatur/go-supermarket-chain/internal/config"
)

// New builds the application logger. Development mode switches to a
// console encoder with caller info and debug-friendly stack traces.
func New(cfg config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Logger.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "logger level %q", cfg.Logger.Level)
	}

	zc := zap.NewProductionConfig()
	if cfg.Development() {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	if cfg.Logger.Encoding != "" {
		zc.Encoding = cfg.Logger.Encoding
	}
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	l, err := zc.Build(zap.Fields(zap.String("service", cfg.ServiceName)))
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return l, nil
}
