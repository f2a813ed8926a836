package injector

import (
	"github.com/zeusync/navsim/internal/config"
	"github.com/zeusync/navsim/internal/core/observability/log"
)

// ProvideLogger builds the process logger from the log section of cfg. The
// cleanup flushes buffered records.
func ProvideLogger(cfg config.Config) (*log.Logger, func(), error) {
	logger, err := log.NewWithConfig(cfg.LoggerConfig())
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}
