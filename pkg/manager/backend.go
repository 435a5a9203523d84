package manager

import (
	"context"
	"time"

	"github.com/core-tools/hsu-srvcfg/pkg/errors"
	"github.com/core-tools/hsu-srvcfg/pkg/logging"
	"github.com/core-tools/hsu-srvcfg/pkg/systemd"
)

// NewBackend creates the unit manager client named in configuration
func NewBackend(ctx context.Context, name string, logger logging.Logger) (systemd.UnitManager, error) {
	switch name {
	case BackendSystemctl, "":
		return systemd.NewSystemctlClient(logger), nil
	case BackendDBus:
		return systemd.NewDBusClient(ctx, logger)
	}
	return nil, errors.NewValidationError("unknown backend", nil).WithContext("backend", name)
}

// WaitForStartup polls the unit manager until it has finished booting.
// Poll failures are logged and retried.
func WaitForStartup(ctx context.Context, backend systemd.UnitManager, interval time.Duration, logger logging.Logger) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		finished, err := backend.StartupFinished(ctx)
		if err != nil {
			logger.Warnf("Failed to query startup state, error: %v", err)
		} else if finished {
			logger.Infof("Unit manager startup finished")
			return nil
		} else {
			logger.Infof("Waiting for unit manager startup, interval: %v", interval)
		}

		select {
		case <-ctx.Done():
			return errors.NewCancelledError("startup wait cancelled", ctx.Err())
		case <-ticker.C:
		}
	}
}
