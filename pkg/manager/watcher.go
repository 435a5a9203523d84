package manager

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"vawter.tech/stopper"

	"github.com/core-tools/hsu-srvcfg/pkg/errors"
	"github.com/core-tools/hsu-srvcfg/pkg/logging"
)

const DefaultWatchDebounce = 500 * time.Millisecond

// ConfigWatcher calls onChange after the configuration file was written,
// created or renamed into place. Bursts of events within the debounce
// interval are collapsed into one call.
type ConfigWatcher struct {
	path     string
	debounce time.Duration
	onChange func()
	logger   logging.Logger

	mu        sync.Mutex
	debouncer *time.Timer
}

func NewConfigWatcher(path string, debounce time.Duration, onChange func(), logger logging.Logger) *ConfigWatcher {
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}
	return &ConfigWatcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		onChange: onChange,
		logger:   logger,
	}
}

// Run watches until sctx is stopping. The parent directory is watched since
// editors and config management replace the file instead of writing it.
func (w *ConfigWatcher) Run(sctx *stopper.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.NewIOError("failed to create config watcher", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return errors.NewIOError("failed to watch config directory", err).WithContext("dir", dir)
	}
	w.logger.Infof("Watching configuration file, path: %s", w.path)

	defer func() {
		w.mu.Lock()
		if w.debouncer != nil {
			w.debouncer.Stop()
		}
		w.mu.Unlock()
	}()

	for !sctx.IsStopping() {
		select {
		case <-sctx.Stopping():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debugf("Configuration file event, op: %s", event.Op)

			w.mu.Lock()
			if w.debouncer != nil {
				w.debouncer.Stop()
			}
			w.debouncer = time.AfterFunc(w.debounce, func() {
				if !sctx.IsStopping() {
					w.onChange()
				}
			})
			w.mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warnf("Configuration watch error, error: %v", err)
		}
	}
	return nil
}

// ReloadConfig re-reads the configuration file, replaces the allow-list and
// registers units that became eligible. An invalid file leaves the current
// allow-list in place.
func (m *Manager) ReloadConfig(ctx context.Context, configFile string) ([]string, error) {
	m.logger.Infof("Reloading configuration, path: %s", configFile)

	config, err := ValidateConfigFile(configFile)
	if err != nil {
		m.logger.Errorf("Ignoring configuration change, error: %v", err)
		return nil, err
	}

	m.UpdateAllowList(config.AllowList())

	added, err := m.Discover(ctx)
	if err != nil {
		return nil, err
	}
	m.logger.Infof("Configuration reloaded, added: %d", len(added))
	return added, nil
}
