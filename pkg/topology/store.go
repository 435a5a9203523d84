package topology

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/core-tools/hsu-srvcfg/pkg/errors"
	"github.com/core-tools/hsu-srvcfg/pkg/logging"
)

// LoadResult describes what Load found on disk
type LoadResult struct {
	Exists  bool
	Corrupt bool
}

// Store persists the topology snapshot as JSON
type Store struct {
	path           string
	quarantinePath string
	logger         logging.Logger
}

// NewStore creates a store writing path and quarantining unparsable files to quarantinePath
func NewStore(path, quarantinePath string, logger logging.Logger) *Store {
	return &Store{
		path:           path,
		quarantinePath: quarantinePath,
		logger:         logger,
	}
}

// Path returns the primary snapshot file
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted snapshot. A file that fails to parse is copied to
// the quarantine path (overwriting any earlier copy) and reported as corrupt.
func (s *Store) Load() (Snapshot, LoadResult, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, LoadResult{}, nil
		}
		return nil, LoadResult{}, errors.NewIOError("failed to read topology file", err).WithContext("path", s.path)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil || snapshot == nil {
		if err == nil {
			err = errors.NewCorruptStateError("topology file holds no object", nil)
		}
		s.logger.Errorf("Failed to load topology file, need to rewrite, path: %s, error: %v", s.path, err)
		s.quarantine(data)
		return nil, LoadResult{Exists: true, Corrupt: true}, nil
	}
	return snapshot, LoadResult{Exists: true}, nil
}

func (s *Store) quarantine(data []byte) {
	if s.quarantinePath == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.quarantinePath), 0755); err == nil {
		err = renameio.WriteFile(s.quarantinePath, data, 0644)
		if err == nil {
			s.logger.Warnf("Corrupt topology file quarantined, path: %s", s.quarantinePath)
			return
		}
		s.logger.Errorf("Failed to copy %s to %s: %v", s.path, s.quarantinePath, err)
		return
	}
	s.logger.Errorf("Failed to create quarantine directory for %s", s.quarantinePath)
}

// Save atomically replaces the snapshot file
func (s *Store) Save(snapshot Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "    ")
	if err != nil {
		return errors.NewInternalError("failed to encode topology", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.NewIOError("failed to create topology directory", err).WithContext("path", s.path)
	}
	if err := renameio.WriteFile(s.path, append(data, '\n'), 0644); err != nil {
		return errors.NewIOError("failed to write topology file", err).WithContext("path", s.path)
	}
	s.logger.Infof("Topology saved, path: %s, units: %d", s.path, len(snapshot))
	return nil
}

// Sync merges discovered into the persisted snapshot and writes the result
// when the file was absent, corrupt, or gained entries. The returned snapshot
// is valid even when the write fails.
func (s *Store) Sync(discovered Snapshot) (Snapshot, error) {
	persisted, result, err := s.Load()
	if err != nil {
		return discovered.Clone(), err
	}

	merged := discovered.Clone()
	write := !result.Exists || result.Corrupt
	if result.Exists && !result.Corrupt {
		var changed bool
		merged, changed = Reconcile(discovered, persisted)
		write = changed
	}

	if !write {
		s.logger.Debugf("Topology unchanged, path: %s, units: %d", s.path, len(merged))
		return merged, nil
	}
	return merged, s.Save(merged)
}
