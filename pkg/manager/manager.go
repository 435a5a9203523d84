// Package manager wires discovery, the topology store, the managed units and
// the apply orchestrator into the service configuration daemon.
package manager

import (
	"context"
	"sync"

	"github.com/core-tools/hsu-srvcfg/pkg/errors"
	"github.com/core-tools/hsu-srvcfg/pkg/logging"
	"github.com/core-tools/hsu-srvcfg/pkg/managed"
	"github.com/core-tools/hsu-srvcfg/pkg/metrics"
	"github.com/core-tools/hsu-srvcfg/pkg/orchestrator"
	"github.com/core-tools/hsu-srvcfg/pkg/systemd"
	"github.com/core-tools/hsu-srvcfg/pkg/topology"
)

// ManagerState represents the current state of the manager
type ManagerState string

const (
	// ManagerStateNotStarted is the initial state before Start() is called
	ManagerStateNotStarted ManagerState = "not_started"

	// ManagerStateRunning means units are registered and edits are accepted
	ManagerStateRunning ManagerState = "running"

	// ManagerStateStopping means the manager is shutting down
	ManagerStateStopping ManagerState = "stopping"

	// ManagerStateStopped means the manager has stopped
	ManagerStateStopped ManagerState = "stopped"
)

type ManagerOptions struct {
	Config  *Config
	Backend systemd.UnitManager
	// Metrics is optional
	Metrics *metrics.Metrics
}

type Manager struct {
	config       *Config
	backend      systemd.UnitManager
	store        *topology.Store
	overrides    *managed.OverrideWriter
	orchestrator *orchestrator.Orchestrator
	metrics      *metrics.Metrics
	logger       logging.Logger

	mutex         sync.Mutex
	discoverMutex sync.Mutex
	allow         topology.AllowList
	state         ManagerState
}

func NewManager(options ManagerOptions, logger logging.Logger) (*Manager, error) {
	if options.Config == nil {
		return nil, errors.NewValidationError("configuration cannot be nil", nil)
	}
	if options.Backend == nil {
		return nil, errors.NewValidationError("unit manager backend cannot be nil", nil)
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	config := options.Config
	orchestratorOptions := orchestrator.Options{
		Delay:    config.Manager.ApplyDelay,
		Manager:  options.Backend,
		Registry: orchestrator.NewRegistry(),
		Logger:   logging.NewChildLogger("orchestrator: ", logger),
	}
	if options.Metrics != nil {
		orchestratorOptions.Recorder = options.Metrics
	}

	return &Manager{
		config:       config,
		backend:      options.Backend,
		store:        topology.NewStore(config.Paths.TopologyFile, config.Paths.QuarantineFile, logging.NewChildLogger("topology: ", logger)),
		overrides:    managed.NewOverrideWriter(config.Paths.OverrideDir),
		orchestrator: orchestrator.New(orchestratorOptions),
		metrics:      options.Metrics,
		logger:       logger,
		allow:        config.AllowList(),
		state:        ManagerStateNotStarted,
	}, nil
}

func (m *Manager) Registry() *orchestrator.Registry {
	return m.orchestrator.Registry()
}

func (m *Manager) Orchestrator() *orchestrator.Orchestrator {
	return m.orchestrator
}

func (m *Manager) State() ManagerState {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.state
}

// Start discovers and registers the managed units. The USB code update
// pseudo-unit, when enabled, is registered after the topology is persisted.
func (m *Manager) Start(ctx context.Context) error {
	m.mutex.Lock()
	if m.state != ManagerStateNotStarted {
		state := m.state
		m.mutex.Unlock()
		return errors.NewConflictError("manager already started", nil).WithContext("state", string(state))
	}
	m.mutex.Unlock()

	m.logger.Infof("Starting manager, allow_list: %d, apply_delay: %v", len(m.allow), m.config.Manager.ApplyDelay)

	m.orchestrator.Start(ctx)

	if _, err := m.Discover(ctx); err != nil {
		m.orchestrator.Stop()
		return err
	}

	if m.config.USBCodeUpdate.Enabled {
		if err := m.registerUSBCodeUpdate(ctx); err != nil {
			m.logger.Errorf("Failed to register usb code update, error: %v", err)
		}
	}

	m.mutex.Lock()
	m.state = ManagerStateRunning
	m.mutex.Unlock()

	m.logger.Infof("Manager started, units: %d", m.Registry().Len())
	return nil
}

// Stop cancels a pending apply and waits for a running one
func (m *Manager) Stop() {
	m.mutex.Lock()
	if m.state == ManagerStateStopped {
		m.mutex.Unlock()
		return
	}
	m.state = ManagerStateStopping
	m.mutex.Unlock()

	m.logger.Infof("Stopping manager...")
	m.orchestrator.Stop()

	m.mutex.Lock()
	m.state = ManagerStateStopped
	m.mutex.Unlock()
	m.logger.Infof("Manager stopped")
}

// UpdateAllowList replaces the allow-list used by the next Discover
func (m *Manager) UpdateAllowList(allow topology.AllowList) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.allow = allow
	m.logger.Infof("Allow-list updated, entries: %d", len(allow))
}

func (m *Manager) allowList() topology.AllowList {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.allow
}

// Discover lists live units, merges them into the persisted topology and
// registers every record not yet known. Registered units are left as they
// are. It returns the names of the newly registered units.
func (m *Manager) Discover(ctx context.Context) ([]string, error) {
	m.discoverMutex.Lock()
	defer m.discoverMutex.Unlock()

	live, err := m.backend.ListUnits(ctx)
	if err != nil {
		m.logger.Errorf("Failed to list units, error: %v", err)
		return nil, err
	}

	allow := m.allowList()
	discovered := topology.Build(live, allow)
	m.logger.Debugf("Discovered units, live: %d, matched: %d", len(live), len(discovered))

	merged, err := m.store.Sync(discovered)
	if err != nil {
		// The merged snapshot is still usable
		m.logger.Errorf("Failed to persist topology, error: %v", err)
	}

	var added []string
	for _, name := range merged.Names() {
		if m.Registry().Contains(name) {
			continue
		}
		record := merged[name]
		unit, err := m.newUnit(record, allow)
		if err != nil {
			m.logger.Errorf("Failed to create unit, unit: %s, error: %v", name, err)
			continue
		}
		if err := m.Registry().Add(unit); err != nil {
			m.logger.Errorf("Failed to register unit, unit: %s, error: %v", name, err)
			continue
		}
		if err := unit.Refresh(ctx); err != nil {
			m.logger.Warnf("Failed to refresh unit, unit: %s, error: %v", name, err)
		}
		added = append(added, name)
		m.logger.Infof("Registered unit, unit: %s, service: %t, socket: %t, policy: %s",
			name, record.HasService(), record.HasSocket(), unit.Policy().Name())
	}

	return added, nil
}

func (m *Manager) newUnit(record topology.Record, allow topology.AllowList) (*managed.Unit, error) {
	// Persisted records whose base left the allow-list keep the default policy
	entry := allow[record.BaseName]

	policy, ok := managed.PolicyByName(entry.Policy)
	if !ok {
		return nil, errors.NewValidationError("unknown policy", nil).WithContext("policy", entry.Policy)
	}

	unit := managed.NewUnit(managed.UnitOptions{
		Record:    record,
		FanOut:    entry.SocketActivated,
		Policy:    policy,
		Manager:   m.backend,
		Overrides: m.overrides,
		Scheduler: m.orchestrator,
		Logger:    logging.NewChildLogger("unit: "+record.InstantiatedName()+" , ", m.logger),
	})
	if m.metrics != nil {
		unit.AddObserver(m.metrics)
	}
	return unit, nil
}

func (m *Manager) registerUSBCodeUpdate(ctx context.Context) error {
	name := m.config.USBCodeUpdate.UnitName
	if m.Registry().Contains(name) {
		return nil
	}

	logger := logging.NewChildLogger("unit: "+name+" , ", m.logger)
	policy := managed.NewUSBCodeUpdatePolicy(managed.USBCodeUpdateOptions{
		StateFile: m.config.USBCodeUpdate.StateFile,
		RulesFile: m.config.USBCodeUpdate.RulesFile,
	}, logger)

	unit := managed.NewUnit(managed.UnitOptions{
		Record:    topology.Record{BaseName: name},
		Policy:    policy,
		Manager:   m.backend,
		Scheduler: m.orchestrator,
		Logger:    logger,
	})
	if m.metrics != nil {
		unit.AddObserver(m.metrics)
	}
	if err := m.Registry().Add(unit); err != nil {
		return err
	}
	if err := unit.Refresh(ctx); err != nil {
		logger.Warnf("Failed to load usb code update state, error: %v", err)
	}
	m.logger.Infof("Registered unit, unit: %s, policy: %s", name, policy.Name())
	return nil
}
