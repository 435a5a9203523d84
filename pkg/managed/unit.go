package managed

import (
	"context"
	"sync"

	"github.com/core-tools/hsu-srvcfg/pkg/errors"
	"github.com/core-tools/hsu-srvcfg/pkg/logging"
	"github.com/core-tools/hsu-srvcfg/pkg/systemd"
	"github.com/core-tools/hsu-srvcfg/pkg/topology"
	"github.com/core-tools/hsu-srvcfg/pkg/units"
)

// Observer receives value changes of a unit and the outcome of every edit request
type Observer interface {
	UnitChanged(view View)
	EditRequested(name string, edit Edit, err error)
}

// Scheduler admits edits with respect to apply cycles
type Scheduler interface {
	// Admit runs admit unless an apply cycle is in flight, in which case it
	// returns a concurrent edit error. When admit returns arm=true the
	// debounce timer is re-armed.
	Admit(admit func() (arm bool, err error)) error
}

// View is a read-only copy of a unit's state
type View struct {
	Name          string
	BaseName      string
	InstanceName  string
	HasService    bool
	HasSocket     bool
	FanOut        bool
	Policy        string
	UnitFileState string
	SubState      string
	State         State
	Pending       EditSet
	Suppressed    bool
}

type UnitOptions struct {
	Record topology.Record
	// FanOut marks socket-activated units whose service instances are spawned per connection
	FanOut    bool
	Policy    Policy
	Manager   systemd.UnitManager
	Overrides *OverrideWriter
	Scheduler Scheduler
	Logger    logging.Logger
}

// Unit is one managed unit: a service, a socket, or both
type Unit struct {
	record    topology.Record
	fanOut    bool
	policy    Policy
	strategy  StopStrategy
	manager   systemd.UnitManager
	overrides *OverrideWriter
	scheduler Scheduler
	logger    logging.Logger

	mutex     sync.Mutex
	state     State
	fileState string
	subState  string
	pending   EditSet
	observers []Observer
}

func NewUnit(options UnitOptions) *Unit {
	policy := options.Policy
	if policy == nil {
		policy = DefaultPolicy()
	}
	logger := options.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Unit{
		record:    options.Record,
		fanOut:    options.FanOut,
		policy:    policy,
		strategy:  NewStopStrategy(options.FanOut),
		manager:   options.Manager,
		overrides: options.Overrides,
		scheduler: options.Scheduler,
		logger:    logger,
	}
}

func (u *Unit) Name() string {
	return u.record.InstantiatedName()
}

func (u *Unit) Record() topology.Record {
	return u.record
}

func (u *Unit) FanOut() bool {
	return u.fanOut
}

func (u *Unit) Policy() Policy {
	return u.policy
}

// AddObserver must be called before the unit is shared
func (u *Unit) AddObserver(observer Observer) {
	u.mutex.Lock()
	defer u.mutex.Unlock()
	u.observers = append(u.observers, observer)
}

// primaryUnit is the unit file whose state stands for the whole unit
func (u *Unit) primaryUnit() (string, units.Kind) {
	if (u.fanOut || !u.record.HasService()) && u.record.HasSocket() {
		return socketUnit(u.record), units.KindSocket
	}
	return serviceUnit(u.record), units.KindService
}

// Refresh reloads the cached values from the unit manager (or from the
// policy's own store) and publishes them. Pending edits are not touched.
func (u *Unit) Refresh(ctx context.Context) error {
	if loader, ok := u.policy.(Loader); ok {
		state, err := loader.Load(ctx)
		if err != nil {
			u.logger.Errorf("Failed to load unit state, error: %v", err)
			return err
		}
		u.mutex.Lock()
		u.state.Masked = state.Masked
		u.state.Enabled = state.Enabled
		u.state.Running = state.Running
		u.fileState = fileStateOf(state)
		u.subState = subStateOf(state)
		u.mutex.Unlock()
		u.notifyChanged()
		return nil
	}

	primary, kind := u.primaryUnit()
	props, err := u.manager.GetProperties(ctx, primary, kind)
	if err != nil {
		u.logger.Errorf("Failed to get unit properties, unit: %s, error: %v", primary, err)
		return err
	}

	listen := props.Listen
	if u.record.HasSocket() && kind != units.KindSocket {
		socketProps, err := u.manager.GetProperties(ctx, socketUnit(u.record), units.KindSocket)
		if err != nil {
			u.logger.Errorf("Failed to get socket properties, unit: %s, error: %v", socketUnit(u.record), err)
			return err
		}
		listen = socketProps.Listen
	}

	u.mutex.Lock()
	u.fileState = props.UnitFileState
	u.subState = props.SubState
	u.state.Masked = props.UnitFileState == systemd.FileStateMasked
	u.state.Enabled = props.UnitFileState == systemd.FileStateEnabled
	u.state.Running = !u.state.Masked && props.IsRunning()
	if u.record.HasSocket() && len(listen) > 0 {
		u.state.Protocol = listen[0].Type
		port, err := listen[0].Port()
		if err == nil && port <= MaxPort {
			u.state.Port = uint16(port)
		} else {
			u.logger.Warnf("Ignoring unparsable listen address, address: %s", listen[0].Address)
		}
	}
	u.mutex.Unlock()

	u.logger.Debugf("Refreshed unit, file_state: %s, sub_state: %s", props.UnitFileState, props.SubState)
	u.notifyChanged()
	return nil
}

// RequestEdit validates an edit and records it as pending. Equal values are
// accepted without effect. Edits are refused while an apply cycle is in flight.
func (u *Unit) RequestEdit(ctx context.Context, edit Edit) error {
	err := u.requestEdit(ctx, edit)
	u.mutex.Lock()
	observers := append([]Observer(nil), u.observers...)
	u.mutex.Unlock()
	for _, o := range observers {
		o.EditRequested(u.Name(), edit, err)
	}
	return err
}

func (u *Unit) requestEdit(ctx context.Context, edit Edit) error {
	if err := edit.Validate(); err != nil {
		u.logger.Warnf("Rejected edit, edit: %s, error: %v", edit, err)
		return err
	}
	if edit.Field == FieldPort && !u.record.HasSocket() {
		return errors.NewInvalidEditError("unit has no socket", nil).WithContext("unit", u.Name())
	}

	u.mutex.Lock()
	noop := u.state.IsNoop(edit)
	u.mutex.Unlock()
	if noop {
		u.logger.Debugf("Edit matches current value, edit: %s", edit)
		return nil
	}

	committer, immediate := u.policy.(Committer)
	admit := func() (bool, error) {
		u.mutex.Lock()
		defer u.mutex.Unlock()

		next, changed, err := u.policy.Transition(u.state, edit)
		if err != nil {
			return false, err
		}
		if changed.Empty() {
			return false, nil
		}
		if immediate {
			if err := committer.Commit(ctx, next); err != nil {
				return false, err
			}
			u.state = next
			u.fileState = fileStateOf(next)
			u.subState = subStateOf(next)
			return false, nil
		}
		u.state = next
		u.pending |= changed.With(edit.Field)
		return true, nil
	}

	var err error
	if u.scheduler != nil {
		err = u.scheduler.Admit(admit)
	} else {
		_, err = admit()
	}
	if err != nil {
		u.logger.Warnf("Rejected edit, edit: %s, error: %v", edit, err)
		return err
	}

	u.logger.Infof("Accepted edit, edit: %s, pending: %s", edit, u.Pending())
	u.notifyChanged()
	return nil
}

// IsSuppressed reports whether the unit is masked and no Masked edit is pending
func (u *Unit) IsSuppressed() bool {
	u.mutex.Lock()
	defer u.mutex.Unlock()
	return u.isSuppressedLocked()
}

func (u *Unit) isSuppressedLocked() bool {
	return u.fileState == systemd.FileStateMasked && !u.pending.Has(FieldMasked)
}

func (u *Unit) Pending() EditSet {
	u.mutex.Lock()
	defer u.mutex.Unlock()
	return u.pending
}

// Dirty reports whether the unit has pending edits
func (u *Unit) Dirty() bool {
	return !u.Pending().Empty()
}

func (u *Unit) snapshot() (State, EditSet, string, string, bool) {
	u.mutex.Lock()
	defer u.mutex.Unlock()
	return u.state, u.pending, u.fileState, u.subState, u.isSuppressedLocked()
}

// StopAndReconfigure stops the unit if it runs, writes the socket override
// for a pending port and moves the unit files to the desired file state
func (u *Unit) StopAndReconfigure(ctx context.Context) error {
	state, pending, fileState, subState, suppressed := u.snapshot()
	if pending.Empty() || suppressed {
		return nil
	}

	u.logger.Infof("Applying new settings, pending: %s, strategy: %s", pending, u.strategy.Name())

	if systemd.IsRunningSubState(subState) {
		if err := u.strategy.Stop(ctx, u.manager, u.record); err != nil {
			return err
		}
	}

	if pending.Has(FieldPort) {
		if u.overrides == nil {
			return errors.NewConfigWriteError("no override directory configured", nil).WithContext("unit", u.Name())
		}
		path, err := u.overrides.Write(u.Name(), state.Protocol, state.Port)
		if err != nil {
			return err
		}
		u.logger.Infof("Socket override written, path: %s, port: %d", path, state.Port)
	}

	if pending.Has(FieldMasked) || pending.Has(FieldEnabled) {
		files := u.strategy.UnitFiles(u.record)
		if err := u.manager.SetUnitFilesState(ctx, files, fileState, state.Masked, state.Enabled); err != nil {
			return err
		}
	}
	return nil
}

// Restart starts the unit again when it should run, clears the pending
// edits and refreshes from the unit manager
func (u *Unit) Restart(ctx context.Context) error {
	state, pending, _, _, suppressed := u.snapshot()
	if pending.Empty() || suppressed {
		return nil
	}

	if state.Running && !state.Masked {
		if err := u.strategy.Restart(ctx, u.manager, u.record); err != nil {
			return err
		}
	}

	u.mutex.Lock()
	u.pending = 0
	u.mutex.Unlock()

	u.logger.Infof("Applied new settings")
	return u.Refresh(ctx)
}

// View returns a copy of the current state
func (u *Unit) View() View {
	u.mutex.Lock()
	defer u.mutex.Unlock()
	return u.viewLocked()
}

func (u *Unit) viewLocked() View {
	return View{
		Name:          u.Name(),
		BaseName:      u.record.BaseName,
		InstanceName:  u.record.InstanceName,
		HasService:    u.record.HasService(),
		HasSocket:     u.record.HasSocket(),
		FanOut:        u.fanOut,
		Policy:        u.policy.Name(),
		UnitFileState: u.fileState,
		SubState:      u.subState,
		State:         u.state,
		Pending:       u.pending,
		Suppressed:    u.isSuppressedLocked(),
	}
}

func (u *Unit) notifyChanged() {
	u.mutex.Lock()
	view := u.viewLocked()
	observers := append([]Observer(nil), u.observers...)
	u.mutex.Unlock()
	for _, o := range observers {
		o.UnitChanged(view)
	}
}

func fileStateOf(s State) string {
	switch {
	case s.Masked:
		return systemd.FileStateMasked
	case s.Enabled:
		return systemd.FileStateEnabled
	default:
		return "disabled"
	}
}

func subStateOf(s State) string {
	if s.Running {
		return systemd.SubStateRunning
	}
	return "dead"
}
