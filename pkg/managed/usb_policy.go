package managed

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/core-tools/hsu-srvcfg/pkg/errors"
	"github.com/core-tools/hsu-srvcfg/pkg/logging"
)

const PolicyUSBCodeUpdate = "usb-code-update"

const nullDevice = "/dev/null"

// USBCodeUpdateOptions locates the files backing the USB code update switch
type USBCodeUpdateOptions struct {
	StateFile string
	RulesFile string
}

// usbCodeUpdateState is the on-disk form of the state file
type usbCodeUpdateState struct {
	Masked  bool `json:"Masked"`
	Enabled bool `json:"Enabled"`
}

// USBCodeUpdatePolicy drives a pseudo-unit with no systemd unit behind it.
// Disabling replaces the udev rules file with a link to /dev/null, enabling
// removes it. Edits are committed immediately.
type USBCodeUpdatePolicy struct {
	options USBCodeUpdateOptions
	logger  logging.Logger
}

func NewUSBCodeUpdatePolicy(options USBCodeUpdateOptions, logger logging.Logger) *USBCodeUpdatePolicy {
	return &USBCodeUpdatePolicy{
		options: options,
		logger:  logger,
	}
}

func (p *USBCodeUpdatePolicy) Name() string { return PolicyUSBCodeUpdate }

// Transition keeps enabled and running equal: masking turns both off,
// unmasking turns both on
func (p *USBCodeUpdatePolicy) Transition(cur State, e Edit) (State, EditSet, error) {
	if err := e.Validate(); err != nil {
		return cur, 0, err
	}

	next := cur
	switch e.Field {
	case FieldMasked:
		next.Masked = e.Flag
		next.Enabled = !e.Flag
		next.Running = !e.Flag
	case FieldEnabled, FieldRunning:
		if cur.Masked {
			return cur, 0, errors.NewInvalidEditError("unit is masked, unmask it first", nil).
				WithContext("field", e.Field.String())
		}
		next.Enabled = e.Flag
		next.Running = e.Flag
	case FieldPort:
		return cur, 0, errors.NewInvalidEditError("unit has no socket", nil).WithContext("field", e.Field.String())
	}
	return next, diff(cur, next), nil
}

// Load reads the state file. A missing file means unmasked and enabled.
func (p *USBCodeUpdatePolicy) Load(ctx context.Context) (State, error) {
	data, err := os.ReadFile(p.options.StateFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return State{}, errors.NewIOError("failed to read usb code update state", err).
				WithContext("path", p.options.StateFile)
		}
		p.logger.Infof("USB code update state file does not exist, path: %s", p.options.StateFile)
		state := State{Enabled: true, Running: true}
		return state, p.applyRules(state.Enabled)
	}

	var onDisk usbCodeUpdateState
	if err := json.Unmarshal(data, &onDisk); err != nil {
		return State{}, errors.NewCorruptStateError("failed to parse usb code update state", err).
			WithContext("path", p.options.StateFile)
	}

	state := State{Masked: onDisk.Masked}
	if !onDisk.Masked {
		state.Enabled = onDisk.Enabled
		state.Running = onDisk.Enabled
	}
	return state, p.applyRules(state.Enabled)
}

// Commit persists state and updates the udev rules link
func (p *USBCodeUpdatePolicy) Commit(ctx context.Context, state State) error {
	if err := p.applyRules(state.Enabled); err != nil {
		return err
	}

	data, err := json.Marshal(usbCodeUpdateState{Masked: state.Masked, Enabled: state.Enabled})
	if err != nil {
		return errors.NewInternalError("failed to encode usb code update state", err)
	}
	if err := os.MkdirAll(filepath.Dir(p.options.StateFile), 0755); err != nil {
		return errors.NewIOError("failed to create state directory", err).WithContext("path", p.options.StateFile)
	}
	if err := renameio.WriteFile(p.options.StateFile, data, 0644); err != nil {
		return errors.NewIOError("failed to write usb code update state", err).WithContext("path", p.options.StateFile)
	}
	return nil
}

func (p *USBCodeUpdatePolicy) applyRules(enabled bool) error {
	if enabled {
		err := os.Remove(p.options.RulesFile)
		if err == nil {
			p.logger.Infof("Enabled usb code update, removed: %s", p.options.RulesFile)
			return nil
		}
		if os.IsNotExist(err) {
			return nil
		}
		return errors.NewIOError("failed to enable usb code update", err).WithContext("path", p.options.RulesFile)
	}

	if target, err := os.Readlink(p.options.RulesFile); err == nil && target == nullDevice {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(p.options.RulesFile), 0755); err != nil {
		return errors.NewIOError("failed to create rules directory", err).WithContext("path", p.options.RulesFile)
	}
	if err := renameio.Symlink(nullDevice, p.options.RulesFile); err != nil {
		return errors.NewIOError("failed to disable usb code update", err).WithContext("path", p.options.RulesFile)
	}
	p.logger.Infof("Disabled usb code update, linked %s to %s", p.options.RulesFile, nullDevice)
	return nil
}

var (
	_ Policy    = (*USBCodeUpdatePolicy)(nil)
	_ Committer = (*USBCodeUpdatePolicy)(nil)
	_ Loader    = (*USBCodeUpdatePolicy)(nil)
)
