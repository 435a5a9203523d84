// Package systemd talks to the unit manager: discovery, unit properties,
// start/stop/restart, unit file state changes and daemon reload.
package systemd

import (
	"context"
	"strconv"
	"strings"

	"github.com/core-tools/hsu-srvcfg/pkg/units"
)

// Load, file and sub states reported by systemd
const (
	LoadStateLoaded   = "loaded"
	LoadStateNotFound = "not-found"

	FileStateMasked  = "masked"
	FileStateEnabled = "enabled"

	SubStateRunning   = "running"
	SubStateListening = "listening"
)

// Action is a unit job verb
type Action string

const (
	ActionStart   Action = "start"
	ActionStop    Action = "stop"
	ActionRestart Action = "restart"
)

// UnitStatus is one entry of the live unit listing
type UnitStatus struct {
	Name       string
	LoadState  string
	SubState   string
	ObjectPath string
}

// ListenAddress is one socket listener, e.g. {Type: "Stream", Address: "[::]:22"}
type ListenAddress struct {
	Type    string
	Address string
}

// Port returns the numeric port after the last ':' of Address
func (l ListenAddress) Port() (uint64, error) {
	return strconv.ParseUint(l.Address[strings.LastIndex(l.Address, ":")+1:], 10, 64)
}

// UnitProperties holds the subset of unit properties the manager needs
type UnitProperties struct {
	UnitFileState string
	SubState      string
	Listen        []ListenAddress
}

// IsRunning reports whether SubState is running or listening
func (p *UnitProperties) IsRunning() bool {
	return IsRunningSubState(p.SubState)
}

// IsRunningSubState maps a sub state to the Running property
func IsRunningSubState(subState string) bool {
	return subState == SubStateRunning || subState == SubStateListening
}

// UnitManager is the unit manager seen by the reconciliation and apply engine.
// Every call may fail with a transport error.
type UnitManager interface {
	ListUnits(ctx context.Context) ([]UnitStatus, error)
	// GetProperties fetches the Unit interface properties, plus Listen when kind is socket
	GetProperties(ctx context.Context, unitName string, kind units.Kind) (*UnitProperties, error)
	UnitAction(ctx context.Context, unitName string, action Action) error
	// SetUnitFilesState moves unitFiles from currentState to masked, or to enabled/disabled
	SetUnitFilesState(ctx context.Context, unitFiles []string, currentState string, masked, enabled bool) error
	Reload(ctx context.Context) error
	// StartupFinished reports whether the manager has finished booting
	StartupFinished(ctx context.Context) (bool, error)
	Close() error
}

// fileStateOps are the primitive unit file operations both backends provide
type fileStateOps interface {
	mask(ctx context.Context, files []string) error
	unmask(ctx context.Context, files []string) error
	enable(ctx context.Context, files []string) error
	disable(ctx context.Context, files []string) error
}

func applyFileState(ctx context.Context, ops fileStateOps, files []string, currentState string, masked, enabled bool) error {
	if masked {
		return ops.mask(ctx, files)
	}
	if currentState == FileStateMasked {
		if err := ops.unmask(ctx, files); err != nil {
			return err
		}
	}
	if enabled {
		return ops.enable(ctx, files)
	}
	return ops.disable(ctx, files)
}
