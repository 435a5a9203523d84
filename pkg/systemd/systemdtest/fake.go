// Package systemdtest provides an in-memory systemd.UnitManager for tests.
package systemdtest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/core-tools/hsu-srvcfg/pkg/errors"
	"github.com/core-tools/hsu-srvcfg/pkg/systemd"
	"github.com/core-tools/hsu-srvcfg/pkg/units"
)

// FakeManager records every call in order and serves canned properties
type FakeManager struct {
	mu         sync.Mutex
	Units      []systemd.UnitStatus
	Properties map[string]*systemd.UnitProperties
	// Fail maps a call prefix (e.g. "stop bmcweb.service") to the error it returns
	Fail     map[string]error
	Finished bool
	calls    []string
}

func NewFakeManager() *FakeManager {
	return &FakeManager{
		Properties: make(map[string]*systemd.UnitProperties),
		Fail:       make(map[string]error),
		Finished:   true,
	}
}

// AddUnit adds a live unit with the given sub state
func (f *FakeManager) AddUnit(name, loadState, subState string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Units = append(f.Units, systemd.UnitStatus{
		Name:       name,
		LoadState:  loadState,
		SubState:   subState,
		ObjectPath: systemd.UnitObjectPath(name),
	})
}

// SetProperties sets what GetProperties returns for unitName
func (f *FakeManager) SetProperties(unitName string, props *systemd.UnitProperties) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Properties[unitName] = props
}

// Calls returns the recorded calls, e.g. "stop dropbear.socket"
func (f *FakeManager) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// CallsWithPrefix filters Calls by verb, e.g. "restart"
func (f *FakeManager) CallsWithPrefix(prefix string) []string {
	var result []string
	for _, c := range f.Calls() {
		if strings.HasPrefix(c, prefix) {
			result = append(result, c)
		}
	}
	return result
}

// Reset clears the call log
func (f *FakeManager) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}

func (f *FakeManager) record(call string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	for prefix, err := range f.Fail {
		if strings.HasPrefix(call, prefix) {
			return errors.NewTransportError(call+" failed", err)
		}
	}
	return nil
}

func (f *FakeManager) ListUnits(ctx context.Context) ([]systemd.UnitStatus, error) {
	if err := f.record("list-units"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]systemd.UnitStatus(nil), f.Units...), nil
}

func (f *FakeManager) GetProperties(ctx context.Context, unitName string, kind units.Kind) (*systemd.UnitProperties, error) {
	if err := f.record("show " + unitName); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	props, ok := f.Properties[unitName]
	if !ok {
		return &systemd.UnitProperties{UnitFileState: "disabled", SubState: "dead"}, nil
	}
	copied := *props
	copied.Listen = append([]systemd.ListenAddress(nil), props.Listen...)
	return &copied, nil
}

func (f *FakeManager) UnitAction(ctx context.Context, unitName string, action systemd.Action) error {
	return f.record(string(action) + " " + unitName)
}

func (f *FakeManager) SetUnitFilesState(ctx context.Context, unitFiles []string, currentState string, masked, enabled bool) error {
	return f.record(fmt.Sprintf("file-state %s masked=%t enabled=%t", strings.Join(unitFiles, ","), masked, enabled))
}

func (f *FakeManager) Reload(ctx context.Context) error {
	return f.record("daemon-reload")
}

func (f *FakeManager) StartupFinished(ctx context.Context) (bool, error) {
	if err := f.record("startup-finished"); err != nil {
		return false, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Finished, nil
}

func (f *FakeManager) Close() error {
	return nil
}

var _ systemd.UnitManager = (*FakeManager)(nil)
