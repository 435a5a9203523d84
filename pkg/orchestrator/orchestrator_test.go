package orchestrator

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/core-tools/hsu-srvcfg/pkg/errors"
	"github.com/core-tools/hsu-srvcfg/pkg/managed"
	"github.com/core-tools/hsu-srvcfg/pkg/systemd"
	"github.com/core-tools/hsu-srvcfg/pkg/systemd/systemdtest"
	"github.com/core-tools/hsu-srvcfg/pkg/topology"
)

type recordingRecorder struct {
	mutex   sync.Mutex
	reports []*CycleReport
}

func (r *recordingRecorder) CycleCompleted(report *CycleReport) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.reports = append(r.reports, report)
}

func (r *recordingRecorder) count() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return len(r.reports)
}

type fixture struct {
	orchestrator *Orchestrator
	manager      *systemdtest.FakeManager
	recorder     *recordingRecorder
	overrideDir  string
}

func newFixture(t *testing.T, delay time.Duration) *fixture {
	manager := systemdtest.NewFakeManager()
	recorder := &recordingRecorder{}
	o := New(Options{
		Delay:    delay,
		Manager:  manager,
		Recorder: recorder,
	})
	o.Start(context.Background())
	t.Cleanup(o.Stop)
	return &fixture{
		orchestrator: o,
		manager:      manager,
		recorder:     recorder,
		overrideDir:  t.TempDir(),
	}
}

func (f *fixture) addUnit(t *testing.T, rec topology.Record, fanOut bool) *managed.Unit {
	unit := managed.NewUnit(managed.UnitOptions{
		Record:    rec,
		FanOut:    fanOut,
		Manager:   f.manager,
		Overrides: managed.NewOverrideWriter(f.overrideDir),
		Scheduler: f.orchestrator,
	})
	require.NoError(t, f.orchestrator.Registry().Add(unit))
	require.NoError(t, unit.Refresh(context.Background()))
	return unit
}

func record(base string, service, socket bool) topology.Record {
	rec := topology.Record{BaseName: base}
	if service {
		rec.ServiceObjectPath = systemd.UnitObjectPath(base + ".service")
	}
	if socket {
		rec.SocketObjectPath = systemd.UnitObjectPath(base + ".socket")
	}
	return rec
}

func indexOf(calls []string, call string) int {
	for i, c := range calls {
		if c == call {
			return i
		}
	}
	return -1
}

func TestOrchestrator_CoalescesEdits(t *testing.T) {
	f := newFixture(t, 80*time.Millisecond)
	f.manager.SetProperties("bmcweb.service", &systemd.UnitProperties{UnitFileState: "enabled", SubState: "running"})
	f.manager.SetProperties("bmcweb.socket", &systemd.UnitProperties{
		UnitFileState: "enabled",
		SubState:      "listening",
		Listen:        []systemd.ListenAddress{{Type: "Stream", Address: "[::]:443"}},
	})
	bmcweb := f.addUnit(t, record("bmcweb", true, true), false)
	kcs := f.addUnit(t, record("phosphor-ipmi-kcs", true, false), false)
	f.manager.Reset()

	ctx := context.Background()
	require.NoError(t, bmcweb.RequestEdit(ctx, managed.PortEdit(8080)))
	require.NoError(t, kcs.RequestEdit(ctx, managed.EnabledEdit(true)))
	require.NoError(t, bmcweb.RequestEdit(ctx, managed.PortEdit(8443)))
	assert.True(t, f.orchestrator.Armed())

	require.Eventually(t, func() bool { return f.recorder.count() == 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, 1, f.recorder.count())

	assert.Len(t, f.manager.CallsWithPrefix("daemon-reload"), 1)
	data, err := os.ReadFile(filepath.Join(f.overrideDir, "bmcweb.socket.d", "override.conf"))
	require.NoError(t, err)
	assert.Equal(t, "[Socket]\nListenStream=\nListenStream=8443\n", string(data))

	report := f.recorder.reports[0]
	assert.Equal(t, []string{"bmcweb", "phosphor-ipmi-kcs"}, report.Applied)
	assert.NoError(t, report.Err())
	assert.False(t, bmcweb.Dirty())
	assert.False(t, kcs.Dirty())
	assert.False(t, f.orchestrator.InFlight())
}

func TestOrchestrator_PhaseOrdering(t *testing.T) {
	f := newFixture(t, time.Hour)
	for _, name := range []string{"bmcweb", "obmc-ikvm"} {
		f.manager.SetProperties(name+".service", &systemd.UnitProperties{UnitFileState: "enabled", SubState: "running"})
	}
	bmcweb := f.addUnit(t, record("bmcweb", true, true), false)
	ikvm := f.addUnit(t, record("obmc-ikvm", true, false), false)
	f.manager.Reset()

	ctx := context.Background()
	require.NoError(t, ikvm.RequestEdit(ctx, managed.EnabledEdit(false)))
	require.NoError(t, bmcweb.RequestEdit(ctx, managed.PortEdit(8443)))

	report, err := f.orchestrator.RunCycle(ctx)
	require.NoError(t, err)
	assert.False(t, f.orchestrator.Armed())

	calls := f.manager.Calls()
	reload := indexOf(calls, "daemon-reload")
	require.NotEqual(t, -1, reload)
	assert.Len(t, f.manager.CallsWithPrefix("daemon-reload"), 1)

	// Registry order within the stop phase
	assert.Less(t, indexOf(calls, "stop bmcweb.socket"), indexOf(calls, "stop bmcweb.service"))
	assert.Less(t, indexOf(calls, "stop bmcweb.service"), indexOf(calls, "stop obmc-ikvm.service"))
	assert.Less(t, indexOf(calls, "file-state obmc-ikvm.service masked=false enabled=false"), reload)

	for _, c := range f.manager.CallsWithPrefix("restart") {
		assert.Greater(t, indexOf(calls, c), reload)
	}
	assert.Equal(t, []string{"restart bmcweb.socket", "restart bmcweb.service", "restart obmc-ikvm.service"},
		f.manager.CallsWithPrefix("restart"))
	assert.Equal(t, []string{"bmcweb", "obmc-ikvm"}, report.Dirty)
}

func TestOrchestrator_FanOutMask(t *testing.T) {
	f := newFixture(t, time.Hour)
	f.manager.SetProperties("dropbear.socket", &systemd.UnitProperties{
		UnitFileState: "enabled",
		SubState:      "listening",
		Listen:        []systemd.ListenAddress{{Type: "Stream", Address: "0.0.0.0:22"}},
	})
	f.manager.AddUnit("dropbear.socket", "loaded", "listening")
	f.manager.AddUnit("dropbear@0-10.0.0.1:22-10.0.0.9:40000.service", "loaded", "running")
	f.manager.AddUnit("dropbear@1-10.0.0.1:22-10.0.0.9:40001.service", "loaded", "running")
	dropbear := f.addUnit(t, record("dropbear", true, true), true)
	f.manager.Reset()

	require.NoError(t, dropbear.RequestEdit(context.Background(), managed.MaskedEdit(true)))
	report, err := f.orchestrator.RunCycle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"stop dropbear.socket",
		"list-units",
		"stop dropbear@0-10.0.0.1:22-10.0.0.9:40000.service",
		"stop dropbear@1-10.0.0.1:22-10.0.0.9:40001.service",
		"file-state dropbear.socket masked=true enabled=false",
		"daemon-reload",
		"show dropbear.socket",
	}, f.manager.Calls())
	assert.Empty(t, f.manager.CallsWithPrefix("restart"))
	assert.Equal(t, []string{"dropbear"}, report.Applied)
}

// blockingManager holds Reload until released
type blockingManager struct {
	*systemdtest.FakeManager
	entered chan struct{}
	release chan struct{}
}

func (b *blockingManager) Reload(ctx context.Context) error {
	close(b.entered)
	<-b.release
	return b.FakeManager.Reload(ctx)
}

func TestOrchestrator_RejectsEditsInFlight(t *testing.T) {
	manager := &blockingManager{
		FakeManager: systemdtest.NewFakeManager(),
		entered:     make(chan struct{}),
		release:     make(chan struct{}),
	}
	o := New(Options{Delay: time.Hour, Manager: manager})
	o.Start(context.Background())
	defer o.Stop()

	bmcweb := managed.NewUnit(managed.UnitOptions{Record: record("bmcweb", true, false), Manager: manager, Scheduler: o})
	kcs := managed.NewUnit(managed.UnitOptions{Record: record("phosphor-ipmi-kcs", true, false), Manager: manager, Scheduler: o})
	require.NoError(t, o.Registry().Add(bmcweb))
	require.NoError(t, o.Registry().Add(kcs))

	ctx := context.Background()
	require.NoError(t, bmcweb.RequestEdit(ctx, managed.EnabledEdit(true)))

	done := make(chan *CycleReport)
	go func() {
		report, _ := o.RunCycle(ctx)
		done <- report
	}()
	<-manager.entered

	assert.True(t, o.InFlight())
	err := kcs.RequestEdit(ctx, managed.RunningEdit(true))
	assert.True(t, errors.IsConcurrentEditError(err))
	assert.False(t, kcs.Dirty())
	assert.False(t, o.Armed())

	_, err = o.RunCycle(ctx)
	assert.True(t, errors.IsConcurrentEditError(err))

	close(manager.release)
	report := <-done
	assert.Equal(t, []string{"bmcweb"}, report.Applied)
	assert.False(t, o.InFlight())

	assert.NoError(t, kcs.RequestEdit(ctx, managed.RunningEdit(true)))
	assert.True(t, o.Armed())
}

func TestOrchestrator_OutOfRangePortDoesNotArm(t *testing.T) {
	f := newFixture(t, time.Hour)
	bmcweb := f.addUnit(t, record("bmcweb", true, true), false)

	err := bmcweb.RequestEdit(context.Background(), managed.PortEdit(70000))

	assert.True(t, errors.IsInvalidEditError(err))
	assert.False(t, bmcweb.Dirty())
	assert.False(t, f.orchestrator.Armed())
}

func TestOrchestrator_UnitFailureIsScoped(t *testing.T) {
	f := newFixture(t, time.Hour)
	f.manager.SetProperties("bmcweb.service", &systemd.UnitProperties{UnitFileState: "enabled", SubState: "running"})
	f.manager.SetProperties("obmc-ikvm.service", &systemd.UnitProperties{UnitFileState: "enabled", SubState: "running"})
	bmcweb := f.addUnit(t, record("bmcweb", true, false), false)
	ikvm := f.addUnit(t, record("obmc-ikvm", true, false), false)
	f.manager.Fail["stop bmcweb.service"] = assert.AnError

	ctx := context.Background()
	require.NoError(t, bmcweb.RequestEdit(ctx, managed.EnabledEdit(false)))
	require.NoError(t, ikvm.RequestEdit(ctx, managed.EnabledEdit(false)))
	f.manager.Reset()

	report, err := f.orchestrator.RunCycle(ctx)
	require.NoError(t, err)

	assert.Contains(t, report.Failed, "bmcweb")
	assert.True(t, errors.IsTransportError(report.Failed["bmcweb"]))
	assert.Equal(t, []string{"obmc-ikvm"}, report.Applied)
	assert.Error(t, report.Err())
	assert.True(t, bmcweb.Dirty())
	assert.False(t, ikvm.Dirty())
	assert.NotContains(t, f.manager.Calls(), "restart bmcweb.service")
	assert.Len(t, f.manager.CallsWithPrefix("daemon-reload"), 1)
}

func TestOrchestrator_ReloadFailureContinues(t *testing.T) {
	f := newFixture(t, time.Hour)
	bmcweb := f.addUnit(t, record("bmcweb", true, false), false)
	f.manager.Fail["daemon-reload"] = assert.AnError

	require.NoError(t, bmcweb.RequestEdit(context.Background(), managed.RunningEdit(true)))
	report, err := f.orchestrator.RunCycle(context.Background())
	require.NoError(t, err)

	assert.False(t, report.Reloaded)
	assert.Error(t, report.ReloadError)
	assert.Equal(t, []string{"restart bmcweb.service"}, f.manager.CallsWithPrefix("restart"))
}

func TestOrchestrator_SuppressedUnitKeepsEdits(t *testing.T) {
	f := newFixture(t, time.Hour)
	f.manager.SetProperties("bmcweb.service", &systemd.UnitProperties{UnitFileState: "masked"})
	bmcweb := f.addUnit(t, record("bmcweb", true, true), false)

	require.NoError(t, bmcweb.RequestEdit(context.Background(), managed.PortEdit(8443)))
	f.manager.Reset()

	report, err := f.orchestrator.RunCycle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"bmcweb"}, report.Suppressed)
	assert.True(t, bmcweb.Dirty())
	assert.False(t, report.Reloaded)
	assert.Empty(t, f.manager.Calls())
}

func TestOrchestrator_SuppressedUnitDoesNotBlockOthers(t *testing.T) {
	f := newFixture(t, time.Hour)
	f.manager.SetProperties("bmcweb.service", &systemd.UnitProperties{UnitFileState: "masked"})
	f.manager.SetProperties("obmc-ikvm.service", &systemd.UnitProperties{UnitFileState: "enabled", SubState: "running"})
	bmcweb := f.addUnit(t, record("bmcweb", true, true), false)
	ikvm := f.addUnit(t, record("obmc-ikvm", true, false), false)

	require.NoError(t, bmcweb.RequestEdit(context.Background(), managed.PortEdit(8443)))
	require.NoError(t, ikvm.RequestEdit(context.Background(), managed.EnabledEdit(false)))
	f.manager.Reset()

	report, err := f.orchestrator.RunCycle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"bmcweb"}, report.Suppressed)
	assert.Equal(t, []string{"obmc-ikvm"}, report.Applied)
	assert.True(t, report.Reloaded)
	assert.Contains(t, f.manager.Calls(), "daemon-reload")
	assert.True(t, bmcweb.Dirty())
}

func TestOrchestrator_NothingPending(t *testing.T) {
	f := newFixture(t, time.Hour)
	f.addUnit(t, record("bmcweb", true, false), false)
	f.manager.Reset()

	report, err := f.orchestrator.RunCycle(context.Background())
	require.NoError(t, err)

	assert.Empty(t, report.Dirty)
	assert.Empty(t, f.manager.Calls())
}

func TestOrchestrator_StopCancelsTimer(t *testing.T) {
	f := newFixture(t, 30*time.Millisecond)
	bmcweb := f.addUnit(t, record("bmcweb", true, false), false)

	require.NoError(t, bmcweb.RequestEdit(context.Background(), managed.RunningEdit(true)))
	f.orchestrator.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 0, f.recorder.count())
	assert.True(t, bmcweb.Dirty())
}
