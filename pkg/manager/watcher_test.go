package manager

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"vawter.tech/stopper"
)

func startWatcher(t *testing.T, path string, onChange func()) {
	t.Helper()
	sctx := stopper.WithContext(context.Background())
	watcher := NewConfigWatcher(path, 20*time.Millisecond, onChange, &TestLogger{})
	sctx.Go(watcher.Run)
	t.Cleanup(func() {
		sctx.Stop(time.Second)
		assert.NoError(t, sctx.Wait())
	})
}

func TestConfigWatcher_FileWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, "units:\n  - name: bmcweb\n")

	changed := make(chan struct{}, 16)
	startWatcher(t, path, func() { changed <- struct{}{} })

	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("units:\n  - name: bmcweb\n  - name: ssifbridge\n"), 0644)
		select {
		case <-changed:
			return true
		default:
			return false
		}
	}, 5*time.Second, 100*time.Millisecond)
}

func TestConfigWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, "units:\n  - name: bmcweb\n")

	changed := make(chan struct{}, 16)
	startWatcher(t, path, func() { changed <- struct{}{} })

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.yaml"), []byte("x: 1\n"), 0644))

	select {
	case <-changed:
		t.Fatal("unexpected change notification")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestConfigWatcher_HotAdd(t *testing.T) {
	f := newManagerFixture(t, func(c *Config) {
		c.Units = []UnitConfig{{Name: "bmcweb", Policy: "default"}}
	})
	require.NoError(t, f.manager.Start(context.Background()))
	path := writeConfigFile(t, f.dir, "units:\n  - name: bmcweb\n")

	startWatcher(t, path, func() {
		_, _ = f.manager.ReloadConfig(context.Background(), path)
	})

	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("units:\n  - name: bmcweb\n  - name: obmc-console\n"), 0644)
		return f.manager.Registry().Contains("obmc-console@ttyS2")
	}, 5*time.Second, 100*time.Millisecond)
}
