package manager

import (
	"context"
	"os"
	"testing"
	"time"

	corecontrol "github.com/core-tools/hsu-core/pkg/control"
	"github.com/phayes/freeport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/core-tools/hsu-srvcfg/pkg/control"
	"github.com/core-tools/hsu-srvcfg/pkg/logging"
	"github.com/core-tools/hsu-srvcfg/pkg/systemd/systemdtest"
)

func TestRun_StopsOnContextDone(t *testing.T) {
	config := testConfig(t.TempDir())
	disabled := 0
	config.Manager.ControlPort = &disabled
	config.Manager.MetricsAddress = "127.0.0.1:0"

	backend := systemdtest.NewFakeManager()
	backend.AddUnit("bmcweb.service", "loaded", "running")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, RunOptions{Config: config, Backend: backend}, &TestLogger{})
	}()

	require.Eventually(t, func() bool {
		_, err := os.Stat(config.Paths.TopologyFile)
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("runner did not stop")
	}
	assert.Contains(t, backend.Calls(), "startup-finished")
	assert.Contains(t, backend.Calls(), "list-units")
}

func TestRun_ServesControlEndpoint(t *testing.T) {
	port, err := freeport.GetFreePort()
	require.NoError(t, err)

	config := testConfig(t.TempDir())
	config.Manager.ControlPort = &port
	config.Manager.MetricsAddress = ""

	backend := systemdtest.NewFakeManager()
	backend.AddUnit("bmcweb.service", "loaded", "running")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, RunOptions{Config: config, Backend: backend}, &TestLogger{})
	}()

	logger := &TestLogger{}
	coreLogger := logging.NewCoreLogger("", logger)
	connection, err := corecontrol.NewConnection(corecontrol.ConnectionOptions{AttachPort: port}, coreLogger)
	require.NoError(t, err)
	defer connection.Shutdown()

	coreClient := corecontrol.NewGRPCClientGateway(connection.GRPC(), coreLogger)
	require.Eventually(t, func() bool {
		return coreClient.Ping(context.Background()) == nil
	}, 5*time.Second, 20*time.Millisecond)

	client := control.NewGRPCClientGateway(connection.GRPC(), logger)
	status, err := client.Status(context.Background())
	require.NoError(t, err)
	assert.Contains(t, status, "units: ")

	cancel()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("runner did not stop")
	}
}

func TestRun_InvalidConfigFile(t *testing.T) {
	path := writeConfigFile(t, t.TempDir(), "manager:\n  backend: upstart\n")
	err := Run(context.Background(), RunOptions{ConfigFile: path}, &TestLogger{})
	assert.Error(t, err)
}
