package manager

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/core-tools/hsu-srvcfg/pkg/control"
	"github.com/core-tools/hsu-srvcfg/pkg/domain"
	"github.com/core-tools/hsu-srvcfg/pkg/errors"
	"github.com/core-tools/hsu-srvcfg/pkg/logging"
)

func TestManagerHandler(t *testing.T) {
	f := newManagerFixture(t, nil)
	require.NoError(t, f.manager.Start(context.Background()))
	handler := NewManagerHandler(f.manager, &TestLogger{})
	ctx := context.Background()

	status, err := handler.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, "running, units: 3, in_flight: false", status)

	infos, err := handler.ListUnits(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 3)
	assert.Equal(t, "bmcweb", infos[0].Name)
	assert.Equal(t, uint16(443), infos[0].Port)
	assert.Equal(t, "Stream", infos[0].Protocol)
	assert.True(t, infos[1].FanOut)
	assert.Equal(t, "ttyS2", infos[2].InstanceName)
	assert.Zero(t, infos[2].Port)

	require.NoError(t, handler.SetProperty(ctx, "bmcweb", "Port", "8443"))
	info, err := handler.GetUnit(ctx, "bmcweb")
	require.NoError(t, err)
	assert.Equal(t, uint16(8443), info.Port)
	assert.Equal(t, []string{"Port"}, info.Pending)

	_, err = handler.GetUnit(ctx, "nope")
	assert.True(t, errors.IsNotFoundError(err))

	err = handler.SetProperty(ctx, "nope", "Port", "22")
	assert.True(t, errors.IsNotFoundError(err))

	err = handler.SetProperty(ctx, "bmcweb", "Port", "70000")
	assert.True(t, errors.IsInvalidEditError(err))

	err = handler.SetProperty(ctx, "bmcweb", "Colour", "blue")
	assert.True(t, errors.IsValidationError(err))

	err = handler.SetProperty(ctx, "obmc-console@ttyS2", "Port", "2200")
	assert.True(t, errors.IsInvalidEditError(err))
}

func TestManagerHandler_OverControlServer(t *testing.T) {
	f := newManagerFixture(t, nil)
	require.NoError(t, f.manager.Start(context.Background()))

	listener := bufconn.Listen(1 << 20)
	logger := logging.NewNopLogger()
	server := grpc.NewServer()
	control.RegisterGRPCServerHandler(server, NewManagerHandler(f.manager, logger), logger)
	go func() {
		_ = server.Serve(listener)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	var client domain.Contract = control.NewGRPCClientGateway(conn, logger)
	ctx := context.Background()

	require.NoError(t, client.SetProperty(ctx, "dropbear", "Masked", "true"))
	info, err := client.GetUnit(ctx, "dropbear")
	require.NoError(t, err)
	assert.True(t, info.Masked)
	assert.False(t, info.Enabled)
	assert.False(t, info.Running)

	err = client.SetProperty(ctx, "bmcweb", "Port", "70000")
	assert.True(t, errors.IsInvalidEditError(err))

	_, err = client.GetUnit(ctx, "nope")
	assert.True(t, errors.IsNotFoundError(err))
}
