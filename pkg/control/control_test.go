package control

import (
	"context"
	"net"
	"testing"
	"time"

	corecontrol "github.com/core-tools/hsu-core/pkg/control"
	coredomain "github.com/core-tools/hsu-core/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/core-tools/hsu-srvcfg/pkg/domain"
	"github.com/core-tools/hsu-srvcfg/pkg/errors"
	"github.com/core-tools/hsu-srvcfg/pkg/generated/api/proto"
	"github.com/core-tools/hsu-srvcfg/pkg/logging"
)

// MockContract is a mock implementation of domain.Contract for testing
type MockContract struct {
	mock.Mock
}

func (m *MockContract) Status(ctx context.Context) (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockContract) ListUnits(ctx context.Context) ([]domain.UnitInfo, error) {
	args := m.Called()
	units, _ := args.Get(0).([]domain.UnitInfo)
	return units, args.Error(1)
}

func (m *MockContract) GetUnit(ctx context.Context, name string) (*domain.UnitInfo, error) {
	args := m.Called(name)
	unit, _ := args.Get(0).(*domain.UnitInfo)
	return unit, args.Error(1)
}

func (m *MockContract) SetProperty(ctx context.Context, name, property, value string) error {
	args := m.Called(name, property, value)
	return args.Error(0)
}

// startTestConnection serves the core ping service and handler on one in-memory gRPC server
func startTestConnection(t *testing.T, handler domain.Contract) grpc.ClientConnInterface {
	listener := bufconn.Listen(1 << 20)
	logger := logging.NewNopLogger()
	coreLogger := logging.NewCoreLogger("", logger)

	server := grpc.NewServer()
	corecontrol.RegisterGRPCServerHandler(server, coredomain.NewDefaultHandler(coreLogger), coreLogger)
	RegisterGRPCServerHandler(server, handler, logger)
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
	return conn
}

func startTestServer(t *testing.T, handler domain.Contract) domain.Contract {
	return NewGRPCClientGateway(startTestConnection(t, handler), logging.NewNopLogger())
}

func TestControl_CorePingSharesServer(t *testing.T) {
	handler := &MockContract{}
	conn := startTestConnection(t, handler)
	coreLogger := logging.NewCoreLogger("", logging.NewNopLogger())

	coreClient := corecontrol.NewGRPCClientGateway(conn, coreLogger)
	err := coredomain.RetryPing(context.Background(), coreClient, coredomain.RetryPingOptions{
		RetryAttempts: 3,
		RetryInterval: 10 * time.Millisecond,
	}, coreLogger)
	assert.NoError(t, err)
	handler.AssertExpectations(t)
}

func TestControl_ServesGeneratedService(t *testing.T) {
	handler := &MockContract{}
	handler.On("GetUnit", "bmcweb").Return(&domain.UnitInfo{Name: "bmcweb", HasSocket: true, Port: 443, Pending: []string{"Port"}}, nil)
	conn := startTestConnection(t, handler)

	client := proto.NewSrvcfgServiceClient(conn)
	response, err := client.GetUnit(context.Background(), &proto.GetUnitRequest{Name: "bmcweb"})
	require.NoError(t, err)
	assert.Equal(t, "bmcweb", response.GetUnit().GetName())
	assert.Equal(t, uint32(443), response.GetUnit().GetPort())
	assert.Equal(t, []string{"Port"}, response.GetUnit().GetPending())
	assert.Equal(t, "/proto.SrvcfgService/GetUnit", proto.SrvcfgService_GetUnit_FullMethodName)
}

func TestControl_NotFoundMapsToGRPCCode(t *testing.T) {
	handler := &MockContract{}
	handler.On("GetUnit", "nope").Return(nil, errors.NewNotFoundError("unit not found", nil))
	conn := startTestConnection(t, handler)

	_, err := proto.NewSrvcfgServiceClient(conn).GetUnit(context.Background(), &proto.GetUnitRequest{Name: "nope"})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestControl_Status(t *testing.T) {
	handler := &MockContract{}
	handler.On("Status").Return("running, units: 2", nil)
	client := startTestServer(t, handler)

	s, err := client.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "running, units: 2", s)
	handler.AssertExpectations(t)
}

func TestControl_ListAndGet(t *testing.T) {
	units := []domain.UnitInfo{
		{Name: "bmcweb", BaseName: "bmcweb", HasService: true, HasSocket: true, Enabled: true, Running: true, Protocol: "Stream", Port: 443},
		{Name: "obmc-console@ttyS2", BaseName: "obmc-console", InstanceName: "ttyS2", HasService: true, Masked: true},
	}
	handler := &MockContract{}
	handler.On("ListUnits").Return(units, nil)
	handler.On("GetUnit", "bmcweb").Return(&units[0], nil)
	client := startTestServer(t, handler)

	listed, err := client.ListUnits(context.Background())
	require.NoError(t, err)
	assert.Equal(t, units, listed)

	unit, err := client.GetUnit(context.Background(), "bmcweb")
	require.NoError(t, err)
	assert.Equal(t, units[0], *unit)
}

func TestControl_ErrorTypesRoundTrip(t *testing.T) {
	handler := &MockContract{}
	handler.On("GetUnit", "nope").Return(nil, errors.NewNotFoundError("unit not found", nil))
	handler.On("SetProperty", "bmcweb", "Port", "70000").Return(errors.NewInvalidEditError("port 70000 out of range 1-65535", nil))
	handler.On("SetProperty", "bmcweb", "Running", "true").Return(errors.NewConcurrentEditError("apply cycle in flight", nil))
	handler.On("SetProperty", "bmcweb", "Enabled", "true").Return(nil)
	client := startTestServer(t, handler)
	ctx := context.Background()

	_, err := client.GetUnit(ctx, "nope")
	assert.True(t, errors.IsNotFoundError(err))

	err = client.SetProperty(ctx, "bmcweb", "Port", "70000")
	assert.True(t, errors.IsInvalidEditError(err))
	assert.Contains(t, err.Error(), "out of range")

	err = client.SetProperty(ctx, "bmcweb", "Running", "true")
	assert.True(t, errors.IsConcurrentEditError(err))

	assert.NoError(t, client.SetProperty(ctx, "bmcweb", "Enabled", "true"))
	handler.AssertExpectations(t)
}
