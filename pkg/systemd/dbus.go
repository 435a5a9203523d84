package systemd

import (
	"context"
	"fmt"

	sdbus "github.com/coreos/go-systemd/v22/dbus"

	"github.com/core-tools/hsu-srvcfg/pkg/errors"
	"github.com/core-tools/hsu-srvcfg/pkg/logging"
	"github.com/core-tools/hsu-srvcfg/pkg/units"
)

// jobModeReplace queues the job replacing conflicting ones, as systemctl does
const jobModeReplace = "replace"

// DBusClient implements UnitManager over the systemd1 bus API
type DBusClient struct {
	conn   *sdbus.Conn
	logger logging.Logger
}

// NewDBusClient connects to the system bus
func NewDBusClient(ctx context.Context, logger logging.Logger) (*DBusClient, error) {
	conn, err := sdbus.NewSystemConnectionContext(ctx)
	if err != nil {
		return nil, errors.NewTransportError("failed to connect to systemd over D-Bus", err)
	}
	return &DBusClient{conn: conn, logger: logger}, nil
}

func (c *DBusClient) ListUnits(ctx context.Context) ([]UnitStatus, error) {
	list, err := c.conn.ListUnitsContext(ctx)
	if err != nil {
		return nil, errors.NewTransportError("ListUnits failed", err)
	}
	result := make([]UnitStatus, 0, len(list))
	for _, u := range list {
		result = append(result, UnitStatus{
			Name:       u.Name,
			LoadState:  u.LoadState,
			SubState:   u.SubState,
			ObjectPath: string(u.Path),
		})
	}
	return result, nil
}

func (c *DBusClient) GetProperties(ctx context.Context, unitName string, kind units.Kind) (*UnitProperties, error) {
	unitProps, err := c.conn.GetUnitTypePropertiesContext(ctx, unitName, "Unit")
	if err != nil {
		return nil, errors.NewTransportError("failed to get unit properties", err).WithContext("unit", unitName)
	}
	props := &UnitProperties{}
	props.UnitFileState, _ = unitProps["UnitFileState"].(string)
	props.SubState, _ = unitProps["SubState"].(string)

	if kind != units.KindSocket {
		return props, nil
	}
	socketProps, err := c.conn.GetUnitTypePropertiesContext(ctx, unitName, "Socket")
	if err != nil {
		return nil, errors.NewTransportError("failed to get socket properties", err).WithContext("unit", unitName)
	}
	props.Listen = decodeListen(socketProps["Listen"])
	return props, nil
}

// decodeListen converts an a(ss) variant value
func decodeListen(value interface{}) []ListenAddress {
	var entries [][]interface{}
	switch v := value.(type) {
	case [][]interface{}:
		entries = v
	case []interface{}:
		for _, e := range v {
			if pair, ok := e.([]interface{}); ok {
				entries = append(entries, pair)
			}
		}
	}

	var result []ListenAddress
	for _, pair := range entries {
		if len(pair) != 2 {
			continue
		}
		listenType, ok1 := pair[0].(string)
		address, ok2 := pair[1].(string)
		if ok1 && ok2 {
			result = append(result, ListenAddress{Type: listenType, Address: address})
		}
	}
	return result
}

func (c *DBusClient) UnitAction(ctx context.Context, unitName string, action Action) error {
	done := make(chan string, 1)
	var err error
	switch action {
	case ActionStart:
		_, err = c.conn.StartUnitContext(ctx, unitName, jobModeReplace, done)
	case ActionStop:
		_, err = c.conn.StopUnitContext(ctx, unitName, jobModeReplace, done)
	case ActionRestart:
		_, err = c.conn.RestartUnitContext(ctx, unitName, jobModeReplace, done)
	default:
		return errors.NewValidationError("unsupported unit action", nil).WithContext("action", string(action))
	}
	if err != nil {
		return errors.NewTransportError(string(action)+" failed", err).WithContext("unit", unitName)
	}

	select {
	case result := <-done:
		if result != "done" {
			return errors.NewTransportError(fmt.Sprintf("%s job finished with result %q", action, result), nil).WithContext("unit", unitName)
		}
		return nil
	case <-ctx.Done():
		return errors.NewCancelledError(string(action)+" wait cancelled", ctx.Err()).WithContext("unit", unitName)
	}
}

func (c *DBusClient) SetUnitFilesState(ctx context.Context, unitFiles []string, currentState string, masked, enabled bool) error {
	return applyFileState(ctx, c, unitFiles, currentState, masked, enabled)
}

func (c *DBusClient) mask(ctx context.Context, files []string) error {
	if _, err := c.conn.MaskUnitFilesContext(ctx, files, false, true); err != nil {
		return errors.NewTransportError("MaskUnitFiles failed", err).WithContext("units", files)
	}
	return nil
}

func (c *DBusClient) unmask(ctx context.Context, files []string) error {
	if _, err := c.conn.UnmaskUnitFilesContext(ctx, files, false); err != nil {
		return errors.NewTransportError("UnmaskUnitFiles failed", err).WithContext("units", files)
	}
	return nil
}

func (c *DBusClient) enable(ctx context.Context, files []string) error {
	if _, _, err := c.conn.EnableUnitFilesContext(ctx, files, false, true); err != nil {
		return errors.NewTransportError("EnableUnitFiles failed", err).WithContext("units", files)
	}
	return nil
}

func (c *DBusClient) disable(ctx context.Context, files []string) error {
	if _, err := c.conn.DisableUnitFilesContext(ctx, files, false); err != nil {
		return errors.NewTransportError("DisableUnitFiles failed", err).WithContext("units", files)
	}
	return nil
}

func (c *DBusClient) Reload(ctx context.Context) error {
	if err := c.conn.ReloadContext(ctx); err != nil {
		return errors.NewTransportError("Reload failed", err)
	}
	return nil
}

func (c *DBusClient) StartupFinished(ctx context.Context) (bool, error) {
	value, err := c.conn.GetManagerProperty("FinishTimestampMonotonic")
	if err != nil {
		return false, errors.NewTransportError("failed to read FinishTimestampMonotonic", err)
	}
	return finishTimestampSet(value)
}

func (c *DBusClient) Close() error {
	c.conn.Close()
	return nil
}
