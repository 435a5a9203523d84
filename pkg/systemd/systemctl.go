package systemd

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/core-tools/hsu-srvcfg/pkg/errors"
	"github.com/core-tools/hsu-srvcfg/pkg/logging"
	"github.com/core-tools/hsu-srvcfg/pkg/units"
)

// CommandRunner executes a command and returns its stdout
type CommandRunner func(ctx context.Context, name string, args ...string) (string, error)

// SystemctlClient implements UnitManager by shelling out to systemctl
type SystemctlClient struct {
	// SystemctlPath is the path to systemctl binary
	SystemctlPath string

	// Timeout for each systemctl invocation
	Timeout time.Duration

	run    CommandRunner
	logger logging.Logger
}

// NewSystemctlClient creates a client using the systemctl found in PATH
func NewSystemctlClient(logger logging.Logger) *SystemctlClient {
	return &SystemctlClient{
		SystemctlPath: "systemctl",
		Timeout:       30 * time.Second,
		run:           execCommand,
		logger:        logger,
	}
}

// WithRunner replaces command execution, mainly for tests
func (c *SystemctlClient) WithRunner(run CommandRunner) *SystemctlClient {
	c.run = run
	return c
}

func execCommand(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w (stderr: %s)", err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

func (c *SystemctlClient) systemctl(ctx context.Context, args ...string) (string, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}
	c.logger.Debugf("Running systemctl, args: %v", args)
	output, err := c.run(ctx, c.SystemctlPath, args...)
	if err != nil {
		return "", errors.NewTransportError("systemctl "+args[0]+" failed", err).WithContext("args", args)
	}
	return output, nil
}

// ListUnits lists every unit systemd has loaded, including inactive ones
func (c *SystemctlClient) ListUnits(ctx context.Context) ([]UnitStatus, error) {
	output, err := c.systemctl(ctx, "list-units", "--all", "--full", "--plain", "--no-legend", "--no-pager")
	if err != nil {
		return nil, err
	}
	return parseListUnits(output), nil
}

// parseListUnits reads "UNIT LOAD ACTIVE SUB DESCRIPTION" rows
func parseListUnits(output string) []UnitStatus {
	var result []UnitStatus
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		// Failed and not-found units carry a leading status glyph
		if len(fields) > 0 && (fields[0] == "●" || fields[0] == "*") {
			fields = fields[1:]
		}
		if len(fields) < 4 {
			continue
		}
		result = append(result, UnitStatus{
			Name:       fields[0],
			LoadState:  fields[1],
			SubState:   fields[3],
			ObjectPath: UnitObjectPath(fields[0]),
		})
	}
	return result
}

// GetProperties runs "systemctl show" for the properties the manager needs
func (c *SystemctlClient) GetProperties(ctx context.Context, unitName string, kind units.Kind) (*UnitProperties, error) {
	props := "UnitFileState,SubState"
	if kind == units.KindSocket {
		props += ",Listen"
	}
	output, err := c.systemctl(ctx, "show", unitName, "--property="+props, "--no-pager")
	if err != nil {
		return nil, err
	}
	return parseShow(output), nil
}

// parseShow reads key=value lines; Listen lines look like "Listen=[::]:22 (Stream)"
func parseShow(output string) *UnitProperties {
	props := &UnitProperties{}
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		parts := strings.SplitN(scanner.Text(), "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		switch key {
		case "UnitFileState":
			props.UnitFileState = value
		case "SubState":
			props.SubState = value
		case "Listen":
			if listen, ok := parseListenValue(value); ok {
				props.Listen = append(props.Listen, listen)
			}
		}
	}
	return props
}

func parseListenValue(value string) (ListenAddress, bool) {
	open := strings.LastIndex(value, " (")
	if open < 0 || !strings.HasSuffix(value, ")") {
		return ListenAddress{}, false
	}
	return ListenAddress{
		Type:    value[open+2 : len(value)-1],
		Address: value[:open],
	}, true
}

// UnitAction starts, stops or restarts a unit
func (c *SystemctlClient) UnitAction(ctx context.Context, unitName string, action Action) error {
	_, err := c.systemctl(ctx, string(action), unitName)
	return err
}

// SetUnitFilesState masks, unmasks, enables or disables unit files
func (c *SystemctlClient) SetUnitFilesState(ctx context.Context, unitFiles []string, currentState string, masked, enabled bool) error {
	return applyFileState(ctx, c, unitFiles, currentState, masked, enabled)
}

func (c *SystemctlClient) fileCommand(ctx context.Context, verb string, files []string) error {
	_, err := c.systemctl(ctx, append([]string{verb}, files...)...)
	return err
}

func (c *SystemctlClient) mask(ctx context.Context, files []string) error {
	return c.fileCommand(ctx, "mask", files)
}

func (c *SystemctlClient) unmask(ctx context.Context, files []string) error {
	return c.fileCommand(ctx, "unmask", files)
}

func (c *SystemctlClient) enable(ctx context.Context, files []string) error {
	return c.fileCommand(ctx, "enable", files)
}

func (c *SystemctlClient) disable(ctx context.Context, files []string) error {
	return c.fileCommand(ctx, "disable", files)
}

// Reload runs daemon-reload
func (c *SystemctlClient) Reload(ctx context.Context) error {
	_, err := c.systemctl(ctx, "daemon-reload")
	return err
}

// StartupFinished checks the manager's FinishTimestampMonotonic
func (c *SystemctlClient) StartupFinished(ctx context.Context) (bool, error) {
	output, err := c.systemctl(ctx, "show", "--property=FinishTimestampMonotonic", "--value")
	if err != nil {
		return false, err
	}
	return finishTimestampSet(output)
}

func finishTimestampSet(value string) (bool, error) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return false, nil
	}
	ts, err := strconv.ParseUint(fields[len(fields)-1], 10, 64)
	if err != nil {
		return false, errors.NewTransportError("unexpected FinishTimestamp value", err).WithContext("value", value)
	}
	return ts != 0, nil
}

// Close is a no-op for the systemctl backend
func (c *SystemctlClient) Close() error {
	return nil
}
