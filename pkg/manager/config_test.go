package manager

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/core-tools/hsu-srvcfg/pkg/errors"
	"github.com/core-tools/hsu-srvcfg/pkg/managed"
)

// Simple test logger that implements logging.Logger interface
type TestLogger struct{}

func (l *TestLogger) LogLevelf(level int, format string, args ...interface{}) {}
func (l *TestLogger) Debugf(format string, args ...interface{})               {}
func (l *TestLogger) Infof(format string, args ...interface{})                {}
func (l *TestLogger) Warnf(format string, args ...interface{})                {}
func (l *TestLogger) Errorf(format string, args ...interface{})               {}

func writeConfigFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "srvcfg-manager.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	tests := []struct {
		name        string
		configYAML  string
		expectError bool
		validate    func(*testing.T, *Config)
	}{
		{
			name: "valid comprehensive config",
			configYAML: `
manager:
  log_level: debug
  log_format: json
  apply_delay: 2s
  startup_poll_interval: 1s
  backend: dbus
  control_port: 50100
  metrics_address: 127.0.0.1:9180

paths:
  topology_file: /run/srvcfg/topology.json
  quarantine_file: /run/srvcfg/topology.json.bad
  override_dir: /run/systemd/system

units:
  - name: bmcweb
  - name: dropbear
    socket_activated: true
    policy: coupled

usb_code_update:
  enabled: true
  state_file: /run/srvcfg/usb-state
`,
			validate: func(t *testing.T, config *Config) {
				assert.Equal(t, "debug", config.Manager.LogLevel)
				assert.Equal(t, "json", config.Manager.LogFormat)
				assert.Equal(t, 2*time.Second, config.Manager.ApplyDelay)
				assert.Equal(t, time.Second, config.Manager.StartupPollInterval)
				assert.Equal(t, BackendDBus, config.Manager.Backend)
				assert.Equal(t, 50100, config.ControlPortValue())
				assert.Equal(t, "127.0.0.1:9180", config.Manager.MetricsAddress)
				assert.Equal(t, "/run/srvcfg/topology.json", config.Paths.TopologyFile)
				assert.Equal(t, "/run/systemd/system", config.Paths.OverrideDir)

				require.Len(t, config.Units, 2)
				assert.Equal(t, managed.PolicyDefault, config.Units[0].Policy)
				assert.True(t, config.Units[1].SocketActivated)
				assert.Equal(t, managed.PolicyCoupled, config.Units[1].Policy)

				assert.True(t, config.USBCodeUpdate.Enabled)
				assert.Equal(t, "usb-code-update", config.USBCodeUpdate.UnitName)
				assert.Equal(t, "/run/srvcfg/usb-state", config.USBCodeUpdate.StateFile)
				assert.Equal(t, "/etc/udev/rules.d/70-bmc-usb.rules", config.USBCodeUpdate.RulesFile)
			},
		},
		{
			name:       "empty config gets defaults",
			configYAML: "",
			validate: func(t *testing.T, config *Config) {
				assert.Equal(t, "info", config.Manager.LogLevel)
				assert.Equal(t, "console", config.Manager.LogFormat)
				assert.Equal(t, 15*time.Second, config.Manager.ApplyDelay)
				assert.Equal(t, 10*time.Second, config.Manager.StartupPollInterval)
				assert.Equal(t, BackendSystemctl, config.Manager.Backend)
				assert.Equal(t, DefaultControlPort, config.ControlPortValue())
				assert.Equal(t, "/etc/srvcfg-mgr.json", config.Paths.TopologyFile)
				assert.Equal(t, "/tmp/srvcfg-mgr.json.bad", config.Paths.QuarantineFile)
				assert.Equal(t, "/etc/systemd/system", config.Paths.OverrideDir)
				assert.Equal(t, DefaultUnits()[0].Name, config.Units[0].Name)
				assert.Len(t, config.Units, 8)
				assert.False(t, config.USBCodeUpdate.Enabled)
			},
		},
		{
			name: "control port zero disables the control surface",
			configYAML: `
manager:
  control_port: 0
`,
			validate: func(t *testing.T, config *Config) {
				assert.Equal(t, 0, config.ControlPortValue())
			},
		},
		{
			name:        "invalid yaml",
			configYAML:  "manager: [unclosed",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, t.TempDir(), tt.configYAML)

			config, err := LoadConfigFromFile(path)
			if tt.expectError {
				assert.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			tt.validate(t, config)
		})
	}
}

func TestLoadConfigFromFile_Missing(t *testing.T) {
	_, err := LoadConfigFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.True(t, errors.IsIOError(err))
}

func TestDefaultUnitsSocketActivated(t *testing.T) {
	fanOut := map[string]bool{}
	for _, u := range DefaultUnits() {
		if u.SocketActivated {
			fanOut[u.Name] = true
		}
	}
	assert.Equal(t, map[string]bool{"dropbear": true, "obmc-console-ssh": true}, fanOut)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		shouldErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"bad_log_level", func(c *Config) { c.Manager.LogLevel = "verbose" }, true},
		{"bad_log_format", func(c *Config) { c.Manager.LogFormat = "xml" }, true},
		{"negative_delay", func(c *Config) { c.Manager.ApplyDelay = -time.Second }, true},
		{"unknown_backend", func(c *Config) { c.Manager.Backend = "upstart" }, true},
		{"bad_control_port", func(c *Config) { p := 70000; c.Manager.ControlPort = &p }, true},
		{"bad_metrics_address", func(c *Config) { c.Manager.MetricsAddress = "localhost" }, true},
		{"metrics_any_host", func(c *Config) { c.Manager.MetricsAddress = ":9180" }, false},
		{"same_quarantine", func(c *Config) { c.Paths.QuarantineFile = c.Paths.TopologyFile }, true},
		{"empty_override_dir", func(c *Config) { c.Paths.OverrideDir = "" }, true},
		{"no_units", func(c *Config) { c.Units = nil }, true},
		{"duplicate_unit", func(c *Config) { c.Units = append(c.Units, UnitConfig{Name: "bmcweb", Policy: "default"}) }, true},
		{"unit_with_suffix", func(c *Config) { c.Units[0].Name = "bmcweb.service" }, true},
		{"unknown_policy", func(c *Config) { c.Units[0].Policy = "eager" }, true},
		{"usb_collides", func(c *Config) {
			c.USBCodeUpdate.Enabled = true
			c.USBCodeUpdate.UnitName = "bmcweb"
		}, true},
		{"usb_enabled", func(c *Config) { c.USBCodeUpdate.Enabled = true }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(config)

			err := ValidateConfig(config)
			if tt.shouldErr {
				assert.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateConfig_Nil(t *testing.T) {
	assert.Error(t, ValidateConfig(nil))
}

func TestConfigAllowList(t *testing.T) {
	config := DefaultConfig()
	config.Units = []UnitConfig{
		{Name: "bmcweb", Policy: managed.PolicyDefault},
		{Name: "dropbear", SocketActivated: true, Policy: managed.PolicyCoupled},
	}

	allow := config.AllowList()
	require.Len(t, allow, 2)
	assert.True(t, allow["dropbear"].SocketActivated)
	assert.Equal(t, managed.PolicyCoupled, allow["dropbear"].Policy)
	assert.False(t, allow["bmcweb"].SocketActivated)
}

func TestValidateConfigFile(t *testing.T) {
	dir := t.TempDir()

	valid := writeConfigFile(t, dir, "units:\n  - name: bmcweb\n")
	config, err := ValidateConfigFile(valid)
	require.NoError(t, err)
	assert.Len(t, config.Units, 1)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("manager:\n  backend: upstart\n"), 0644))
	_, err = ValidateConfigFile(invalid)
	assert.True(t, errors.IsValidationError(err))
}

func TestGetConfigSummary(t *testing.T) {
	assert.Equal(t, "configuration is nil", GetConfigSummary(nil).Error)

	summary := GetConfigSummary(DefaultConfig())
	assert.Equal(t, "15s", summary.ApplyDelay)
	assert.Equal(t, DefaultControlPort, summary.ControlPort)
	assert.Len(t, summary.Units, 8)
	assert.Equal(t, "dropbear", summary.Units[5].Name)
	assert.True(t, summary.Units[5].SocketActivated)
}
