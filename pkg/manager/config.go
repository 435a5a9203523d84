package manager

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/core-tools/hsu-srvcfg/pkg/errors"
	"github.com/core-tools/hsu-srvcfg/pkg/logging"
	"github.com/core-tools/hsu-srvcfg/pkg/managed"
	"github.com/core-tools/hsu-srvcfg/pkg/orchestrator"
	"github.com/core-tools/hsu-srvcfg/pkg/topology"
)

const DefaultConfigFile = "/etc/srvcfg-manager.yaml"

// Backends
const (
	BackendSystemctl = "systemctl"
	BackendDBus      = "dbus"
)

const (
	DefaultControlPort         = 50056
	DefaultStartupPollInterval = 10 * time.Second
)

// Config represents the top-level configuration file structure
type Config struct {
	Manager       ManagerConfigOptions `yaml:"manager"`
	Paths         PathsConfig          `yaml:"paths"`
	Units         []UnitConfig         `yaml:"units"`
	USBCodeUpdate USBCodeUpdateConfig  `yaml:"usb_code_update"`
}

// ManagerConfigOptions represents daemon-level configuration
type ManagerConfigOptions struct {
	LogLevel            string        `yaml:"log_level,omitempty"`
	LogFormat           string        `yaml:"log_format,omitempty"`
	ApplyDelay          time.Duration `yaml:"apply_delay,omitempty"`
	StartupPollInterval time.Duration `yaml:"startup_poll_interval,omitempty"`
	Backend             string        `yaml:"backend,omitempty"`
	ControlPort         *int          `yaml:"control_port,omitempty"` // Pointer to distinguish unset from 0 (disabled)
	MetricsAddress      string        `yaml:"metrics_address,omitempty"`
}

type PathsConfig struct {
	TopologyFile   string `yaml:"topology_file,omitempty"`
	QuarantineFile string `yaml:"quarantine_file,omitempty"`
	OverrideDir    string `yaml:"override_dir,omitempty"`
}

// UnitConfig is one allow-list entry
type UnitConfig struct {
	Name string `yaml:"name"`
	// SocketActivated units spawn a service instance per connection
	SocketActivated bool   `yaml:"socket_activated,omitempty"`
	Policy          string `yaml:"policy,omitempty"`
}

type USBCodeUpdateConfig struct {
	Enabled   bool   `yaml:"enabled"`
	UnitName  string `yaml:"unit_name,omitempty"`
	StateFile string `yaml:"state_file,omitempty"`
	RulesFile string `yaml:"rules_file,omitempty"`
}

// DefaultUnits is the allow-list used when the configuration names none
func DefaultUnits() []UnitConfig {
	return []UnitConfig{
		{Name: "phosphor-ipmi-net"},
		{Name: "bmcweb"},
		{Name: "phosphor-ipmi-kcs"},
		{Name: "obmc-ikvm"},
		{Name: "obmc-console"},
		{Name: "dropbear", SocketActivated: true},
		{Name: "obmc-console-ssh", SocketActivated: true},
		{Name: "ssifbridge"},
	}
}

// LoadConfigFromFile loads configuration from a YAML file and applies defaults
func LoadConfigFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.NewIOError("failed to read configuration file", err).WithContext("filename", filename)
	}

	config, err := ParseConfig(data)
	if err != nil {
		return nil, errors.NewValidationError("failed to parse YAML configuration", err).WithContext("filename", filename)
	}
	return config, nil
}

// ParseConfig decodes YAML and applies defaults
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	setConfigDefaults(&config)
	return &config, nil
}

// DefaultConfig is the configuration used when no file exists
func DefaultConfig() *Config {
	var config Config
	setConfigDefaults(&config)
	return &config
}

// setConfigDefaults applies default values to configuration
func setConfigDefaults(config *Config) {
	// Set manager defaults
	if config.Manager.LogLevel == "" {
		config.Manager.LogLevel = "info"
	}
	if config.Manager.LogFormat == "" {
		config.Manager.LogFormat = "console"
	}
	if config.Manager.ApplyDelay == 0 {
		config.Manager.ApplyDelay = orchestrator.DefaultDelay
	}
	if config.Manager.StartupPollInterval == 0 {
		config.Manager.StartupPollInterval = DefaultStartupPollInterval
	}
	if config.Manager.Backend == "" {
		config.Manager.Backend = BackendSystemctl
	}
	if config.Manager.ControlPort == nil {
		port := DefaultControlPort
		config.Manager.ControlPort = &port
	}

	// Set path defaults
	if config.Paths.TopologyFile == "" {
		config.Paths.TopologyFile = "/etc/srvcfg-mgr.json"
	}
	if config.Paths.QuarantineFile == "" {
		config.Paths.QuarantineFile = "/tmp/srvcfg-mgr.json.bad"
	}
	if config.Paths.OverrideDir == "" {
		config.Paths.OverrideDir = "/etc/systemd/system"
	}

	// Set unit defaults
	if len(config.Units) == 0 {
		config.Units = DefaultUnits()
	}
	for i := range config.Units {
		if config.Units[i].Policy == "" {
			config.Units[i].Policy = managed.PolicyDefault
		}
	}

	// Set USB code update defaults
	if config.USBCodeUpdate.UnitName == "" {
		config.USBCodeUpdate.UnitName = managed.PolicyUSBCodeUpdate
	}
	if config.USBCodeUpdate.StateFile == "" {
		config.USBCodeUpdate.StateFile = "/var/lib/srvcfg_manager/usb-code-update-state"
	}
	if config.USBCodeUpdate.RulesFile == "" {
		config.USBCodeUpdate.RulesFile = "/etc/udev/rules.d/70-bmc-usb.rules"
	}
}

// ValidateConfig validates the entire configuration structure
func ValidateConfig(config *Config) error {
	if config == nil {
		return errors.NewValidationError("configuration cannot be nil", nil)
	}

	// Validate manager configuration
	if err := validateManagerConfig(&config.Manager); err != nil {
		return errors.NewValidationError("invalid manager configuration", err)
	}

	// Validate paths
	if err := validatePathsConfig(&config.Paths); err != nil {
		return errors.NewValidationError("invalid paths configuration", err)
	}

	// Validate allow-list
	if err := validateUnitsConfig(config.Units); err != nil {
		return errors.NewValidationError("invalid units configuration", err)
	}

	if config.USBCodeUpdate.Enabled {
		if err := ValidateUnitName(config.USBCodeUpdate.UnitName); err != nil {
			return errors.NewValidationError("invalid usb code update unit name", err)
		}
		for _, name := range unitNames(config.Units) {
			if name == config.USBCodeUpdate.UnitName {
				return errors.NewValidationError("usb code update unit name collides with an allow-listed unit", nil).
					WithContext("unit", name)
			}
		}
	}

	return nil
}

func validateManagerConfig(config *ManagerConfigOptions) error {
	if _, err := logging.ParseLevel(config.LogLevel); err != nil {
		return err
	}
	if config.LogFormat != "console" && config.LogFormat != "json" {
		return errors.NewValidationError("log format must be console or json", nil).WithContext("log_format", config.LogFormat)
	}
	if err := ValidateTimeout(config.ApplyDelay, "apply delay"); err != nil {
		return err
	}
	if err := ValidateTimeout(config.StartupPollInterval, "startup poll interval"); err != nil {
		return err
	}
	if config.Backend != BackendSystemctl && config.Backend != BackendDBus {
		return errors.NewValidationError("backend must be systemctl or dbus", nil).WithContext("backend", config.Backend)
	}
	if config.ControlPort != nil && *config.ControlPort != 0 {
		if err := ValidatePort(*config.ControlPort); err != nil {
			return err
		}
	}
	if config.MetricsAddress != "" {
		if err := ValidateNetworkAddress(config.MetricsAddress); err != nil {
			return err
		}
	}
	return nil
}

func validatePathsConfig(config *PathsConfig) error {
	if config.TopologyFile == "" {
		return errors.NewValidationError("topology file cannot be empty", nil)
	}
	if config.OverrideDir == "" {
		return errors.NewValidationError("override directory cannot be empty", nil)
	}
	if config.TopologyFile == config.QuarantineFile {
		return errors.NewValidationError("quarantine file must differ from topology file", nil)
	}
	return nil
}

func validateUnitsConfig(units []UnitConfig) error {
	if len(units) == 0 {
		return errors.NewValidationError("at least one unit must be allow-listed", nil)
	}

	seen := make(map[string]bool)
	for i, unit := range units {
		if err := ValidateUnitName(unit.Name); err != nil {
			return errors.NewValidationError(fmt.Sprintf("invalid unit at index %d", i), err).WithContext("unit", unit.Name)
		}
		if seen[unit.Name] {
			return errors.NewValidationError("duplicate unit name", nil).WithContext("unit", unit.Name)
		}
		seen[unit.Name] = true

		if _, ok := managed.PolicyByName(unit.Policy); !ok {
			return errors.NewValidationError("unknown policy", nil).
				WithContext("unit", unit.Name).
				WithContext("policy", unit.Policy)
		}
	}
	return nil
}

// AllowList converts the unit configuration to the topology allow-list
func (c *Config) AllowList() topology.AllowList {
	entries := make([]topology.AllowEntry, 0, len(c.Units))
	for _, u := range c.Units {
		entries = append(entries, topology.AllowEntry{
			Name:            u.Name,
			SocketActivated: u.SocketActivated,
			Policy:          u.Policy,
		})
	}
	return topology.NewAllowList(entries...)
}

// ControlPortValue returns the configured control port, 0 when disabled
func (c *Config) ControlPortValue() int {
	if c.Manager.ControlPort == nil {
		return 0
	}
	return *c.Manager.ControlPort
}

func unitNames(units []UnitConfig) []string {
	names := make([]string, len(units))
	for i, u := range units {
		names[i] = u.Name
	}
	return names
}

// ValidateConfigFile validates a configuration file without running
func ValidateConfigFile(configFile string) (*Config, error) {
	config, err := LoadConfigFromFile(configFile)
	if err != nil {
		return nil, errors.NewIOError("failed to load configuration", err).WithContext("config_file", configFile)
	}
	if err := ValidateConfig(config); err != nil {
		return nil, errors.NewValidationError("configuration validation failed", err).WithContext("config_file", configFile)
	}
	return config, nil
}

// GetConfigSummary returns a human-readable summary of the configuration
func GetConfigSummary(config *Config) ConfigSummary {
	if config == nil {
		return ConfigSummary{Error: "configuration is nil"}
	}

	summary := ConfigSummary{
		LogLevel:       config.Manager.LogLevel,
		Backend:        config.Manager.Backend,
		ApplyDelay:     config.Manager.ApplyDelay.String(),
		ControlPort:    config.ControlPortValue(),
		MetricsAddress: config.Manager.MetricsAddress,
		TopologyFile:   config.Paths.TopologyFile,
		USBCodeUpdate:  config.USBCodeUpdate.Enabled,
		Units:          make([]UnitSummary, 0, len(config.Units)),
	}
	for _, u := range config.Units {
		summary.Units = append(summary.Units, UnitSummary{
			Name:            u.Name,
			SocketActivated: u.SocketActivated,
			Policy:          u.Policy,
		})
	}
	return summary
}

// ConfigSummary provides a high-level overview of configuration
type ConfigSummary struct {
	LogLevel       string        `json:"log_level"`
	Backend        string        `json:"backend"`
	ApplyDelay     string        `json:"apply_delay"`
	ControlPort    int           `json:"control_port"`
	MetricsAddress string        `json:"metrics_address,omitempty"`
	TopologyFile   string        `json:"topology_file"`
	USBCodeUpdate  bool          `json:"usb_code_update"`
	Units          []UnitSummary `json:"units"`
	Error          string        `json:"error,omitempty"`
}

type UnitSummary struct {
	Name            string `json:"name"`
	SocketActivated bool   `json:"socket_activated,omitempty"`
	Policy          string `json:"policy"`
}
