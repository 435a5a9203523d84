package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/core-tools/hsu-srvcfg/pkg/logging"
	"github.com/core-tools/hsu-srvcfg/pkg/manager"
)

type flagOptions struct {
	Config   string `long:"config" default:"/etc/srvcfg-manager.yaml" description:"path to the configuration file"`
	LogLevel string `long:"log-level" description:"overrides manager.log_level (debug, info, warn, error)"`
	Validate bool   `long:"validate" description:"validate the configuration and exit"`
}

func main() {
	var opts flagOptions
	var argv []string = os.Args[1:]
	var parser = flags.NewParser(&opts, flags.HelpFlag)
	var err error
	_, err = parser.ParseArgs(argv)
	if err != nil {
		fmt.Printf("Command line flags parsing failed: %v\n", err)
		os.Exit(1)
	}

	config, err := loadConfig(opts.Config)
	if err != nil {
		fmt.Printf("Configuration failed: %v\n", err)
		os.Exit(1)
	}
	if opts.LogLevel != "" {
		config.Manager.LogLevel = opts.LogLevel
		if err := manager.ValidateConfig(config); err != nil {
			fmt.Printf("Configuration failed: %v\n", err)
			os.Exit(1)
		}
	}

	if opts.Validate {
		summary, _ := json.MarshalIndent(manager.GetConfigSummary(config), "", "  ")
		fmt.Printf("Configuration is valid\n%s\n", summary)
		return
	}

	backend, err := logging.NewZapBackend(logging.ZapConfig{
		Level:  config.Manager.LogLevel,
		Format: config.Manager.LogFormat,
		Output: "stderr",
	})
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer backend.Sync()

	logger := backend.Logger("module: srvcfg-manager , ")
	logger.Infof("opts: %+v", opts)

	runOptions := manager.RunOptions{Config: config}
	if _, err := os.Stat(opts.Config); err == nil {
		runOptions.ConfigFile = opts.Config
	}

	if err := manager.Run(context.Background(), runOptions, logger); err != nil {
		logger.Errorf("Manager failed: %v", err)
		backend.Sync()
		os.Exit(1)
	}
}

// loadConfig falls back to the defaults when the file does not exist
func loadConfig(path string) (*manager.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		config := manager.DefaultConfig()
		return config, manager.ValidateConfig(config)
	}
	return manager.ValidateConfigFile(path)
}
