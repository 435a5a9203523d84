package manager

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	corecontrol "github.com/core-tools/hsu-core/pkg/control"
	coredomain "github.com/core-tools/hsu-core/pkg/domain"
	"vawter.tech/stopper"

	"github.com/core-tools/hsu-srvcfg/pkg/control"
	"github.com/core-tools/hsu-srvcfg/pkg/errors"
	"github.com/core-tools/hsu-srvcfg/pkg/logging"
	"github.com/core-tools/hsu-srvcfg/pkg/metrics"
	"github.com/core-tools/hsu-srvcfg/pkg/systemd"
)

const shutdownGracePeriod = 5 * time.Second

type RunOptions struct {
	// ConfigFile is watched for allow-list changes; empty disables the watch
	ConfigFile string
	Config     *Config
	// Backend overrides the configured backend, mainly for tests
	Backend systemd.UnitManager
}

// Run starts the daemon and blocks until ctx is done or a termination signal arrives
func Run(ctx context.Context, options RunOptions, logger logging.Logger) error {
	logger.Infof("Manager runner starting...")

	config := options.Config
	if config == nil {
		var err error
		config, err = ValidateConfigFile(options.ConfigFile)
		if err != nil {
			return err
		}
		logger.Infof("Configuration loaded successfully from %s", options.ConfigFile)
	}

	sctx := stopper.WithContext(ctx)
	startupCtx, cancelStartup := context.WithCancel(sctx)
	defer cancelStartup()

	// Enable signal handling
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	sctx.Defer(func() {
		signal.Stop(sig)
	})

	sctx.Go(func(sctx *stopper.Context) error {
		select {
		case receivedSignal := <-sig:
			logger.Infof("Manager runner received signal: %v", receivedSignal)
		case <-ctx.Done():
			logger.Infof("Manager runner context done")
		case <-sctx.Stopping():
			return nil
		}
		cancelStartup()
		sctx.Stop(shutdownGracePeriod)
		return nil
	})

	backend := options.Backend
	if backend == nil {
		var err error
		backend, err = NewBackend(sctx, config.Manager.Backend, logging.NewChildLogger("systemd: ", logger))
		if err != nil {
			sctx.Stop(0)
			_ = sctx.Wait()
			return err
		}
	}
	defer backend.Close()

	if err := WaitForStartup(startupCtx, backend, config.Manager.StartupPollInterval, logger); err != nil {
		sctx.Stop(0)
		_ = sctx.Wait()
		if errors.IsCancelledError(err) {
			logger.Infof("Manager runner stopped before startup finished")
			return nil
		}
		return err
	}

	m := metrics.New()
	manager, err := NewManager(ManagerOptions{
		Config:  config,
		Backend: backend,
		Metrics: m,
	}, logger)
	if err != nil {
		sctx.Stop(0)
		_ = sctx.Wait()
		return errors.NewInternalError("failed to create manager", err)
	}

	// Apply cycles outlive the stop signal so a started cycle completes
	if err := manager.Start(context.WithoutCancel(sctx)); err != nil {
		sctx.Stop(0)
		_ = sctx.Wait()
		return errors.NewInternalError("failed to start manager", err)
	}
	defer manager.Stop()

	if port := config.ControlPortValue(); port != 0 {
		if err := startControlServer(sctx, port, manager, logger); err != nil {
			sctx.Stop(0)
			_ = sctx.Wait()
			return err
		}
	}

	if config.Manager.MetricsAddress != "" {
		if err := startMetricsServer(sctx, config.Manager.MetricsAddress, m, logger); err != nil {
			sctx.Stop(0)
			_ = sctx.Wait()
			return err
		}
	}

	if options.ConfigFile != "" {
		watcher := NewConfigWatcher(options.ConfigFile, DefaultWatchDebounce, func() {
			if _, err := manager.ReloadConfig(sctx, options.ConfigFile); err != nil {
				logger.Warnf("Hot-add failed, error: %v", err)
			}
		}, logger)
		sctx.Go(watcher.Run)
	}

	logger.Infof("Manager is fully operational, units: %d", manager.Registry().Len())

	err = sctx.Wait()

	logger.Infof("Manager runner stopped")
	return err
}

// startControlServer serves the hsu-core ping service next to the srvcfg service on one gRPC server
func startControlServer(sctx *stopper.Context, port int, manager *Manager, logger logging.Logger) error {
	coreLogger := logging.NewCoreLogger("module: hsu-core , ", logger)
	serverLogger := logging.NewChildLogger("control: ", logger)

	server, err := corecontrol.NewServer(corecontrol.ServerOptions{Port: port}, coreLogger)
	if err != nil {
		return errors.NewIOError("failed to create control server", err).WithContext("port", port)
	}

	// Register core services
	coreHandler := coredomain.NewDefaultHandler(coreLogger)
	corecontrol.RegisterGRPCServerHandler(server.GRPC(), coreHandler, coreLogger)

	// Register business logic services
	control.RegisterGRPCServerHandler(server.GRPC(), NewManagerHandler(manager, serverLogger), serverLogger)

	server.Start(sctx)
	sctx.Go(func(sctx *stopper.Context) error {
		<-sctx.Stopping()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
		defer cancel()
		server.Shutdown(shutdownCtx)
		return nil
	})
	return nil
}

func startMetricsServer(sctx *stopper.Context, address string, m *metrics.Metrics, logger logging.Logger) error {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return errors.NewIOError("failed to listen for metrics", err).WithContext("address", address)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	server := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	sctx.Go(func(sctx *stopper.Context) error {
		logger.Infof("Metrics server listening, address: %s", listener.Addr())
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			return errors.NewInternalError("metrics server failed", err)
		}
		return nil
	})
	sctx.Go(func(sctx *stopper.Context) error {
		<-sctx.Stopping()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return nil
}
