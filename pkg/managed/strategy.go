package managed

import (
	"context"

	"github.com/core-tools/hsu-srvcfg/pkg/systemd"
	"github.com/core-tools/hsu-srvcfg/pkg/topology"
	"github.com/core-tools/hsu-srvcfg/pkg/units"
)

// StopStrategy knows which unit files make up a managed unit and how to stop
// and restart them
type StopStrategy interface {
	Name() string
	Stop(ctx context.Context, manager systemd.UnitManager, rec topology.Record) error
	Restart(ctx context.Context, manager systemd.UnitManager, rec topology.Record) error
	// UnitFiles lists the unit files whose file state follows Masked and Enabled
	UnitFiles(rec topology.Record) []string
}

// NewStopStrategy picks the fan-out strategy for socket-activated units
func NewStopStrategy(fanOut bool) StopStrategy {
	if fanOut {
		return fanOutStrategy{}
	}
	return directStrategy{}
}

// directStrategy handles a service with an optional socket
type directStrategy struct{}

func (directStrategy) Name() string { return "direct" }

func (directStrategy) Stop(ctx context.Context, manager systemd.UnitManager, rec topology.Record) error {
	if rec.HasSocket() {
		if err := manager.UnitAction(ctx, socketUnit(rec), systemd.ActionStop); err != nil {
			return err
		}
	}
	if rec.HasService() {
		return manager.UnitAction(ctx, serviceUnit(rec), systemd.ActionStop)
	}
	return nil
}

func (directStrategy) Restart(ctx context.Context, manager systemd.UnitManager, rec topology.Record) error {
	if rec.HasSocket() {
		if err := manager.UnitAction(ctx, socketUnit(rec), systemd.ActionRestart); err != nil {
			return err
		}
	}
	if rec.HasService() {
		return manager.UnitAction(ctx, serviceUnit(rec), systemd.ActionRestart)
	}
	return nil
}

func (directStrategy) UnitFiles(rec topology.Record) []string {
	switch {
	case !rec.HasSocket():
		return []string{serviceUnit(rec)}
	case !rec.HasService():
		return []string{socketUnit(rec)}
	default:
		return []string{socketUnit(rec), serviceUnit(rec)}
	}
}

// fanOutStrategy handles a socket that spawns one service instance per
// connection. The instances are never tracked, so stopping relists the live
// units to find them, and restarting only touches the socket.
type fanOutStrategy struct{}

func (fanOutStrategy) Name() string { return "fan-out" }

func (fanOutStrategy) Stop(ctx context.Context, manager systemd.UnitManager, rec topology.Record) error {
	if rec.HasSocket() {
		if err := manager.UnitAction(ctx, socketUnit(rec), systemd.ActionStop); err != nil {
			return err
		}
	}

	live, err := manager.ListUnits(ctx)
	if err != nil {
		return err
	}
	for _, unit := range live {
		id := units.Classify(unit.Name)
		if id.Kind != units.KindService || id.BaseName != rec.BaseName || id.InstanceName == "" {
			continue
		}
		if unit.SubState != systemd.SubStateRunning {
			continue
		}
		if err := manager.UnitAction(ctx, unit.Name, systemd.ActionStop); err != nil {
			return err
		}
	}
	return nil
}

func (fanOutStrategy) Restart(ctx context.Context, manager systemd.UnitManager, rec topology.Record) error {
	if !rec.HasSocket() {
		return nil
	}
	return manager.UnitAction(ctx, socketUnit(rec), systemd.ActionRestart)
}

func (fanOutStrategy) UnitFiles(rec topology.Record) []string {
	if !rec.HasSocket() {
		return []string{serviceUnit(rec)}
	}
	return []string{socketUnit(rec)}
}

func serviceUnit(rec topology.Record) string {
	return units.ServiceUnitName(rec.InstantiatedName())
}

func socketUnit(rec topology.Record) string {
	return units.SocketUnitName(rec.InstantiatedName())
}
