package manager

import (
	"context"
	"fmt"

	"github.com/core-tools/hsu-srvcfg/pkg/domain"
	"github.com/core-tools/hsu-srvcfg/pkg/errors"
	"github.com/core-tools/hsu-srvcfg/pkg/logging"
	"github.com/core-tools/hsu-srvcfg/pkg/managed"
)

// NewManagerHandler exposes the manager over domain.Contract
func NewManagerHandler(manager *Manager, logger logging.Logger) domain.Contract {
	return &managerHandler{
		manager: manager,
		logger:  logger,
	}
}

type managerHandler struct {
	manager *Manager
	logger  logging.Logger
}

func (h *managerHandler) Status(ctx context.Context) (string, error) {
	return fmt.Sprintf("%s, units: %d, in_flight: %t",
		h.manager.State(), h.manager.Registry().Len(), h.manager.Orchestrator().InFlight()), nil
}

func (h *managerHandler) ListUnits(ctx context.Context) ([]domain.UnitInfo, error) {
	all := h.manager.Registry().Units()
	infos := make([]domain.UnitInfo, 0, len(all))
	for _, unit := range all {
		infos = append(infos, UnitInfoFromView(unit.View()))
	}
	return infos, nil
}

func (h *managerHandler) GetUnit(ctx context.Context, name string) (*domain.UnitInfo, error) {
	unit, err := h.unit(name)
	if err != nil {
		return nil, err
	}
	info := UnitInfoFromView(unit.View())
	return &info, nil
}

func (h *managerHandler) SetProperty(ctx context.Context, name, property, value string) error {
	unit, err := h.unit(name)
	if err != nil {
		return err
	}
	edit, err := managed.ParseEdit(property, value)
	if err != nil {
		return err
	}
	h.logger.Debugf("Setting property, unit: %s, property: %s, value: %s", name, property, value)
	return unit.RequestEdit(ctx, edit)
}

func (h *managerHandler) unit(name string) (*managed.Unit, error) {
	unit, ok := h.manager.Registry().Get(name)
	if !ok {
		return nil, errors.NewNotFoundError("unit not found", nil).WithContext("unit", name)
	}
	return unit, nil
}

// UnitInfoFromView converts a unit view to its wire form
func UnitInfoFromView(view managed.View) domain.UnitInfo {
	info := domain.UnitInfo{
		Name:          view.Name,
		BaseName:      view.BaseName,
		InstanceName:  view.InstanceName,
		HasService:    view.HasService,
		HasSocket:     view.HasSocket,
		FanOut:        view.FanOut,
		Policy:        view.Policy,
		UnitFileState: view.UnitFileState,
		SubState:      view.SubState,
		Masked:        view.State.Masked,
		Enabled:       view.State.Enabled,
		Running:       view.State.Running,
		Suppressed:    view.Suppressed,
	}
	if view.HasSocket {
		info.Protocol = view.State.Protocol
		info.Port = view.State.Port
	}
	for _, f := range view.Pending.Fields() {
		info.Pending = append(info.Pending, f.String())
	}
	return info
}

var _ domain.Contract = (*managerHandler)(nil)
