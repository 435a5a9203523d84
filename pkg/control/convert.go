package control

import (
	"github.com/core-tools/hsu-srvcfg/pkg/domain"
	"github.com/core-tools/hsu-srvcfg/pkg/generated/api/proto"
)

func unitInfoToProto(unit *domain.UnitInfo) *proto.UnitInfo {
	if unit == nil {
		return nil
	}
	return &proto.UnitInfo{
		Name:          unit.Name,
		BaseName:      unit.BaseName,
		InstanceName:  unit.InstanceName,
		HasService:    unit.HasService,
		HasSocket:     unit.HasSocket,
		FanOut:        unit.FanOut,
		Policy:        unit.Policy,
		UnitFileState: unit.UnitFileState,
		SubState:      unit.SubState,
		Masked:        unit.Masked,
		Enabled:       unit.Enabled,
		Running:       unit.Running,
		Protocol:      unit.Protocol,
		Port:          uint32(unit.Port),
		Pending:       unit.Pending,
		Suppressed:    unit.Suppressed,
	}
}

func unitInfoFromProto(unit *proto.UnitInfo) domain.UnitInfo {
	return domain.UnitInfo{
		Name:          unit.GetName(),
		BaseName:      unit.GetBaseName(),
		InstanceName:  unit.GetInstanceName(),
		HasService:    unit.GetHasService(),
		HasSocket:     unit.GetHasSocket(),
		FanOut:        unit.GetFanOut(),
		Policy:        unit.GetPolicy(),
		UnitFileState: unit.GetUnitFileState(),
		SubState:      unit.GetSubState(),
		Masked:        unit.GetMasked(),
		Enabled:       unit.GetEnabled(),
		Running:       unit.GetRunning(),
		Protocol:      unit.GetProtocol(),
		Port:          uint16(unit.GetPort()),
		Pending:       unit.GetPending(),
		Suppressed:    unit.GetSuppressed(),
	}
}
