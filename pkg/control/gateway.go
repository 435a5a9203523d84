package control

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/core-tools/hsu-srvcfg/pkg/domain"
	"github.com/core-tools/hsu-srvcfg/pkg/errors"
	"github.com/core-tools/hsu-srvcfg/pkg/generated/api/proto"
	"github.com/core-tools/hsu-srvcfg/pkg/logging"
)

func NewGRPCClientGateway(grpcClientConnection grpc.ClientConnInterface, logger logging.Logger) domain.Contract {
	grpcClient := proto.NewSrvcfgServiceClient(grpcClientConnection)
	return &grpcClientGateway{
		grpcClient: grpcClient,
		logger:     logger,
	}
}

type grpcClientGateway struct {
	grpcClient proto.SrvcfgServiceClient
	logger     logging.Logger
}

func (gw *grpcClientGateway) Status(ctx context.Context) (string, error) {
	var trailer metadata.MD
	response, err := gw.grpcClient.Status(ctx, &proto.StatusRequest{}, grpc.Trailer(&trailer))
	if err != nil {
		gw.logger.Errorf("Status client gateway: %v", err)
		return "", fromStatus(err, trailer)
	}
	gw.logger.Debugf("Status client gateway done")
	return response.GetStatus(), nil
}

func (gw *grpcClientGateway) ListUnits(ctx context.Context) ([]domain.UnitInfo, error) {
	var trailer metadata.MD
	response, err := gw.grpcClient.ListUnits(ctx, &proto.ListUnitsRequest{}, grpc.Trailer(&trailer))
	if err != nil {
		gw.logger.Errorf("ListUnits client gateway: %v", err)
		return nil, fromStatus(err, trailer)
	}
	units := make([]domain.UnitInfo, 0, len(response.GetUnits()))
	for _, unit := range response.GetUnits() {
		units = append(units, unitInfoFromProto(unit))
	}
	gw.logger.Debugf("ListUnits client gateway done, units: %d", len(units))
	return units, nil
}

func (gw *grpcClientGateway) GetUnit(ctx context.Context, name string) (*domain.UnitInfo, error) {
	var trailer metadata.MD
	response, err := gw.grpcClient.GetUnit(ctx, &proto.GetUnitRequest{Name: name}, grpc.Trailer(&trailer))
	if err != nil {
		gw.logger.Errorf("GetUnit client gateway: %v", err)
		return nil, fromStatus(err, trailer)
	}
	if response.GetUnit() == nil {
		return nil, errors.NewInternalError("empty unit in response", nil).WithContext("unit", name)
	}
	unit := unitInfoFromProto(response.GetUnit())
	gw.logger.Debugf("GetUnit client gateway done, unit: %s", name)
	return &unit, nil
}

func (gw *grpcClientGateway) SetProperty(ctx context.Context, name, property, value string) error {
	var trailer metadata.MD
	request := &proto.SetPropertyRequest{Name: name, Property: property, Value: value}
	if _, err := gw.grpcClient.SetProperty(ctx, request, grpc.Trailer(&trailer)); err != nil {
		gw.logger.Errorf("SetProperty client gateway: %v", err)
		return fromStatus(err, trailer)
	}
	gw.logger.Debugf("SetProperty client gateway done, unit: %s, property: %s", name, property)
	return nil
}

// fromStatus turns a failed call back into a domain error
func fromStatus(err error, trailer metadata.MD) error {
	s := status.Convert(err)
	if values := trailer.Get(errorTypeKey); len(values) > 0 {
		return errors.NewDomainError(errors.ErrorType(values[0]), s.Message(), nil)
	}
	switch s.Code() {
	case codes.Unavailable:
		return errors.NewTransportError("control call failed", err)
	case codes.Canceled, codes.DeadlineExceeded:
		return errors.NewCancelledError("control call cancelled", err)
	default:
		return errors.NewInternalError("control call failed", err)
	}
}
