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

// errorTypeKey is the trailer carrying the domain error type of a failed call
const errorTypeKey = "srvcfg-error-type"

func RegisterGRPCServerHandler(grpcServerRegistrar grpc.ServiceRegistrar, handler domain.Contract, logger logging.Logger) {
	proto.RegisterSrvcfgServiceServer(grpcServerRegistrar, &grpcServerHandler{
		handler: handler,
		logger:  logger,
	})
}

type grpcServerHandler struct {
	proto.UnimplementedSrvcfgServiceServer
	handler domain.Contract
	logger  logging.Logger
}

func (h *grpcServerHandler) Status(ctx context.Context, request *proto.StatusRequest) (*proto.StatusResponse, error) {
	s, err := h.handler.Status(ctx)
	if err != nil {
		h.logger.Errorf("Status server handler: %v", err)
		return nil, toStatus(ctx, err)
	}
	h.logger.Debugf("Status server handler done")
	return &proto.StatusResponse{Status: s}, nil
}

func (h *grpcServerHandler) ListUnits(ctx context.Context, request *proto.ListUnitsRequest) (*proto.ListUnitsResponse, error) {
	units, err := h.handler.ListUnits(ctx)
	if err != nil {
		h.logger.Errorf("ListUnits server handler: %v", err)
		return nil, toStatus(ctx, err)
	}
	h.logger.Debugf("ListUnits server handler done, units: %d", len(units))
	response := &proto.ListUnitsResponse{Units: make([]*proto.UnitInfo, 0, len(units))}
	for i := range units {
		response.Units = append(response.Units, unitInfoToProto(&units[i]))
	}
	return response, nil
}

func (h *grpcServerHandler) GetUnit(ctx context.Context, request *proto.GetUnitRequest) (*proto.GetUnitResponse, error) {
	unit, err := h.handler.GetUnit(ctx, request.Name)
	if err != nil {
		h.logger.Errorf("GetUnit server handler, unit: %s, error: %v", request.Name, err)
		return nil, toStatus(ctx, err)
	}
	h.logger.Debugf("GetUnit server handler done, unit: %s", request.Name)
	return &proto.GetUnitResponse{Unit: unitInfoToProto(unit)}, nil
}

func (h *grpcServerHandler) SetProperty(ctx context.Context, request *proto.SetPropertyRequest) (*proto.SetPropertyResponse, error) {
	err := h.handler.SetProperty(ctx, request.Name, request.Property, request.Value)
	if err != nil {
		h.logger.Warnf("SetProperty server handler, unit: %s, property: %s, value: %s, error: %v",
			request.Name, request.Property, request.Value, err)
		return nil, toStatus(ctx, err)
	}
	h.logger.Debugf("SetProperty server handler done, unit: %s, property: %s, value: %s",
		request.Name, request.Property, request.Value)
	return &proto.SetPropertyResponse{}, nil
}

// toStatus maps a domain error to a gRPC status and reports its type in the trailer
func toStatus(ctx context.Context, err error) error {
	errorType := errors.TypeOf(err)
	if errorType != "" {
		_ = grpc.SetTrailer(ctx, metadata.Pairs(errorTypeKey, string(errorType)))
	}
	return status.Error(codeOf(errorType), err.Error())
}

func codeOf(errorType errors.ErrorType) codes.Code {
	switch errorType {
	case errors.ErrorTypeValidation, errors.ErrorTypeInvalidEdit:
		return codes.InvalidArgument
	case errors.ErrorTypeNotFound:
		return codes.NotFound
	case errors.ErrorTypeConflict:
		return codes.FailedPrecondition
	case errors.ErrorTypeConcurrentEdit, errors.ErrorTypeTransport:
		return codes.Unavailable
	case errors.ErrorTypeCancelled:
		return codes.Canceled
	default:
		return codes.Internal
	}
}
