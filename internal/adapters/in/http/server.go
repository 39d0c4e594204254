package http

import (
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/generated/servers"
	"dispatch/internal/metrics"
	"dispatch/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

var _ servers.ServerInterface = (*Server)(nil)

// Handlers groups the use cases the HTTP surface exposes.
type Handlers struct {
	CreateOrder    commands.CreateOrderCommandHandler
	MarkOrderReady commands.MarkOrderReadyCommandHandler
	CancelOrder    commands.CancelOrderCommandHandler

	CreateDriver      commands.CreateDriverCommandHandler
	CreateVehicle     commands.CreateVehicleCommandHandler
	SetDriverApproval commands.SetDriverApprovalCommandHandler
	SetResourceActive commands.SetResourceActiveCommandHandler

	AssignDelivery        commands.AssignDeliveryCommandHandler
	AdvanceDeliveryStatus commands.AdvanceDeliveryStatusCommandHandler
	RecordPosition        commands.RecordPositionCommandHandler
	AttachProof           commands.AttachProofCommandHandler
	UploadProof           commands.UploadProofCommandHandler
	SetVerification       commands.SetVerificationCommandHandler

	GetOrder          queries.GetOrderQueryHandler
	ListReadyOrders   queries.ListReadyOrdersQueryHandler
	ListDrivers       queries.ListDriversQueryHandler
	ListVehicles      queries.ListVehiclesQueryHandler
	AvailableDrivers  queries.AvailableDriversQueryHandler
	AvailableVehicles queries.AvailableVehiclesQueryHandler
	GetDelivery       queries.GetDeliveryQueryHandler
	ListDeliveries    queries.ListDeliveriesQueryHandler
	GetTimeline       queries.GetTimelineQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h       Handlers
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewServer accepts a nil metrics; observations are then dropped.
func NewServer(handlers Handlers, m *metrics.Metrics, logger *slog.Logger) *Server {
	return &Server{
		h:       handlers,
		metrics: m,
		logger:  logger.With("component", "http"),
	}
}

func toID(name string, id openapi_types.UUID) (kernel.UUID, error) {
	parsed, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return parsed, nil
}
