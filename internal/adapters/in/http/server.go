package http

import (
	"errors"
	"net/http"

	"docflow/internal/core/application/usecases/commands"
	"docflow/internal/core/application/usecases/queries"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/order"
	"docflow/internal/generated/servers"
	"docflow/internal/metrics"
	"docflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	startGenerationHandler      commands.StartGenerationCommandHandler
	approveVersionHandler       commands.ApproveVersionCommandHandler
	requestRegenerationHandler  commands.RequestRegenerationCommandHandler
	requestClientInputHandler   commands.RequestClientInputCommandHandler
	submitClientResponseHandler commands.SubmitClientResponseCommandHandler
	deliverOrderHandler         commands.DeliverOrderCommandHandler
	processDeliveriesHandler    commands.ProcessPendingDeliveriesCommandHandler
	overrideTransitionHandler   commands.OverrideTransitionCommandHandler
	cancelOrderHandler          commands.CancelOrderCommandHandler
	archiveOrderHandler         commands.ArchiveOrderCommandHandler
	setPriorityHandler          commands.SetPriorityCommandHandler
	addNoteHandler              commands.AddNoteCommandHandler
	reopenVersionsHandler       commands.ReopenVersionsCommandHandler

	// Query handlers
	listOrdersHandler  queries.ListOrdersQueryHandler
	getOrderHandler    queries.GetOrderQueryHandler
	getTimelineHandler queries.GetTimelineQueryHandler
	getVersionsHandler queries.GetDocumentVersionsQueryHandler
	getPipelineHandler queries.GetPipelineQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	startGenerationHandler commands.StartGenerationCommandHandler,
	approveVersionHandler commands.ApproveVersionCommandHandler,
	requestRegenerationHandler commands.RequestRegenerationCommandHandler,
	requestClientInputHandler commands.RequestClientInputCommandHandler,
	submitClientResponseHandler commands.SubmitClientResponseCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	processDeliveriesHandler commands.ProcessPendingDeliveriesCommandHandler,
	overrideTransitionHandler commands.OverrideTransitionCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	archiveOrderHandler commands.ArchiveOrderCommandHandler,
	setPriorityHandler commands.SetPriorityCommandHandler,
	addNoteHandler commands.AddNoteCommandHandler,
	reopenVersionsHandler commands.ReopenVersionsCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getTimelineHandler queries.GetTimelineQueryHandler,
	getVersionsHandler queries.GetDocumentVersionsQueryHandler,
	getPipelineHandler queries.GetPipelineQueryHandler,
) *Server {
	return &Server{
		startGenerationHandler:      startGenerationHandler,
		approveVersionHandler:       approveVersionHandler,
		requestRegenerationHandler:  requestRegenerationHandler,
		requestClientInputHandler:   requestClientInputHandler,
		submitClientResponseHandler: submitClientResponseHandler,
		deliverOrderHandler:         deliverOrderHandler,
		processDeliveriesHandler:    processDeliveriesHandler,
		overrideTransitionHandler:   overrideTransitionHandler,
		cancelOrderHandler:          cancelOrderHandler,
		archiveOrderHandler:         archiveOrderHandler,
		setPriorityHandler:          setPriorityHandler,
		addNoteHandler:              addNoteHandler,
		reopenVersionsHandler:       reopenVersionsHandler,
		listOrdersHandler:           listOrdersHandler,
		getOrderHandler:             getOrderHandler,
		getTimelineHandler:          getTimelineHandler,
		getVersionsHandler:          getVersionsHandler,
		getPipelineHandler:          getPipelineHandler,
	}
}

// statusCodeFor maps an application error to an HTTP status code using the
// sentinel classes every concrete error unwraps to.
func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrVersionLocked),
		errors.Is(err, errs.ErrStaleVersion),
		errors.Is(err, errs.ErrConcurrentModification):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx echo.Context, err error) error {
	code := statusCodeFor(err)
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: err.Error(),
	})
}

func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func orderIDFromParam(orderId openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(orderId[:])
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ListOrders handles GET /api/v1/orders - active orders, most urgent first.
func (s *Server) ListOrders(ctx echo.Context) error {
	query := queries.NewListOrdersQuery()

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = servers.OrderSummary{
			Id:                o.ID.Bytes(),
			ServiceCode:       o.ServiceCode,
			Status:            o.Status,
			Priority:          o.Priority,
			FastTrack:         o.FastTrack,
			SlaLabel:          o.SLALabel,
			RemainingSeconds:  int64(o.Remaining.Seconds()),
			RegenerationCount: o.RegenerationCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPipeline handles GET /api/v1/pipeline - cached per-status counts.
func (s *Server) GetPipeline(ctx echo.Context) error {
	query := queries.NewGetPipelineQuery()

	counts, refreshedAt, err := s.getPipelineHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	statuses := make([]servers.PipelineStatusCount, len(counts))
	for i, c := range counts {
		statuses[i] = servers.PipelineStatusCount{
			Status: c.Status,
			Count:  c.Count,
		}
	}

	return ctx.JSON(http.StatusOK, servers.Pipeline{
		RefreshedAt: refreshedAt,
		Statuses:    statuses,
	})
}

// GetOrder handles GET /api/v1/orders/{orderId} - full order detail.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := orderIDFromParam(orderId)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id: "+err.Error())
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := servers.OrderDetail{
		Id:                detail.ID.Bytes(),
		ServiceCode:       detail.ServiceCode,
		PriceAmount:       detail.PriceAmount,
		PriceCurrency:     detail.PriceCurrency,
		Status:            detail.Status,
		Priority:          detail.Priority,
		FastTrack:         detail.FastTrack,
		VersionLocked:     detail.VersionLocked,
		Archived:          detail.Archived,
		SlaHours:          detail.SLAHours,
		SlaLabel:          detail.SLALabel,
		RemainingSeconds:  int64(detail.Remaining.Seconds()),
		RegenerationCount: detail.RegenerationCount,
		StateEnteredAt:    detail.StateEnteredAt,
		PausedAt:          detail.PausedAt,
		CreatedAt:         detail.CreatedAt,
		UpdatedAt:         detail.UpdatedAt,
	}

	if detail.ClientInput != nil {
		responses := make([]servers.ClientInputResponse, len(detail.ClientInput.Responses))
		for i, r := range detail.ClientInput.Responses {
			responses[i] = servers.ClientInputResponse{
				Version:     r.Version,
				Payload:     r.Payload,
				SubmittedAt: r.SubmittedAt,
			}
		}
		response.ClientInput = &servers.ClientInputRequest{
			RequestNotes:    detail.ClientInput.RequestNotes,
			RequestedFields: detail.ClientInput.RequestedFields,
			DeadlineDays:    detail.ClientInput.DeadlineDays,
			RequestedAt:     detail.ClientInput.RequestedAt,
			RequestedBy:     detail.ClientInput.RequestedBy,
			Responses:       responses,
		}
	}

	if detail.Postal != nil {
		response.Postal = &servers.PostalDelivery{
			Recipient:      detail.Postal.Recipient,
			Address:        detail.Postal.Address,
			TrackingNumber: optional(detail.Postal.TrackingNumber),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderTimeline handles GET /api/v1/orders/{orderId}/timeline - audit events, oldest first.
func (s *Server) GetOrderTimeline(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := orderIDFromParam(orderId)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetTimelineQuery(orderID)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id: "+err.Error())
	}

	events, err := s.getTimelineHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.TimelineEvent, len(events))
	for i, e := range events {
		response[i] = servers.TimelineEvent{
			ExecutionId: e.ExecutionID.Bytes(),
			Actor:       e.Actor,
			Kind:        e.Kind,
			FromStatus:  optional(e.FromStatus),
			ToStatus:    optional(e.ToStatus),
			Action:      optional(e.Action),
			Reason:      optional(e.Reason),
			Notes:       optional(e.Notes),
			VersionRef:  e.VersionRef,
			Timestamp:   e.Timestamp,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderVersions handles GET /api/v1/orders/{orderId}/versions - version history, oldest first.
func (s *Server) GetOrderVersions(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := orderIDFromParam(orderId)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetDocumentVersionsQuery(orderID)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id: "+err.Error())
	}

	versions, err := s.getVersionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.DocumentVersion, len(versions))
	for i, v := range versions {
		files := make([]servers.FileRef, len(v.Files))
		for j, f := range v.Files {
			files[j] = servers.FileRef{
				Name:        f.Name,
				ContentType: f.ContentType,
				SizeBytes:   f.SizeBytes,
				Url:         optional(f.URL),
			}
		}
		response[i] = servers.DocumentVersion{
			Number:            v.Number,
			Status:            v.Status,
			Approved:          v.Approved,
			RegenerationNotes: optional(v.RegenerationNotes),
			GeneratedAt:       v.GeneratedAt,
			Files:             files,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// StartGeneration handles POST /api/v1/orders/{orderId}/start - dispatches generation.
func (s *Server) StartGeneration(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := orderIDFromParam(orderId)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewStartGenerationCommand(orderID)
	if err != nil {
		return writeBadRequest(ctx, "Invalid request: "+err.Error())
	}

	if handleErr := s.startGenerationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// ApproveVersion handles POST /api/v1/orders/{orderId}/approve - approves a document version.
func (s *Server) ApproveVersion(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := orderIDFromParam(orderId)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body servers.ApproveVersionJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewApproveVersionCommand(orderID, body.VersionNumber, body.Actor, orEmpty(body.Notes))
	if err != nil {
		return writeBadRequest(ctx, "Invalid approval data: "+err.Error())
	}

	if handleErr := s.approveVersionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RequestRegeneration handles POST /api/v1/orders/{orderId}/regenerate - starts a correction cycle.
func (s *Server) RequestRegeneration(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := orderIDFromParam(orderId)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body servers.RequestRegenerationJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	var affectedSections, guardrails []string
	if body.AffectedSections != nil {
		affectedSections = *body.AffectedSections
	}
	if body.Guardrails != nil {
		guardrails = *body.Guardrails
	}

	cmd, err := commands.NewRequestRegenerationCommand(
		orderID,
		body.Actor,
		body.Reason,
		body.CorrectionNotes,
		affectedSections,
		guardrails,
	)
	if err != nil {
		return writeBadRequest(ctx, "Invalid regeneration data: "+err.Error())
	}

	if handleErr := s.requestRegenerationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// RequestClientInput handles POST /api/v1/orders/{orderId}/client-input/request -
// pauses the order until the client responds.
func (s *Server) RequestClientInput(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := orderIDFromParam(orderId)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body servers.RequestClientInputJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	var requestedFields []string
	if body.RequestedFields != nil {
		requestedFields = *body.RequestedFields
	}

	cmd, err := commands.NewRequestClientInputCommand(
		orderID,
		body.Actor,
		body.Notes,
		requestedFields,
		body.DeadlineDays,
	)
	if err != nil {
		return writeBadRequest(ctx, "Invalid client input request: "+err.Error())
	}

	if handleErr := s.requestClientInputHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitClientResponse handles POST /api/v1/orders/{orderId}/client-input/response -
// records the client's answers and resumes the order.
func (s *Server) SubmitClientResponse(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := orderIDFromParam(orderId)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body servers.SubmitClientResponseJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSubmitClientResponseCommand(orderID, body.Payload)
	if err != nil {
		return writeBadRequest(ctx, "Invalid client response: "+err.Error())
	}

	if handleErr := s.submitClientResponseHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ProcessDeliveries handles POST /api/v1/deliveries/process - runs delivery for
// every finalising order, the same batch the scheduled job performs.
func (s *Server) ProcessDeliveries(ctx echo.Context) error {
	cmd := commands.NewProcessPendingDeliveriesCommand()

	if handleErr := s.processDeliveriesHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeliverOrder handles POST /api/v1/orders/{orderId}/deliver - runs delivery for a finalising order.
func (s *Server) DeliverOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := orderIDFromParam(orderId)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID)
	if err != nil {
		return writeBadRequest(ctx, "Invalid request: "+err.Error())
	}

	if handleErr := s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OverrideStatus handles POST /api/v1/orders/{orderId}/override - applies a manual
// transition outside the automatic flow.
func (s *Server) OverrideStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := orderIDFromParam(orderId)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body servers.OverrideStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(body.Target)
	if err != nil {
		return writeBadRequest(ctx, "Invalid target status: "+err.Error())
	}

	cmd, err := commands.NewOverrideTransitionCommand(orderID, target, body.Actor, body.Reason, orEmpty(body.Notes))
	if err != nil {
		return writeBadRequest(ctx, "Invalid override data: "+err.Error())
	}

	if handleErr := s.overrideTransitionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	metrics.OverridesTotal.Inc()

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel - cancels a not-yet-finalising order.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := orderIDFromParam(orderId)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body servers.CancelOrderJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, body.Actor, body.Reason)
	if err != nil {
		return writeBadRequest(ctx, "Invalid cancellation data: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ArchiveOrder handles POST /api/v1/orders/{orderId}/archive - flips the archival flag.
func (s *Server) ArchiveOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := orderIDFromParam(orderId)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body servers.ArchiveOrderJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewArchiveOrderCommand(orderID, body.Actor, body.Archived, body.Reason)
	if err != nil {
		return writeBadRequest(ctx, "Invalid archival data: "+err.Error())
	}

	if handleErr := s.archiveOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetPriority handles POST /api/v1/orders/{orderId}/priority - updates priority and
// fast-track flags.
func (s *Server) SetPriority(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := orderIDFromParam(orderId)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body servers.SetPriorityJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetPriorityCommand(orderID, body.Actor, body.Priority, body.FastTrack, body.Reason)
	if err != nil {
		return writeBadRequest(ctx, "Invalid priority data: "+err.Error())
	}

	if handleErr := s.setPriorityHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddNote handles POST /api/v1/orders/{orderId}/notes - appends an audited note.
func (s *Server) AddNote(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := orderIDFromParam(orderId)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body servers.AddNoteJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddNoteCommand(orderID, body.Actor, body.Note, body.VersionRef)
	if err != nil {
		return writeBadRequest(ctx, "Invalid note data: "+err.Error())
	}

	if handleErr := s.addNoteHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReopenVersions handles POST /api/v1/orders/{orderId}/reopen - clears the version
// lock of a completed order.
func (s *Server) ReopenVersions(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := orderIDFromParam(orderId)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body servers.ReopenVersionsJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReopenVersionsCommand(orderID, body.Actor, body.Reason)
	if err != nil {
		return writeBadRequest(ctx, "Invalid reopen data: "+err.Error())
	}

	if handleErr := s.reopenVersionsHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}
