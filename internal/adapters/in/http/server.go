// Package http is the inbound HTTP adapter. It translates echo requests
// into commands and queries and maps domain errors onto status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"launderly/internal/core/application/usecases/commands"
	"launderly/internal/core/application/usecases/queries"
	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/core/domain/model/order"
	"launderly/internal/core/domain/model/request"
	"launderly/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createPickupHandler  commands.CreatePickupCommandHandler
	advanceHandler       commands.AdvanceRequestCommandHandler
	intakeHandler        commands.IntakeOrderCommandHandler
	submitCountsHandler  commands.SubmitCountsCommandHandler
	raiseBypassHandler   commands.RaiseBypassCommandHandler
	resolveBypassHandler commands.ResolveBypassCommandHandler
	processOrderHandler  commands.ProcessOrderCommandHandler
	completeOrderHandler commands.CompleteOrderCommandHandler

	getRequestsHandler        queries.GetRequestsQueryHandler
	getPendingBypassesHandler queries.GetPendingBypassOrdersQueryHandler
	getOrderHandler           queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createPickupHandler commands.CreatePickupCommandHandler,
	advanceHandler commands.AdvanceRequestCommandHandler,
	intakeHandler commands.IntakeOrderCommandHandler,
	submitCountsHandler commands.SubmitCountsCommandHandler,
	raiseBypassHandler commands.RaiseBypassCommandHandler,
	resolveBypassHandler commands.ResolveBypassCommandHandler,
	processOrderHandler commands.ProcessOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	getRequestsHandler queries.GetRequestsQueryHandler,
	getPendingBypassesHandler queries.GetPendingBypassOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createPickupHandler:       createPickupHandler,
		advanceHandler:            advanceHandler,
		intakeHandler:             intakeHandler,
		submitCountsHandler:       submitCountsHandler,
		raiseBypassHandler:        raiseBypassHandler,
		resolveBypassHandler:      resolveBypassHandler,
		processOrderHandler:       processOrderHandler,
		completeOrderHandler:      completeOrderHandler,
		getRequestsHandler:        getRequestsHandler,
		getPendingBypassesHandler: getPendingBypassesHandler,
		getOrderHandler:           getOrderHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/pickups", s.CreatePickup)
	api.PATCH("/request", s.AdvanceRequest)
	api.GET("/request", s.GetRequests)
	api.POST("/order/create/:orderId", s.IntakeOrder)
	api.PUT("/order/:orderId/counts", s.SubmitCounts)
	api.POST("/order/:orderId/process", s.ProcessOrder)
	api.POST("/order/:orderId/complete", s.CompleteOrder)
	api.GET("/order/:orderId", s.GetOrder)
	api.PATCH("/bypass/:orderId", s.RaiseBypass)
	api.PATCH("/bypass/:orderId/resolve", s.ResolveBypass)
	api.GET("/bypass", s.GetPendingBypasses)
}

// ErrorResponse is the JSON error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusFor maps application errors to HTTP status codes.
// Unrecognized errors become 500s.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrVersionConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, order.ErrProcessingBlocked),
		errors.Is(err, order.ErrBypassNotAllowed),
		errors.Is(err, order.ErrBypassAlreadyOpen),
		errors.Is(err, order.ErrNoOpenBypass),
		errors.Is(err, order.ErrDeliveryAlreadyScheduled):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func fail(ctx echo.Context, err error) error {
	code := statusFor(err)
	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreatePickupRequest is the body for POST /api/v1/pickups.
type CreatePickupRequest struct {
	CustomerName string  `json:"customerName"`
	AddressLine  string  `json:"addressLine"`
	DistanceKm   float64 `json:"distanceKm"`
}

// CreatePickupResponse carries the generated errand id.
type CreatePickupResponse struct {
	RequestID string `json:"requestId"`
}

// CreatePickup handles POST /api/v1/pickups - registers a pickup errand.
func (s *Server) CreatePickup(ctx echo.Context) error {
	var body CreatePickupRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	address, err := kernel.NewAddress(body.AddressLine, body.DistanceKm)
	if err != nil {
		return badRequest(ctx, err)
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewCreatePickupCommand(requestID, body.CustomerName, address)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.createPickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatePickupResponse{RequestID: requestID.String()})
}

// AdvanceRequestBody is the body for PATCH /api/v1/request.
// ExpectedVersion is optional; zero skips the staleness check.
type AdvanceRequestBody struct {
	RequestID       string `json:"requestId"`
	Type            string `json:"type"`
	ExpectedVersion int    `json:"expectedVersion,omitempty"`
}

// AdvanceRequest handles PATCH /api/v1/request - advances an errand one step.
func (s *Server) AdvanceRequest(ctx echo.Context) error {
	var body AdvanceRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	requestID, err := kernel.UUIDFromString(body.RequestID)
	if err != nil {
		return badRequest(ctx, err)
	}

	kind, err := request.KindFromString(body.Type)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAdvanceRequestCommand(requestID, kind, body.ExpectedVersion)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.advanceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetRequests handles GET /api/v1/request - paginated errand list.
func (s *Server) GetRequests(ctx echo.Context) error {
	page, perPage := 0, 0
	if raw := ctx.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, err)
		}
		page = parsed
	}
	if raw := ctx.QueryParam("perPage"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, err)
		}
		perPage = parsed
	}

	query, err := queries.NewGetRequestsQuery(
		ctx.QueryParam("type"),
		page,
		perPage,
		ctx.QueryParam("sortBy"),
		ctx.QueryParam("order"),
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.getRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRequestsPage(result))
}

// IntakeItemBody is one declared line item in the intake body.
type IntakeItemBody struct {
	LaundryItemID string `json:"laundryItemId"`
	ItemName      string `json:"itemName"`
	ExpectedQty   int    `json:"expectedQty"`
}

// IntakeOrderBody is the body for POST /api/v1/order/create/:orderId.
type IntakeOrderBody struct {
	Weight       float64          `json:"weight"`
	LaundryPrice float64          `json:"laundryPrice"`
	Items        []IntakeItemBody `json:"items"`
}

// IntakeOrder handles POST /api/v1/order/create/:orderId - outlet intake.
func (s *Server) IntakeOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var body IntakeOrderBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	items := make([]commands.IntakeItem, 0, len(body.Items))
	for _, item := range body.Items {
		laundryItemID, idErr := kernel.UUIDFromString(item.LaundryItemID)
		if idErr != nil {
			return badRequest(ctx, idErr)
		}
		items = append(items, commands.IntakeItem{
			LaundryItemID: laundryItemID,
			ItemName:      item.ItemName,
			ExpectedQty:   item.ExpectedQty,
		})
	}

	cmd, err := commands.NewIntakeOrderCommand(orderID, items, body.Weight, body.LaundryPrice)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.intakeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ItemCountBody is one worker-entered count in the counts body.
type ItemCountBody struct {
	OrderItemID string `json:"orderItemId"`
	CountedQty  int    `json:"countedQty"`
}

// SubmitCountsBody is the body for PUT /api/v1/order/:orderId/counts.
type SubmitCountsBody struct {
	Counts []ItemCountBody `json:"counts"`
}

// MismatchResponse is one still-disagreeing item in the reconciliation reply.
type MismatchResponse struct {
	OrderItemID string `json:"orderItemId"`
	ItemName    string `json:"itemName"`
	ExpectedQty int    `json:"expectedQty"`
	CountedQty  int    `json:"countedQty"`
}

// ReconciliationResponse is the reply for count submission.
type ReconciliationResponse struct {
	AllMatch   bool               `json:"allMatch"`
	Mismatches []MismatchResponse `json:"mismatches"`
}

// SubmitCounts handles PUT /api/v1/order/:orderId/counts.
func (s *Server) SubmitCounts(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var body SubmitCountsBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	counts := make([]commands.ItemCount, 0, len(body.Counts))
	for _, count := range body.Counts {
		orderItemID, idErr := kernel.UUIDFromString(count.OrderItemID)
		if idErr != nil {
			return badRequest(ctx, idErr)
		}
		counts = append(counts, commands.ItemCount{
			OrderItemID: orderItemID,
			CountedQty:  count.CountedQty,
		})
	}

	cmd, err := commands.NewSubmitCountsCommand(orderID, counts)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.submitCountsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	response := ReconciliationResponse{
		AllMatch:   result.AllMatch,
		Mismatches: make([]MismatchResponse, 0, len(result.Mismatches)),
	}
	for _, item := range result.Mismatches {
		response.Mismatches = append(response.Mismatches, MismatchResponse{
			OrderItemID: item.ID().String(),
			ItemName:    item.ItemName(),
			ExpectedQty: item.ExpectedQty(),
			CountedQty:  item.CountedQty(),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// RaiseBypassBody is the body for PATCH /api/v1/bypass/:orderId.
type RaiseBypassBody struct {
	OrderWorkerID string `json:"orderWorkerId"`
	BypassNote    string `json:"bypassNote"`
}

// RaiseBypass handles PATCH /api/v1/bypass/:orderId - opens a bypass request.
func (s *Server) RaiseBypass(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var body RaiseBypassBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	workerID, err := kernel.UUIDFromString(body.OrderWorkerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRaiseBypassCommand(orderID, workerID, body.BypassNote)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.raiseBypassHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResolveBypassBody is the body for PATCH /api/v1/bypass/:orderId/resolve.
type ResolveBypassBody struct {
	Approved bool `json:"approved"`
}

// ResolveBypass handles PATCH /api/v1/bypass/:orderId/resolve - admin decision.
func (s *Server) ResolveBypass(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var body ResolveBypassBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewResolveBypassCommand(orderID, body.Approved)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.resolveBypassHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ProcessOrder handles POST /api/v1/order/:orderId/process.
func (s *Server) ProcessOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewProcessOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.processOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/order/:orderId/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/order/:orderId - order detail.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderDetail(result))
}

// GetPendingBypasses handles GET /api/v1/bypass - admin review list.
func (s *Server) GetPendingBypasses(ctx echo.Context) error {
	result, err := s.getPendingBypassesHandler.Handle(
		ctx.Request().Context(), queries.NewGetPendingBypassOrdersQuery())
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPendingBypassList(result))
}
