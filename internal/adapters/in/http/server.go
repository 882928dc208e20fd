// Package http exposes the partner application over a REST API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"

	"partner/internal/core/application/usecases/commands"
	"partner/internal/core/application/usecases/queries"
	"partner/internal/core/domain/model/kernel"
	"partner/internal/core/domain/model/order"
	"partner/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the partner-facing HTTP surface. The partner id is fixed at
// construction; every upstream operation acts on behalf of that partner.
type Server struct {
	partnerID kernel.UUID

	// Command handlers
	fetchOrdersHandler       commands.FetchOrdersCommandHandler
	acceptOrderHandler       commands.AcceptOrderCommandHandler
	rejectOrderHandler       commands.RejectOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	addNewOrderHandler       commands.AddNewOrderCommandHandler

	// Query handlers
	getAllOrdersHandler       queries.GetAllOrdersQueryHandler
	getActiveOrdersHandler    queries.GetActiveOrdersQueryHandler
	getCompletedOrdersHandler queries.GetCompletedOrdersQueryHandler
	getOperationStateHandler  queries.GetOperationStateQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	partnerID kernel.UUID,
	fetchOrdersHandler commands.FetchOrdersCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	addNewOrderHandler commands.AddNewOrderCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getCompletedOrdersHandler queries.GetCompletedOrdersQueryHandler,
	getOperationStateHandler queries.GetOperationStateQueryHandler,
) (*Server, error) {
	if err := partnerID.Validate(); err != nil {
		return nil, err
	}

	return &Server{
		partnerID:                 partnerID,
		fetchOrdersHandler:        fetchOrdersHandler,
		acceptOrderHandler:        acceptOrderHandler,
		rejectOrderHandler:        rejectOrderHandler,
		updateOrderStatusHandler:  updateOrderStatusHandler,
		addNewOrderHandler:        addNewOrderHandler,
		getAllOrdersHandler:       getAllOrdersHandler,
		getActiveOrdersHandler:    getActiveOrdersHandler,
		getCompletedOrdersHandler: getCompletedOrdersHandler,
		getOperationStateHandler:  getOperationStateHandler,
	}, nil
}

// RegisterRoutes wires every endpoint into the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/notifications/orders", s.NotifyNewOrder)
	api.POST("/orders/refresh", s.RefreshOrders)
	api.POST("/orders/:id/accept", s.AcceptOrder)
	api.POST("/orders/:id/reject", s.RejectOrder)
	api.POST("/orders/:id/status", s.UpdateOrderStatus)

	api.GET("/orders", s.GetOrders)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/completed", s.GetCompletedOrders)
	api.GET("/operations", s.GetOperationState)

	e.GET("/health", s.Health)
}

// NotifyNewOrder handles POST /api/v1/notifications/orders - ingests a push
// notification about a freshly assigned order.
func (s *Server) NotifyNewOrder(ctx echo.Context) error {
	var notification OrderNotification
	if err := ctx.Bind(&notification); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	assignmentID, err := kernel.UUIDFromString(notification.AssignmentID)
	if err != nil {
		return s.badRequest(ctx, "Invalid assignment id: "+err.Error())
	}

	earnings, err := kernel.NewMoney(notification.Earnings.Cents, notification.Earnings.Currency)
	if err != nil {
		return s.badRequest(ctx, "Invalid earnings: "+err.Error())
	}

	cmd, err := commands.NewAddNewOrderCommand(
		assignmentID,
		earnings,
		notification.PickupAddress,
		notification.DropoffAddress,
		notification.CustomerName,
		notification.AssignedAt,
	)
	if err != nil {
		return s.badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.addNewOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.internalError(ctx, "Failed to add order")
	}

	return ctx.NoContent(http.StatusCreated)
}

// RefreshOrders handles POST /api/v1/orders/refresh - replaces the local
// projections with the service's current order list.
func (s *Server) RefreshOrders(ctx echo.Context) error {
	cmd, err := commands.NewFetchOrdersCommand(s.partnerID)
	if err != nil {
		return s.internalError(ctx, "Failed to build refresh command")
	}

	if handleErr := s.fetchOrdersHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.upstreamError(ctx, handleErr, "Failed to refresh orders")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptOrder handles POST /api/v1/orders/:id/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	assignmentID, err := s.assignmentID(ctx)
	if err != nil {
		return s.badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewAcceptOrderCommand(assignmentID, s.partnerID)
	if err != nil {
		return s.badRequest(ctx, "Invalid accept request: "+err.Error())
	}

	if handleErr := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.upstreamError(ctx, handleErr, "Failed to accept order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectOrder handles POST /api/v1/orders/:id/reject.
func (s *Server) RejectOrder(ctx echo.Context) error {
	assignmentID, err := s.assignmentID(ctx)
	if err != nil {
		return s.badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var request RejectOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRejectOrderCommand(assignmentID, s.partnerID, request.Reason)
	if err != nil {
		return s.badRequest(ctx, "Invalid reject request: "+err.Error())
	}

	if handleErr := s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.upstreamError(ctx, handleErr, "Failed to reject order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	assignmentID, err := s.assignmentID(ctx)
	if err != nil {
		return s.badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var request UpdateOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(
		assignmentID, s.partnerID, order.StatusFromString(request.Status),
	)
	if err != nil {
		return s.badRequest(ctx, "Invalid status: "+request.Status)
	}

	if handleErr := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.upstreamError(ctx, handleErr, "Failed to update order status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders - retrieves every known order.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.internalError(ctx, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, toOrderList(orders))
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return s.internalError(ctx, "Failed to retrieve active orders")
	}

	return ctx.JSON(http.StatusOK, toOrderList(orders))
}

// GetCompletedOrders handles GET /api/v1/orders/completed.
func (s *Server) GetCompletedOrders(ctx echo.Context) error {
	orders, err := s.getCompletedOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetCompletedOrdersQuery())
	if err != nil {
		return s.internalError(ctx, "Failed to retrieve completed orders")
	}

	return ctx.JSON(http.StatusOK, toOrderList(orders))
}

// GetOperationState handles GET /api/v1/operations.
func (s *Server) GetOperationState(ctx echo.Context) error {
	state, err := s.getOperationStateHandler.Handle(ctx.Request().Context(), queries.NewGetOperationStateQuery())
	if err != nil {
		return s.internalError(ctx, "Failed to retrieve operation state")
	}

	return ctx.JSON(http.StatusOK, OperationState{
		FetchOrdersPending:       state.FetchOrdersPending,
		AcceptOrderPending:       state.AcceptOrderPending,
		RejectOrderPending:       state.RejectOrderPending,
		UpdateOrderStatusPending: state.UpdateOrderStatusPending,
		LastError:                state.LastError,
	})
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) assignmentID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func (s *Server) internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

// upstreamError maps assignment-service failures onto response codes. Stale
// ids come back as 404; anything else is treated as a bad gateway because the
// failure happened upstream of this process.
func (s *Server) upstreamError(ctx echo.Context, err error, message string) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: message + ": order not found",
		})
	}

	return ctx.JSON(http.StatusBadGateway, Error{
		Code:    http.StatusBadGateway,
		Message: message + ": " + err.Error(),
	})
}
