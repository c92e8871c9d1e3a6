// Package http contains the inbound HTTP adapter.
// It translates echo requests into application commands and queries and
// bridges the stream endpoint to the streaming core.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/application/usecases/queries"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/streaming"
	"tracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Use-case interfaces consumed by the server. The concrete command and
// query handlers satisfy them; tests substitute in-memory fakes.
type (
	// OrderCreator persists a new order.
	OrderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}

	// OrderReader fetches one order's read model.
	OrderReader interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}

	// OrdersLister fetches the recent-orders read model.
	OrdersLister interface {
		Handle(ctx context.Context, query queries.GetAllOrdersQuery) (queries.GetAllOrdersQueryResponse, error)
	}
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler  OrderCreator
	getOrderHandler     OrderReader
	getAllOrdersHandler OrdersLister

	registry  *streaming.Registry
	simulator *streaming.Simulator
	seq       *streaming.Sequence

	randomPolicy        streaming.TimingPolicy
	deterministicPolicy streaming.TimingPolicy
	keepAliveInterval   time.Duration

	// runCtx bounds simulation runs, which outlive the requests that
	// start them. It is the service context, not a request context.
	runCtx context.Context
}

// ServerConfig collects the dependencies of the HTTP server.
type ServerConfig struct {
	CreateOrderHandler  OrderCreator
	GetOrderHandler     OrderReader
	GetAllOrdersHandler OrdersLister

	Registry  *streaming.Registry
	Simulator *streaming.Simulator
	Sequence  *streaming.Sequence

	RandomPolicy        streaming.TimingPolicy
	DeterministicPolicy streaming.TimingPolicy
	KeepAliveInterval   time.Duration

	RunContext context.Context
}

// NewServer creates a new HTTP server from its configuration.
func NewServer(cfg ServerConfig) *Server {
	return &Server{
		createOrderHandler:  cfg.CreateOrderHandler,
		getOrderHandler:     cfg.GetOrderHandler,
		getAllOrdersHandler: cfg.GetAllOrdersHandler,
		registry:            cfg.Registry,
		simulator:           cfg.Simulator,
		seq:                 cfg.Sequence,
		randomPolicy:        cfg.RandomPolicy,
		deterministicPolicy: cfg.DeterministicPolicy,
		keepAliveInterval:   cfg.KeepAliveInterval,
		runCtx:              cfg.RunContext,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders/:id/stream", s.StreamOrderStatus)
	api.GET("/metrics/stream-count", s.GetStreamCount)
}

// Error is the JSON body of a failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrder is the request body for order creation.
type NewOrder struct {
	CustomerID        string     `json:"customerId"`
	Carrier           *string    `json:"carrier"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery"`
}

// Order is the JSON representation of an order.
type Order struct {
	ID                string     `json:"id"`
	CustomerID        string     `json:"customerId"`
	Status            string     `json:"status"`
	Carrier           *string    `json:"carrier"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// CreatedOrder is the response body for a successful order creation.
type CreatedOrder struct {
	ID string `json:"id"`
}

// StreamCount is the response body of the stream-count metric endpoint.
type StreamCount struct {
	ActiveStreams int `json:"activeStreams"`
}

func orderFromQueryResponse(resp queries.GetOrderQueryResponse) Order {
	return Order{
		ID:                resp.ID.String(),
		CustomerID:        resp.CustomerID.String(),
		Status:            resp.Status.String(),
		Carrier:           resp.Carrier,
		EstimatedDelivery: resp.EstimatedDelivery,
		CreatedAt:         resp.CreatedAt,
		UpdatedAt:         resp.UpdatedAt,
	}
}

// CreateOrder handles POST /api/v1/orders.
//
//	@Summary		Create an order
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		NewOrder	true	"New order"
//	@Success		201		{object}	CreatedOrder
//	@Failure		400		{object}	Error
//	@Failure		500		{object}	Error
//	@Router			/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	customerID, err := kernel.UUIDFromString(newOrder.CustomerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer id",
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, newOrder.Carrier, newOrder.EstimatedDelivery)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	return ctx.JSON(http.StatusCreated, CreatedOrder{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id.
//
//	@Summary		Get one order
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		string	true	"Order id"
//	@Success		200	{object}	Order
//	@Failure		400	{object}	Error
//	@Failure		404	{object}	Error
//	@Router			/orders/{id} [get]
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	return ctx.JSON(http.StatusOK, orderFromQueryResponse(resp))
}

// GetOrders handles GET /api/v1/orders.
//
//	@Summary		List recent orders
//	@Tags			orders
//	@Produce		json
//	@Success		200	{array}		Order
//	@Failure		500	{object}	Error
//	@Router			/orders [get]
func (s *Server) GetOrders(ctx echo.Context) error {
	query, err := queries.NewGetAllOrdersQuery()
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	resp, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]Order, len(resp.Orders))
	for i, o := range resp.Orders {
		response[i] = orderFromQueryResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStreamCount handles GET /api/v1/metrics/stream-count.
//
//	@Summary		Count live stream subscribers
//	@Tags			metrics
//	@Produce		json
//	@Success		200	{object}	StreamCount
//	@Router			/metrics/stream-count [get]
func (s *Server) GetStreamCount(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, StreamCount{
		ActiveStreams: s.registry.CountAll(),
	})
}
