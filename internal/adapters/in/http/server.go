// Package http exposes the application's REST API and the per-order event
// stream. It coordinates between HTTP handlers and application use cases.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/services"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"

	"github.com/labstack/echo/v4"
)

// Command handler contracts consumed by the server. Narrow interfaces keep
// the endpoints testable without a database.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}
	AssignPartnerHandler interface {
		Handle(ctx context.Context, cmd commands.AssignPartnerCommand) error
	}
	StartDeliveryHandler interface {
		Handle(ctx context.Context, cmd commands.StartDeliveryCommand) error
	}
	ReportLocationHandler interface {
		Handle(ctx context.Context, cmd commands.ReportLocationCommand) error
	}
	MarkDeliveredHandler interface {
		Handle(ctx context.Context, cmd commands.MarkDeliveredCommand) error
	}
	RegisterVendorHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterVendorCommand) error
	}
	RegisterPartnerHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterPartnerCommand) error
	}
	GetVendorOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetVendorOrdersQuery) ([]queries.OrderView, error)
	}
	GetPartnerOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetPartnerOrdersQuery) ([]queries.OrderView, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}
)

// Server wires the REST endpoints to the application use cases.
type Server struct {
	createOrder     CreateOrderHandler
	assignPartner   AssignPartnerHandler
	startDelivery   StartDeliveryHandler
	reportLocation  ReportLocationHandler
	markDelivered   MarkDeliveredHandler
	registerVendor  RegisterVendorHandler
	registerPartner RegisterPartnerHandler

	getVendorOrders  GetVendorOrdersHandler
	getPartnerOrders GetPartnerOrdersHandler
	getOrder         GetOrderHandler

	subscriber  ports.OrderSubscriber
	permissions services.PermissionChecker
	jwtSecret   []byte
}

// NewServer creates the HTTP server with its command and query handlers.
func NewServer(
	createOrder CreateOrderHandler,
	assignPartner AssignPartnerHandler,
	startDelivery StartDeliveryHandler,
	reportLocation ReportLocationHandler,
	markDelivered MarkDeliveredHandler,
	registerVendor RegisterVendorHandler,
	registerPartner RegisterPartnerHandler,
	getVendorOrders GetVendorOrdersHandler,
	getPartnerOrders GetPartnerOrdersHandler,
	getOrder GetOrderHandler,
	subscriber ports.OrderSubscriber,
	jwtSecret []byte,
) *Server {
	return &Server{
		createOrder:      createOrder,
		assignPartner:    assignPartner,
		startDelivery:    startDelivery,
		reportLocation:   reportLocation,
		markDelivered:    markDelivered,
		registerVendor:   registerVendor,
		registerPartner:  registerPartner,
		getVendorOrders:  getVendorOrders,
		getPartnerOrders: getPartnerOrders,
		getOrder:         getOrder,
		subscriber:       subscriber,
		permissions:      services.NewPermissionChecker(),
		jwtSecret:        jwtSecret,
	}
}

// RegisterRoutes mounts the API under /api/v1. Tracking endpoints are public;
// everything else requires a bearer token.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	// Customer tracking needs no account.
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders/:id/events", s.StreamOrderEvents)

	authed := api.Group("", AuthMiddleware(s.jwtSecret))
	authed.POST("/vendors", s.RegisterVendor)
	authed.POST("/partners", s.RegisterPartner)
	authed.POST("/orders", s.CreateOrder)
	authed.GET("/vendors/me/orders", s.GetVendorOrders)
	authed.GET("/partners/me/orders", s.GetPartnerOrders)
	authed.POST("/orders/:id/assign", s.AssignPartner)
	authed.POST("/orders/:id/start", s.StartDelivery)
	authed.POST("/orders/:id/location", s.ReportLocation)
	authed.POST("/orders/:id/delivered", s.MarkDelivered)
}

// RegisterVendor handles POST /api/v1/vendors.
func (s *Server) RegisterVendor(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return errorJSON(c, http.StatusUnauthorized, "Authentication required")
	}

	var req registerProfileRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewRegisterVendorCommand(kernel.NewUUID(), actor.ID, req.Name)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.registerVendor.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": cmd.VendorID().String()})
}

// RegisterPartner handles POST /api/v1/partners.
func (s *Server) RegisterPartner(c echo.Context) error {
	actor, ok := actorFromContext(c)
	if !ok {
		return errorJSON(c, http.StatusUnauthorized, "Authentication required")
	}

	var req registerProfileRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewRegisterPartnerCommand(kernel.NewUUID(), actor.ID, req.Name)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.registerPartner.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": cmd.PartnerID().String()})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	actor, err := s.requireCapability(c, services.CapabilityCreateOrder)
	if err != nil {
		return s.writeError(c, err)
	}

	var req createOrderRequest
	if err = c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	items := make([]commands.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.ItemInput{Name: item.Name, Quantity: item.Quantity})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, actor.ID, req.CustomerName, req.CustomerEmail, req.DeliveryAddress, items,
	)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.createOrder.Handle(c.Request().Context(), cmd); err != nil {
		// The order row committed even though its items did not.
		if errors.Is(err, commands.ErrOrderItemsIncomplete) {
			return c.JSON(http.StatusCreated, createOrderResponse{
				ID:              orderID.String(),
				ItemsIncomplete: true,
			})
		}
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, createOrderResponse{ID: orderID.String()})
}

// GetVendorOrders handles GET /api/v1/vendors/me/orders.
func (s *Server) GetVendorOrders(c echo.Context) error {
	actor, err := s.requireCapability(c, services.CapabilityViewVendorOrders)
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetVendorOrdersQuery(actor.ID)
	if err != nil {
		return s.writeError(c, err)
	}

	views, err := s.getVendorOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, orderResponsesFromViews(views))
}

// GetPartnerOrders handles GET /api/v1/partners/me/orders.
func (s *Server) GetPartnerOrders(c echo.Context) error {
	actor, err := s.requireCapability(c, services.CapabilityViewPartnerOrders)
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetPartnerOrdersQuery(actor.ID)
	if err != nil {
		return s.writeError(c, err)
	}

	views, err := s.getPartnerOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, orderResponsesFromViews(views))
}

// GetOrder handles GET /api/v1/orders/:id - the customer tracking snapshot.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	view, err := s.getOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, orderResponseFromView(view))
}

// AssignPartner handles POST /api/v1/orders/:id/assign.
func (s *Server) AssignPartner(c echo.Context) error {
	actor, err := s.requireCapability(c, services.CapabilityAssignPartner)
	if err != nil {
		return s.writeError(c, err)
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid order id")
	}

	var req assignPartnerRequest
	if err = c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	partnerID, err := kernel.UUIDFromString(req.PartnerID)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid partner id")
	}

	cmd, err := commands.NewAssignPartnerCommand(orderID, actor.ID, partnerID)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.assignPartner.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// StartDelivery handles POST /api/v1/orders/:id/start.
func (s *Server) StartDelivery(c echo.Context) error {
	actor, err := s.requireCapability(c, services.CapabilityReportDelivery)
	if err != nil {
		return s.writeError(c, err)
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewStartDeliveryCommand(orderID, actor.ID)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.startDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ReportLocation handles POST /api/v1/orders/:id/location.
func (s *Server) ReportLocation(c echo.Context) error {
	actor, err := s.requireCapability(c, services.CapabilityReportDelivery)
	if err != nil {
		return s.writeError(c, err)
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid order id")
	}

	var req reportLocationRequest
	if err = c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	sampledAt := time.Now().UTC()
	if req.SampledAt != nil {
		sampledAt = req.SampledAt.UTC()
	}

	cmd, err := commands.NewReportLocationCommand(orderID, actor.ID, req.Latitude, req.Longitude, sampledAt)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.reportLocation.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// MarkDelivered handles POST /api/v1/orders/:id/delivered.
func (s *Server) MarkDelivered(c echo.Context) error {
	actor, err := s.requireCapability(c, services.CapabilityReportDelivery)
	if err != nil {
		return s.writeError(c, err)
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewMarkDeliveredCommand(orderID, actor.ID)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.markDelivered.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// StreamOrderEvents handles GET /api/v1/orders/:id/events.
// Bridges the order's realtime channel onto a server-sent event stream.
func (s *Server) StreamOrderEvents(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid order id")
	}

	sub, err := s.subscriber.Subscribe(c.Request().Context(), orderID.String())
	if err != nil {
		return errorJSON(c, http.StatusServiceUnavailable, "Event stream unavailable")
	}
	defer func() {
		_ = sub.Close()
	}()

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set(echo.HeaderCacheControl, "no-cache")
	resp.Header().Set(echo.HeaderConnection, "keep-alive")
	resp.WriteHeader(http.StatusOK)
	resp.Flush()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-sub.Events():
			if !ok {
				return nil
			}

			payload, marshalErr := json.Marshal(event)
			if marshalErr != nil {
				continue
			}
			if _, err = fmt.Fprintf(resp, "event: %s\ndata: %s\n\n", event.Type, payload); err != nil {
				return nil
			}
			resp.Flush()
		}
	}
}

// requireCapability resolves the actor and checks the role capability.
func (s *Server) requireCapability(c echo.Context, capability services.Capability) (Actor, error) {
	actor, ok := actorFromContext(c)
	if !ok {
		return Actor{}, errs.NewNotAuthorizedError(capability.String(), "anonymous")
	}

	if err := s.permissions.Check(actor.Role, capability, actor.ID.String()); err != nil {
		return Actor{}, err
	}

	return actor, nil
}

// writeError maps domain and application errors onto HTTP statuses. Internal
// error detail is never exposed to callers.
func (s *Server) writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(c, http.StatusNotFound, "Resource not found")
	case errors.Is(err, errs.ErrNotAuthorized):
		return errorJSON(c, http.StatusForbidden, "Operation not allowed")
	case errors.Is(err, errs.ErrInvalidTransition):
		return errorJSON(c, http.StatusConflict, "Order status does not allow this operation")
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, guard.ErrNotConstructed):
		return errorJSON(c, http.StatusBadRequest, "Invalid request: "+err.Error())
	case errors.Is(err, errs.ErrStorage):
		return errorJSON(c, http.StatusInternalServerError, "Storage failure")
	default:
		return errorJSON(c, http.StatusInternalServerError, "Internal error")
	}
}

func errorJSON(c echo.Context, code int, message string) error {
	return c.JSON(code, errorResponse{Code: code, Message: message})
}
