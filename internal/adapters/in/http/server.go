// Package http exposes the delivery workflow over a REST API. Mutations and
// back-office reads require a JWT principal; the tracking endpoint is
// public.
package http

import (
	"net/http"
	"strconv"

	"parcelflow/internal/core/application/usecases/commands"
	"parcelflow/internal/core/application/usecases/queries"
	"parcelflow/internal/core/domain/model/access"
	"parcelflow/internal/core/domain/model/audit"
	"parcelflow/internal/core/domain/model/delivery"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/payment"

	"github.com/labstack/echo/v4"
)

const defaultAuditTrailLimit = 100

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler          commands.CreateOrderCommandHandler
	updateStatusHandler         commands.UpdateDeliveryStatusCommandHandler
	assignRiderHandler          commands.AssignRiderCommandHandler
	approveRiderHandler         commands.ApproveRiderCommandHandler
	rejectRiderHandler          commands.RejectRiderCommandHandler
	recordPaymentHandler        commands.RecordPaymentCommandHandler
	setRiderAvailabilityHandler commands.SetRiderAvailabilityCommandHandler

	// Query handlers
	trackDeliveryHandler     queries.TrackDeliveryQueryHandler
	getDashboardStatsHandler queries.GetDashboardStatsQueryHandler
	getPendingRidersHandler  queries.GetPendingRidersQueryHandler
	getAuditTrailHandler     queries.GetAuditTrailQueryHandler

	// Permission evaluator for read endpoints; command handlers carry
	// their own authorizer.
	evaluator *access.Evaluator
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	assignRiderHandler commands.AssignRiderCommandHandler,
	approveRiderHandler commands.ApproveRiderCommandHandler,
	rejectRiderHandler commands.RejectRiderCommandHandler,
	recordPaymentHandler commands.RecordPaymentCommandHandler,
	setRiderAvailabilityHandler commands.SetRiderAvailabilityCommandHandler,
	trackDeliveryHandler queries.TrackDeliveryQueryHandler,
	getDashboardStatsHandler queries.GetDashboardStatsQueryHandler,
	getPendingRidersHandler queries.GetPendingRidersQueryHandler,
	getAuditTrailHandler queries.GetAuditTrailQueryHandler,
	evaluator *access.Evaluator,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		updateStatusHandler:         updateStatusHandler,
		assignRiderHandler:          assignRiderHandler,
		approveRiderHandler:         approveRiderHandler,
		rejectRiderHandler:          rejectRiderHandler,
		recordPaymentHandler:        recordPaymentHandler,
		setRiderAvailabilityHandler: setRiderAvailabilityHandler,
		trackDeliveryHandler:        trackDeliveryHandler,
		getDashboardStatsHandler:    getDashboardStatsHandler,
		getPendingRidersHandler:     getPendingRidersHandler,
		getAuditTrailHandler:        getAuditTrailHandler,
		evaluator:                   evaluator,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance. Everything
// except /health and the tracking endpoint sits behind the auth middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, auth *AuthMiddleware) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")
	api.GET("/track/:trackingNumber", s.TrackDelivery)

	authed := api.Group("", auth.Require)
	authed.POST("/orders", s.CreateOrder)
	authed.POST("/deliveries/:id/status", s.UpdateDeliveryStatus)
	authed.POST("/deliveries/:id/assign", s.AssignRider)
	authed.POST("/deliveries/:id/payment", s.RecordPayment)
	authed.POST("/riders/:id/approve", s.ApproveRider)
	authed.POST("/riders/:id/reject", s.RejectRider)
	authed.POST("/riders/:id/availability", s.SetRiderAvailability)
	authed.GET("/admin/dashboard", s.GetDashboard)
	authed.GET("/admin/riders/pending", s.GetPendingRiders)
	authed.GET("/admin/audit-trail", s.GetAuditTrail)
}

// TrackDelivery handles GET /api/v1/track/:trackingNumber - the public
// tracking view.
func (s *Server) TrackDelivery(c echo.Context) error {
	trackingNumber, err := delivery.TrackingNumberFromString(c.Param("trackingNumber"))
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewTrackDeliveryQuery(trackingNumber)
	if err != nil {
		return writeError(c, err)
	}

	resp, err := s.trackDeliveryHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toTrackDeliveryResponse(resp))
}

// CreateOrder handles POST /api/v1/orders - places a new delivery order for
// the authenticated sender.
func (s *Server) CreateOrder(c echo.Context) error {
	actor, ok := principalFrom(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	packageType, err := delivery.PackageTypeFromString(req.PackageType)
	if err != nil {
		return writeError(c, err)
	}

	pkg, err := delivery.NewPackage(
		req.PackageDescription, req.WeightKg, packageType,
		req.SpecialInstructions, req.Fragile, req.RequiresSignature)
	if err != nil {
		return writeError(c, err)
	}

	pickupPoint, err := optionalPoint(req.PickupLatitude, req.PickupLongitude)
	if err != nil {
		return writeError(c, err)
	}
	deliveryPoint, err := optionalPoint(req.DeliveryLatitude, req.DeliveryLongitude)
	if err != nil {
		return writeError(c, err)
	}

	route, err := delivery.NewRoute(req.PickupAddress, req.DeliveryAddress, pickupPoint, deliveryPoint)
	if err != nil {
		return writeError(c, err)
	}

	priority, err := delivery.PriorityFromString(req.Priority)
	if err != nil {
		return writeError(c, err)
	}

	method, err := payment.MethodFromString(req.PaymentMethod)
	if err != nil {
		return writeError(c, err)
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		actor, deliveryID, pkg, req.RecipientName, req.RecipientPhone,
		route, req.EstimatedPickup, req.EstimatedDelivery, priority, method, req.Notes)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.createOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, createOrderResponse{DeliveryID: deliveryID.String()})
}

// UpdateDeliveryStatus handles POST /api/v1/deliveries/:id/status.
func (s *Server) UpdateDeliveryStatus(c echo.Context) error {
	actor, ok := principalFrom(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	deliveryID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	var req updateStatusRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	target, err := delivery.StatusFromString(req.Status)
	if err != nil {
		return writeError(c, err)
	}

	point, err := optionalPoint(req.Latitude, req.Longitude)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(
		actor, deliveryID, target, req.Location, point, req.Notes)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.updateStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AssignRider handles POST /api/v1/deliveries/:id/assign - manual
// assignment by an operator.
func (s *Server) AssignRider(c echo.Context) error {
	actor, ok := principalFrom(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	deliveryID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	var req assignRiderRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	riderID, err := kernel.UUIDFromString(req.RiderID)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewAssignRiderCommand(actor, deliveryID, riderID)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.assignRiderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RecordPayment handles POST /api/v1/deliveries/:id/payment.
func (s *Server) RecordPayment(c echo.Context) error {
	actor, ok := principalFrom(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	deliveryID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	var req recordPaymentRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	action, err := commands.PaymentActionFromString(req.Action)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewRecordPaymentCommand(actor, deliveryID, action, req.TransactionID)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.recordPaymentHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ApproveRider handles POST /api/v1/riders/:id/approve.
func (s *Server) ApproveRider(c echo.Context) error {
	actor, ok := principalFrom(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	profileID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewApproveRiderCommand(actor, profileID)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.approveRiderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RejectRider handles POST /api/v1/riders/:id/reject.
func (s *Server) RejectRider(c echo.Context) error {
	actor, ok := principalFrom(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	profileID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	var req rejectRiderRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewRejectRiderCommand(actor, profileID, req.Reason)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.rejectRiderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SetRiderAvailability handles POST /api/v1/riders/:id/availability.
func (s *Server) SetRiderAvailability(c echo.Context) error {
	actor, ok := principalFrom(c)
	if !ok {
		return c.NoContent(http.StatusUnauthorized)
	}

	profileID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	var req availabilityRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewSetRiderAvailabilityCommand(actor, profileID, req.Available)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.setRiderAvailabilityHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetDashboard handles GET /api/v1/admin/dashboard.
func (s *Server) GetDashboard(c echo.Context) error {
	if !s.requirePermission(c, access.PermissionViewDashboard) {
		return nil
	}

	resp, err := s.getDashboardStatsHandler.Handle(
		c.Request().Context(), queries.NewGetDashboardStatsQuery())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toDashboardResponse(resp))
}

// GetPendingRiders handles GET /api/v1/admin/riders/pending.
func (s *Server) GetPendingRiders(c echo.Context) error {
	if !s.requirePermission(c, access.PermissionManageRiders) {
		return nil
	}

	riders, err := s.getPendingRidersHandler.Handle(
		c.Request().Context(), queries.NewGetPendingRidersQuery())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toPendingRiderResponses(riders))
}

// GetAuditTrail handles GET /api/v1/admin/audit-trail. Accepts "channel"
// (default business) and "limit" (default 100) query parameters.
func (s *Server) GetAuditTrail(c echo.Context) error {
	if !s.requirePermission(c, access.PermissionViewReports) {
		return nil
	}

	channelParam := c.QueryParam("channel")
	if channelParam == "" {
		channelParam = audit.ChannelBusiness.String()
	}
	channel, err := audit.ChannelFromString(channelParam)
	if err != nil {
		return writeError(c, err)
	}

	limit := defaultAuditTrailLimit
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		limit, err = strconv.Atoi(limitParam)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid limit parameter",
			})
		}
	}

	query, err := queries.NewGetAuditTrailQuery(channel, limit)
	if err != nil {
		return writeError(c, err)
	}

	entries, err := s.getAuditTrailHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toAuditEntryResponses(entries))
}

// requirePermission rejects read requests from principals lacking the
// permission. Writes the unauthorized or forbidden response itself and
// reports whether the request may proceed.
func (s *Server) requirePermission(c echo.Context, key access.PermissionKey) bool {
	actor, ok := principalFrom(c)
	if !ok {
		_ = c.NoContent(http.StatusUnauthorized)
		return false
	}

	if !s.evaluator.HasPermission(actor, key) {
		_ = c.JSON(http.StatusForbidden, errorResponse{
			Code:    http.StatusForbidden,
			Message: "Missing permission: " + key.String(),
		})
		return false
	}

	return true
}

// optionalPoint builds a geo point when both coordinates are present.
func optionalPoint(lat, lng *float64) (*kernel.GeoPoint, error) {
	if lat == nil || lng == nil {
		return nil, nil
	}

	point, err := kernel.NewGeoPoint(*lat, *lng)
	if err != nil {
		return nil, err
	}
	return &point, nil
}
