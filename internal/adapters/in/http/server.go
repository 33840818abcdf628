// Package http provides the inbound HTTP adapter exposing delivery operations
// over a REST API. Handlers translate HTTP requests into commands and queries
// and map application results back to JSON responses.
package http

import (
	"context"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/logistics"

	"github.com/labstack/echo/v4"
)

// Error represents a JSON error response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewDelivery represents the request body for registering a delivery.
type NewDelivery struct {
	Street string `json:"street"`
	Kind   string `json:"kind"`
}

// PendingDelivery represents a delivery awaiting planning.
type PendingDelivery struct {
	ID     string `json:"id"`
	Street string `json:"street"`
	Kind   string `json:"kind"`
}

// PlannedDelivery represents a delivery with transport instructions.
type PlannedDelivery struct {
	ID           string `json:"id"`
	Street       string `json:"street"`
	Kind         string `json:"kind"`
	Instructions string `json:"instructions"`
}

// Query handler interfaces keep the read side of the server testable.
// The concrete queries package handlers satisfy them.
type (
	// PendingDeliveriesQueryHandler retrieves deliveries awaiting planning.
	PendingDeliveriesQueryHandler interface {
		Handle(ctx context.Context, query queries.GetPendingDeliveriesQuery) (
			[]queries.GetPendingDeliveriesQueryResponse, error)
	}

	// PlannedDeliveriesQueryHandler retrieves planned deliveries.
	PlannedDeliveriesQueryHandler interface {
		Handle(ctx context.Context, query queries.GetPlannedDeliveriesQuery) (
			[]queries.GetPlannedDeliveriesQueryResponse, error)
	}
)

// Server handles HTTP requests for the delivery API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDeliveryHandler commands.CreateDeliveryCommandHandler

	// Query handlers
	getPendingDeliveriesHandler PendingDeliveriesQueryHandler
	getPlannedDeliveriesHandler PlannedDeliveriesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	getPendingDeliveriesHandler PendingDeliveriesQueryHandler,
	getPlannedDeliveriesHandler PlannedDeliveriesQueryHandler,
) *Server {
	return &Server{
		createDeliveryHandler:       createDeliveryHandler,
		getPendingDeliveriesHandler: getPendingDeliveriesHandler,
		getPlannedDeliveriesHandler: getPlannedDeliveriesHandler,
	}
}

// RegisterRoutes attaches the delivery API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/deliveries", s.CreateDelivery)
	e.GET("/api/v1/deliveries/pending", s.GetPendingDeliveries)
	e.GET("/api/v1/deliveries/planned", s.GetPlannedDeliveries)
}

// CreateDelivery handles POST /api/v1/deliveries - registers a new delivery request.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var newDelivery NewDelivery
	if err := ctx.Bind(&newDelivery); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	kind, err := logistics.KindFromString(newDelivery.Kind)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid logistics kind: " + newDelivery.Kind,
		})
	}

	cmd, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), newDelivery.Street, kind)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery data: " + err.Error(),
		})
	}

	if handleErr := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Failed to create delivery",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetPendingDeliveries handles GET /api/v1/deliveries/pending - retrieves deliveries awaiting planning.
func (s *Server) GetPendingDeliveries(ctx echo.Context) error {
	query := queries.NewGetPendingDeliveriesQuery()

	deliveries, err := s.getPendingDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve pending deliveries",
		})
	}

	response := make([]PendingDelivery, len(deliveries))
	for i, d := range deliveries {
		response[i] = PendingDelivery{
			ID:     d.ID.String(),
			Street: d.Street,
			Kind:   d.Kind.WireString(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPlannedDeliveries handles GET /api/v1/deliveries/planned - retrieves planned deliveries.
func (s *Server) GetPlannedDeliveries(ctx echo.Context) error {
	query := queries.NewGetPlannedDeliveriesQuery()

	deliveries, err := s.getPlannedDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve planned deliveries",
		})
	}

	response := make([]PlannedDelivery, len(deliveries))
	for i, d := range deliveries {
		response[i] = PlannedDelivery{
			ID:           d.ID.String(),
			Street:       d.Street,
			Kind:         d.Kind.WireString(),
			Instructions: d.Instructions,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
