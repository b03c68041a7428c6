package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ticketly/ticketing-system/internal/api/metrics"
	"github.com/ticketly/ticketing-system/internal/core/ports"
)

// EventHandler handles HTTP requests for event operations.
type EventHandler struct {
	service ports.EventService
}

func NewEventHandler(service ports.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// Create handles POST /events.
//
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        body  body      createEventRequest  true  "Event details"
// @Success      201   {object}  domain.Event
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /events [post]
func (h *EventHandler) Create(c echo.Context) error {
	var req createEventRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	event, err := h.service.CreateEvent(c.Request().Context(), ports.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Location: ports.CoordinatesInput{
			Latitude:  *req.Location.Latitude,
			Longitude: *req.Location.Longitude,
		},
		Datetime:    *req.Datetime,
		TicketPrice: *req.TicketPrice,
	})
	if err != nil {
		return err
	}

	metrics.EventsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, event)
}

// List handles GET /events. Results follow store key order (ascending event
// id), not creation order.
//
// @Summary      List all events
// @Tags         events
// @Produce      json
// @Success      200  {array}  domain.Event
// @Router       /events [get]
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.service.ListEvents(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// Get handles GET /events/:id.
//
// @Summary      Get an event by id
// @Tags         events
// @Produce      json
// @Param        id   path      string  true  "Event id"
// @Success      200  {object}  domain.Event
// @Failure      404  {object}  errorResponse
// @Router       /events/{id} [get]
func (h *EventHandler) Get(c echo.Context) error {
	event, err := h.service.GetEvent(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}
