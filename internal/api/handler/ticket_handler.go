package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ticketly/ticketing-system/internal/api/metrics"
	"github.com/ticketly/ticketing-system/internal/core/domain"
	"github.com/ticketly/ticketing-system/internal/core/ports"
)

// TicketHandler handles HTTP requests for ticket issuance and reads.
type TicketHandler struct {
	service ports.TicketService
}

func NewTicketHandler(service ports.TicketService) *TicketHandler {
	return &TicketHandler{service: service}
}

// Purchase handles POST /events/:eventId/tickets.
//
// @Summary      Purchase a ticket for an event
// @Tags         tickets
// @Produce      json
// @Param        eventId  path      string  true  "Event id"
// @Success      201      {object}  domain.Ticket
// @Failure      404      {object}  errorResponse
// @Failure      422      {object}  errorResponse
// @Router       /events/{eventId}/tickets [post]
func (h *TicketHandler) Purchase(c echo.Context) error {
	ticket, err := h.service.PurchaseTicket(c.Request().Context(), c.Param("eventId"))
	if err != nil {
		metrics.TicketPurchaseFailuresTotal.WithLabelValues(purchaseFailureReason(err)).Inc()
		return err
	}

	metrics.TicketsIssuedTotal.Inc()
	return c.JSON(http.StatusCreated, ticket)
}

// Get handles GET /tickets/:id.
//
// @Summary      Get a ticket by id
// @Tags         tickets
// @Produce      json
// @Param        id   path      string  true  "Ticket id"
// @Success      200  {object}  domain.Ticket
// @Failure      404  {object}  errorResponse
// @Router       /tickets/{id} [get]
func (h *TicketHandler) Get(c echo.Context) error {
	ticket, err := h.service.GetTicket(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ticket)
}

func purchaseFailureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		return "event_not_found"
	case errors.Is(err, domain.ErrEventExpired):
		return "event_expired"
	default:
		return "store_error"
	}
}
