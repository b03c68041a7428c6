package handler

import "time"

// Pointer fields distinguish "absent" from legitimate zero values: a venue at
// latitude 0 or a free event with price 0 must pass validation.
type locationRequest struct {
	Latitude  *float64 `json:"latitude"  validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
}

type createEventRequest struct {
	Title       string           `json:"title"        validate:"required"`
	Description string           `json:"description"  validate:"required"`
	Location    *locationRequest `json:"location"     validate:"required"`
	Datetime    *time.Time       `json:"datetime"     validate:"required"`
	TicketPrice *float64         `json:"ticket_price" validate:"required,gte=0"`
}
