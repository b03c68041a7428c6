package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

// bindStrict decodes the request body into v, rejecting unknown fields.
// Stored records contain exactly the whitelisted fields; nothing from the
// body is spread through unchecked.
func bindStrict(c echo.Context, v any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return nil
}
