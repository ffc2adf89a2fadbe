package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/frostline/freezer-api/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// pageFromQuery parses the optional limit/offset query parameters.
// Unparseable values fall back to zero rather than failing the request.
func pageFromQuery(c echo.Context) ports.Page {
	var page ports.Page
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			page.Limit = n
		}
	}
	if raw := c.QueryParam("offset"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			page.Offset = n
		}
	}
	return page
}
