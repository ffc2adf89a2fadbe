package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/frostline/freezer-api/internal/api/metrics"
	"github.com/frostline/freezer-api/internal/core/domain"
	"github.com/frostline/freezer-api/internal/core/ports"
)

// FreezerHandler handles HTTP requests for freezer operations.
type FreezerHandler struct {
	service ports.InventoryService
}

func NewFreezerHandler(service ports.InventoryService) *FreezerHandler {
	return &FreezerHandler{service: service}
}

type freezerModelRequest struct {
	Name string `json:"name" validate:"required"`
	Year int    `json:"year" validate:"gte=1900"`
}

type updateFreezerRequest struct {
	Name     string              `json:"name" validate:"required"`
	Model    freezerModelRequest `json:"model" validate:"required"`
	Owner    *string             `json:"owner,omitempty"`
	Products map[string]int64    `json:"products"`
}

// List handles GET /api/freezers.
//
// @Summary      List freezers
// @Tags         freezers
// @Produce      json
// @Param        limit   query     int  false  "Max freezers to return"
// @Param        offset  query     int  false  "Freezers to skip"
// @Success      200     {array}   domain.Freezer
// @Router       /api/freezers [get]
func (h *FreezerHandler) List(c echo.Context) error {
	freezers, err := h.service.ListFreezers(c.Request().Context(), pageFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, freezers)
}

// Get handles GET /api/freezers/:name.
//
// @Summary      Get a freezer by name
// @Tags         freezers
// @Produce      json
// @Param        name  path      string  true  "Freezer name"
// @Success      200   {object}  domain.Freezer
// @Failure      404   {object}  errorResponse
// @Router       /api/freezers/{name} [get]
func (h *FreezerHandler) Get(c echo.Context) error {
	freezer, err := h.service.GetFreezer(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, freezer)
}

// Update handles POST /api/freezers/update: whole-document replace of the
// freezer named in the body.
//
// @Summary      Replace a freezer document
// @Tags         freezers
// @Accept       json
// @Produce      json
// @Param        body  body      updateFreezerRequest  true  "Freezer document"
// @Success      200   {object}  domain.Freezer
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/freezers/update [post]
func (h *FreezerHandler) Update(c echo.Context) error {
	var req updateFreezerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	products := req.Products
	if products == nil {
		products = map[string]int64{}
	}

	freezer, err := h.service.ReplaceFreezer(c.Request().Context(), &domain.Freezer{
		Name:     req.Name,
		Model:    domain.FreezerModel{Name: req.Model.Name, Year: req.Model.Year},
		Owner:    req.Owner,
		Products: products,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, freezer)
}

// Delete handles DELETE /api/freezers/:name.
//
// @Summary      Delete a freezer
// @Tags         freezers
// @Param        name  path  string  true  "Freezer name"
// @Success      200
// @Failure      404  {object}  errorResponse
// @Router       /api/freezers/{name} [delete]
func (h *FreezerHandler) Delete(c echo.Context) error {
	if err := h.service.RemoveFreezer(c.Request().Context(), c.Param("name")); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// PutIn handles POST /api/freezers/:name/put-in.
//
// @Summary      Add product counts to a freezer
// @Tags         freezers
// @Accept       json
// @Produce      json
// @Param        name  path      string            true  "Freezer name"
// @Param        body  body      map[string]int64  true  "Product name to count to add"
// @Success      200   {object}  domain.Freezer
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/freezers/{name}/put-in [post]
func (h *FreezerHandler) PutIn(c echo.Context) error {
	var amounts map[string]int64
	if err := c.Bind(&amounts); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	freezer, err := h.service.PutIn(c.Request().Context(), c.Param("name"), amounts)
	if err != nil {
		metrics.AdjustmentsTotal.WithLabelValues("put_in", "error").Inc()
		return err
	}

	metrics.AdjustmentsTotal.WithLabelValues("put_in", "ok").Inc()
	return c.JSON(http.StatusOK, freezer)
}

// PutOut handles POST /api/freezers/:name/put-out. Taking more of a product
// than the freezer holds is governed by the configured underflow policy; the
// default rejects the whole request with 422.
//
// @Summary      Take product counts out of a freezer
// @Tags         freezers
// @Accept       json
// @Produce      json
// @Param        name  path      string            true  "Freezer name"
// @Param        body  body      map[string]int64  true  "Product name to count to subtract"
// @Success      200   {object}  domain.Freezer
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/freezers/{name}/put-out [post]
func (h *FreezerHandler) PutOut(c echo.Context) error {
	var amounts map[string]int64
	if err := c.Bind(&amounts); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	freezer, err := h.service.PutOut(c.Request().Context(), c.Param("name"), amounts)
	if err != nil {
		metrics.AdjustmentsTotal.WithLabelValues("put_out", "error").Inc()
		return err
	}

	metrics.AdjustmentsTotal.WithLabelValues("put_out", "ok").Inc()
	return c.JSON(http.StatusOK, freezer)
}

// RemoveProduct handles POST /api/freezers/:name/remove. The body is the raw
// product name.
//
// @Summary      Remove a product entry from a freezer
// @Tags         freezers
// @Accept       plain
// @Produce      json
// @Param        name  path      string  true  "Freezer name"
// @Param        body  body      string  true  "Product name"
// @Success      200   {object}  domain.Freezer
// @Failure      404   {object}  errorResponse
// @Router       /api/freezers/{name}/remove [post]
func (h *FreezerHandler) RemoveProduct(c echo.Context) error {
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable body")
	}

	product := strings.TrimSpace(string(raw))
	if product == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty product name")
	}

	freezer, err := h.service.RemoveProduct(c.Request().Context(), c.Param("name"), product)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, freezer)
}
