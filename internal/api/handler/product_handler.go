package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/frostline/freezer-api/internal/core/ports"
)

// ProductHandler serves the read-only product reference data.
type ProductHandler struct {
	service ports.InventoryService
}

func NewProductHandler(service ports.InventoryService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /api/products.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        limit   query    int  false  "Max products to return"
// @Param        offset  query    int  false  "Products to skip"
// @Success      200     {array}  domain.Product
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.ListProducts(c.Request().Context(), pageFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /api/products/:name.
//
// @Summary      Get a product by name
// @Tags         products
// @Produce      json
// @Param        name  path      string  true  "Product name"
// @Success      200   {object}  domain.Product
// @Failure      404   {object}  errorResponse
// @Router       /api/products/{name} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.GetProduct(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}
