package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/frostline/freezer-api/internal/api/metrics"
	"github.com/frostline/freezer-api/internal/assets"
	"github.com/frostline/freezer-api/internal/core/ports"
)

// ImageHandler serves and stores freezer images. A freezer with no stored
// image gets the embedded default logo instead of a 404.
type ImageHandler struct {
	images ports.ImageRepository
}

func NewImageHandler(images ports.ImageRepository) *ImageHandler {
	return &ImageHandler{images: images}
}

// Get handles GET /api/freezers/:name/image.
//
// @Summary      Get a freezer's image
// @Tags         images
// @Produce      jpeg
// @Param        name  path  string  true  "Freezer name"
// @Success      200   {string}  binary
// @Router       /api/freezers/{name}/image [get]
func (h *ImageHandler) Get(c echo.Context) error {
	data, found, err := h.images.Get(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}

	if !found {
		metrics.ImageFetchesTotal.WithLabelValues("miss").Inc()
		data = assets.DefaultLogo
	} else {
		metrics.ImageFetchesTotal.WithLabelValues("hit").Inc()
	}

	return c.Blob(http.StatusOK, "image/jpeg", data)
}

// Put handles POST /api/freezers/:name/image. The body is the raw image bytes.
//
// @Summary      Store a freezer's image
// @Tags         images
// @Accept       octet-stream
// @Param        name  path  string  true  "Freezer name"
// @Success      200
// @Router       /api/freezers/{name}/image [post]
func (h *ImageHandler) Put(c echo.Context) error {
	data, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable body")
	}
	if len(data) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "empty image")
	}

	if err := h.images.Put(c.Request().Context(), c.Param("name"), data); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// Delete handles DELETE /api/freezers/:name/image.
//
// @Summary      Delete a freezer's image
// @Tags         images
// @Param        name  path  string  true  "Freezer name"
// @Success      200
// @Router       /api/freezers/{name}/image [delete]
func (h *ImageHandler) Delete(c echo.Context) error {
	if err := h.images.Delete(c.Request().Context(), c.Param("name")); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}
