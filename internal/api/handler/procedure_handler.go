package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/frostline/freezer-api/internal/api/metrics"
	"github.com/frostline/freezer-api/internal/core/ports"
)

// ProcedureHandler triggers the batch recompute over every freezer.
type ProcedureHandler struct {
	recompute ports.RecomputeService
}

func NewProcedureHandler(recompute ports.RecomputeService) *ProcedureHandler {
	return &ProcedureHandler{recompute: recompute}
}

// Run handles POST /api/stored_procedure: resets every product count in
// every freezer to the product's configured default.
//
// @Summary      Reset all freezer counts to product defaults
// @Tags         procedures
// @Produce      json
// @Success      200  {object}  ports.RecomputeSummary
// @Failure      401  {object}  errorResponse
// @Router       /api/stored_procedure [post]
func (h *ProcedureHandler) Run(c echo.Context) error {
	summary, err := h.recompute.Run(c.Request().Context())
	if err != nil {
		metrics.RecomputeRunsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.RecomputeRunsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, summary)
}
