package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/riderlink/riderlink/internal/utils"
)

// DashboardSummary returns the aggregated fleet view.
func (h *Handler) DashboardSummary(c echo.Context) error {
	summary, err := h.dashboard.Summary(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "", summary)
}
