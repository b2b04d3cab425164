package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/riderlink/riderlink/internal/utils"
)

// RecentActivity returns the newest audit entries with actor and vehicle
// detail.
func (h *Handler) RecentActivity(c echo.Context) error {
	entries, err := h.activity.RecentActivity(c.Request().Context(), queryLimit(c))
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "", entries)
}
