package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/riderlink/riderlink/internal/utils"
)

// ListUnreadAlerts returns unacknowledged alerts, newest first.
func (h *Handler) ListUnreadAlerts(c echo.Context) error {
	alerts, err := h.alerts.ListUnreadAlerts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "", alerts)
}

// MarkAlertRead acknowledges an alert.
func (h *Handler) MarkAlertRead(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid alert id")
	}

	alert, err := h.alerts.MarkAlertRead(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "Alert acknowledged", alert)
}
