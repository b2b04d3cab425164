package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/riderlink/riderlink/internal/pkg/middleware"
	"github.com/riderlink/riderlink/internal/pkg/models"
	"github.com/riderlink/riderlink/internal/utils"
)

// ListGeofences returns every geofence.
func (h *Handler) ListGeofences(c echo.Context) error {
	fences, err := h.geofences.ListGeofences(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "", fences)
}

// CreateGeofence stores a new geofence.
func (h *Handler) CreateGeofence(c echo.Context) error {
	var req models.CreateGeofenceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	fence, err := h.geofences.CreateGeofence(c.Request().Context(), middleware.UserIDFromContext(c), &req)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusCreated, "Geofence created", fence)
}
