package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/riderlink/riderlink/internal/pkg/models"
	"github.com/riderlink/riderlink/internal/utils"
)

// RecordLocation ingests a GPS point.
func (h *Handler) RecordLocation(c echo.Context) error {
	var req models.CreateGpsLocationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	loc, err := h.telemetry.RecordLocation(c.Request().Context(), &req)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusCreated, "Location recorded", loc)
}

// LatestLocation returns the most recent point for a vehicle.
func (h *Handler) LatestLocation(c echo.Context) error {
	vehicleID, err := pathID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle id")
	}

	loc, err := h.telemetry.LatestLocation(c.Request().Context(), vehicleID)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "", loc)
}

// LocationHistory returns a vehicle's points, newest first, capped by
// ?limit when present.
func (h *Handler) LocationHistory(c echo.Context) error {
	vehicleID, err := pathID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle id")
	}

	locations, err := h.telemetry.LocationHistory(c.Request().Context(), vehicleID, queryLimit(c))
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "", locations)
}
