package http

import (
	nethttp "net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/riderlink/riderlink/internal/pkg/middleware"
	"github.com/riderlink/riderlink/internal/pkg/models"
	"github.com/riderlink/riderlink/internal/utils"
)

// CreateMaintenance schedules service for a vehicle.
func (h *Handler) CreateMaintenance(c echo.Context) error {
	var req models.CreateMaintenanceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	rec, err := h.maintenance.CreateMaintenance(c.Request().Context(), middleware.UserIDFromContext(c), &req)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusCreated, "Maintenance scheduled", rec)
}

// ListMaintenance serves the combined listing endpoint: ?vehicleId=
// returns one vehicle's history, anything else returns pending future
// service.
func (h *Handler) ListMaintenance(c echo.Context) error {
	if raw := c.QueryParam("vehicleId"); raw != "" {
		vehicleID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || vehicleID <= 0 {
			return utils.BadRequestResponse(c, "Invalid vehicle id")
		}
		records, err := h.maintenance.ListMaintenanceForVehicle(c.Request().Context(), vehicleID)
		if err != nil {
			return writeError(c, err)
		}
		return utils.SuccessResponse(c, nethttp.StatusOK, "", records)
	}

	return h.ListUpcomingMaintenance(c)
}

// ListMaintenanceForVehicle returns a vehicle's service history.
func (h *Handler) ListMaintenanceForVehicle(c echo.Context) error {
	vehicleID, err := pathID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle id")
	}

	records, err := h.maintenance.ListMaintenanceForVehicle(c.Request().Context(), vehicleID)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "", records)
}

// ListUpcomingMaintenance returns pending future service, soonest first.
func (h *Handler) ListUpcomingMaintenance(c echo.Context) error {
	records, err := h.maintenance.ListUpcomingMaintenance(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "", records)
}

// CompleteMaintenance marks a record done.
func (h *Handler) CompleteMaintenance(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid maintenance id")
	}

	var req models.CompleteMaintenanceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	rec, err := h.maintenance.CompleteMaintenance(c.Request().Context(), middleware.UserIDFromContext(c), id, &req)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "Maintenance completed", rec)
}
