package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/riderlink/riderlink/internal/pkg/middleware"
	"github.com/riderlink/riderlink/internal/pkg/models"
	"github.com/riderlink/riderlink/internal/utils"
)

// ListVehicles returns the fleet, optionally filtered by ?status.
func (h *Handler) ListVehicles(c echo.Context) error {
	status := models.VehicleStatus(c.QueryParam("status"))

	vehicles, err := h.vehicles.ListVehicles(c.Request().Context(), status)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "", vehicles)
}

// GetVehicle returns a single vehicle.
func (h *Handler) GetVehicle(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle id")
	}

	vehicle, err := h.vehicles.GetVehicle(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "", vehicle)
}

// CreateVehicle registers a vehicle.
func (h *Handler) CreateVehicle(c echo.Context) error {
	var req models.CreateVehicleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	vehicle, err := h.vehicles.CreateVehicle(c.Request().Context(), middleware.UserIDFromContext(c), &req)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusCreated, "Vehicle created", vehicle)
}

// UpdateVehicle applies a partial vehicle update.
func (h *Handler) UpdateVehicle(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle id")
	}

	var patch models.VehiclePatch
	if err := c.Bind(&patch); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	vehicle, err := h.vehicles.UpdateVehicle(c.Request().Context(), middleware.UserIDFromContext(c), id, &patch)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "Vehicle updated", vehicle)
}

// AssignVehicle hands a vehicle to a rider.
func (h *Handler) AssignVehicle(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle id")
	}

	var req models.AssignVehicleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if fields := utils.ValidateStruct(&req); fields != nil {
		return utils.ValidationErrorResponse(c, "Validation failed", fields)
	}

	vehicle, err := h.vehicles.AssignVehicle(c.Request().Context(), id, req.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "Vehicle assigned", vehicle)
}
