package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/riderlink/riderlink/internal/pkg/middleware"
	"github.com/riderlink/riderlink/internal/pkg/models"
	"github.com/riderlink/riderlink/internal/utils"
)

// CreateFuelReport records a fuel purchase for the acting user.
func (h *Handler) CreateFuelReport(c echo.Context) error {
	var req models.CreateFuelReportRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	report, err := h.fuel.CreateFuelReport(c.Request().Context(), middleware.UserIDFromContext(c), &req)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusCreated, "Fuel report recorded", report)
}

// ListFuelReportsForVehicle returns a vehicle's purchases, newest first.
func (h *Handler) ListFuelReportsForVehicle(c echo.Context) error {
	vehicleID, err := pathID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle id")
	}

	reports, err := h.fuel.ListFuelReportsForVehicle(c.Request().Context(), vehicleID)
	if err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "", reports)
}
