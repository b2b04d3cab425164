package http

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/riderlink/riderlink/internal/pkg/logger"
	"github.com/riderlink/riderlink/internal/pkg/models"
	"github.com/riderlink/riderlink/internal/utils"
	"github.com/riderlink/riderlink/services/fleet"
)

// Handler exposes the fleet use cases over HTTP.
type Handler struct {
	auth        fleet.AuthUC
	users       fleet.UserUC
	vehicles    fleet.VehicleUC
	telemetry   fleet.TelemetryUC
	maintenance fleet.MaintenanceUC
	fuel        fleet.FuelUC
	activity    fleet.ActivityUC
	geofences   fleet.GeofenceUC
	alerts      fleet.AlertUC
	dashboard   fleet.DashboardUC
	jwtCfg      models.JWTConfig
}

// NewHandler wires the use cases into a single HTTP handler.
func NewHandler(
	auth fleet.AuthUC,
	users fleet.UserUC,
	vehicles fleet.VehicleUC,
	telemetry fleet.TelemetryUC,
	maintenance fleet.MaintenanceUC,
	fuel fleet.FuelUC,
	activity fleet.ActivityUC,
	geofences fleet.GeofenceUC,
	alerts fleet.AlertUC,
	dashboard fleet.DashboardUC,
	jwtCfg models.JWTConfig,
) *Handler {
	return &Handler{
		auth:        auth,
		users:       users,
		vehicles:    vehicles,
		telemetry:   telemetry,
		maintenance: maintenance,
		fuel:        fuel,
		activity:    activity,
		geofences:   geofences,
		alerts:      alerts,
		dashboard:   dashboard,
		jwtCfg:      jwtCfg,
	}
}

// writeError maps service errors onto the response envelope. Unexpected
// errors are logged and reported generically.
func writeError(c echo.Context, err error) error {
	if ve, ok := fleet.AsValidationError(err); ok {
		return utils.ValidationErrorResponse(c, "Validation failed", ve.Fields)
	}

	switch {
	case errors.Is(err, fleet.ErrNotFound):
		return utils.NotFoundResponse(c, "")
	case errors.Is(err, fleet.ErrInvalidCredentials):
		return utils.UnauthorizedResponse(c, "Invalid email or password")
	case errors.Is(err, fleet.ErrDuplicateEmail):
		return utils.BadRequestResponse(c, "Email already registered")
	case errors.Is(err, fleet.ErrDuplicateVehicle):
		return utils.BadRequestResponse(c, "Vehicle ID already registered")
	}

	logger.Error("Request failed",
		logger.String("path", c.Path()),
		logger.Err(err),
	)
	return utils.InternalServerErrorResponse(c, "")
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// queryLimit parses an optional limit query parameter; 0 means unset.
func queryLimit(c echo.Context) int {
	raw := c.QueryParam("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
