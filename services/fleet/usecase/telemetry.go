package usecase

import (
	"context"
	"fmt"

	"github.com/riderlink/riderlink/internal/pkg/events"
	"github.com/riderlink/riderlink/internal/pkg/logger"
	"github.com/riderlink/riderlink/internal/pkg/models"
	"github.com/riderlink/riderlink/internal/utils"
	"github.com/riderlink/riderlink/services/fleet"
)

// TelemetryUC implements GPS ingestion and location queries. Each
// recorded point is evaluated against the active geofences; crossing a
// boundary in either direction raises an alert.
type TelemetryUC struct {
	repo      fleet.Repository
	publisher events.Publisher
}

// NewTelemetryUC creates the telemetry use case.
func NewTelemetryUC(repo fleet.Repository, publisher events.Publisher) fleet.TelemetryUC {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &TelemetryUC{repo: repo, publisher: publisher}
}

// RecordLocation stores a GPS point for an existing vehicle. The
// timestamp and geohash cell are assigned here, never by the client.
func (uc *TelemetryUC) RecordLocation(ctx context.Context, req *models.CreateGpsLocationRequest) (*models.GpsLocation, error) {
	if err := checkInput(req); err != nil {
		return nil, err
	}

	vehicle, err := uc.repo.GetVehicle(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, fleet.ErrNotFound
	}

	previous, err := uc.repo.GetLatestGpsLocation(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}

	loc, err := uc.repo.CreateGpsLocation(ctx, &models.GpsLocation{
		VehicleID: req.VehicleID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Speed:     req.Speed,
		Geohash:   utils.EncodeLocation(req.Latitude, req.Longitude),
	})
	if err != nil {
		return nil, err
	}

	uc.evaluateGeofences(ctx, vehicle, previous, loc)
	return loc, nil
}

// LatestLocation returns the most recent point for a vehicle.
func (uc *TelemetryUC) LatestLocation(ctx context.Context, vehicleID int64) (*models.GpsLocation, error) {
	loc, err := uc.repo.GetLatestGpsLocation(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, fleet.ErrNotFound
	}
	return loc, nil
}

// LocationHistory returns points newest first, capped at limit when
// limit is positive.
func (uc *TelemetryUC) LocationHistory(ctx context.Context, vehicleID int64, limit int) ([]*models.GpsLocation, error) {
	return uc.repo.ListGpsLocationsForVehicle(ctx, vehicleID, limit)
}

// evaluateGeofences raises enter/exit alerts for boundary transitions
// between the previous and current point. Alert creation is best-effort
// and never fails the ingestion.
func (uc *TelemetryUC) evaluateGeofences(ctx context.Context, vehicle *models.Vehicle, previous, current *models.GpsLocation) {
	if previous == nil {
		// First point for this vehicle; no transition to detect.
		return
	}

	fences, err := uc.repo.ListGeofences(ctx)
	if err != nil {
		logger.Warn("Failed to list geofences for evaluation", logger.Err(err))
		return
	}

	before := utils.GeoPoint{Latitude: previous.Latitude, Longitude: previous.Longitude}
	now := utils.GeoPoint{Latitude: current.Latitude, Longitude: current.Longitude}

	for _, fence := range fences {
		if !fence.Active {
			continue
		}

		polygon, err := utils.ParsePolygon(fence.Coordinates)
		if err != nil {
			logger.Warn("Skipping geofence with malformed coordinates",
				logger.Int64("geofence_id", fence.ID),
				logger.Err(err),
			)
			continue
		}

		wasInside := utils.PointInPolygon(before, polygon)
		isInside := utils.PointInPolygon(now, polygon)
		if wasInside == isInside {
			continue
		}

		alertType := models.AlertGeofenceExit
		verb := "exited"
		if isInside {
			alertType = models.AlertGeofenceEnter
			verb = "entered"
		}

		alert, err := uc.repo.CreateAlert(ctx, &models.Alert{
			VehicleID: &vehicle.ID,
			Type:      alertType,
			Message:   fmt.Sprintf("Vehicle %s %s geofence %s", vehicle.Code, verb, fence.Name),
		})
		if err != nil {
			logger.Warn("Failed to create geofence alert",
				logger.Int64("vehicle_id", vehicle.ID),
				logger.Int64("geofence_id", fence.ID),
				logger.Err(err),
			)
			continue
		}

		if err := uc.publisher.Publish(string(alertType), alert); err != nil {
			logger.Warn("Failed to publish geofence alert", logger.Err(err))
		}
	}
}
