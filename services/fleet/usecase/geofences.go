package usecase

import (
	"context"

	"github.com/riderlink/riderlink/internal/pkg/models"
	"github.com/riderlink/riderlink/internal/utils"
	"github.com/riderlink/riderlink/services/fleet"
)

// GeofenceUC manages geofence definitions.
type GeofenceUC struct {
	repo fleet.Repository
}

// NewGeofenceUC creates the geofence use case.
func NewGeofenceUC(repo fleet.Repository) fleet.GeofenceUC {
	return &GeofenceUC{repo: repo}
}

// ListGeofences returns every geofence.
func (uc *GeofenceUC) ListGeofences(ctx context.Context) ([]*models.Geofence, error) {
	return uc.repo.ListGeofences(ctx)
}

// CreateGeofence stores a new geofence. The coordinate string must parse
// to a closed polygon before anything is written.
func (uc *GeofenceUC) CreateGeofence(ctx context.Context, actorID int64, req *models.CreateGeofenceRequest) (*models.Geofence, error) {
	if err := checkInput(req); err != nil {
		return nil, err
	}
	if _, err := utils.ParsePolygon(req.Coordinates); err != nil {
		return nil, fleet.NewValidationError("coordinates", "must be a JSON array of at least 3 [lat, lng] pairs")
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	fence := &models.Geofence{
		Name:        req.Name,
		Description: req.Description,
		Coordinates: req.Coordinates,
		Active:      active,
	}
	if actorID > 0 {
		fence.CreatedBy = &actorID
	}

	return uc.repo.CreateGeofence(ctx, fence)
}
