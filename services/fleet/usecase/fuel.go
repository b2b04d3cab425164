package usecase

import (
	"context"

	"github.com/riderlink/riderlink/internal/pkg/models"
	"github.com/riderlink/riderlink/services/fleet"
)

// FuelUC implements fuel purchase reporting.
type FuelUC struct {
	repo fleet.Repository
}

// NewFuelUC creates the fuel use case.
func NewFuelUC(repo fleet.Repository) fleet.FuelUC {
	return &FuelUC{repo: repo}
}

// CreateFuelReport records a purchase attributed to the acting user. The
// repository appends the fuel_reported audit entry with the report.
func (uc *FuelUC) CreateFuelReport(ctx context.Context, actorID int64, req *models.CreateFuelReportRequest) (*models.FuelReport, error) {
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

	return uc.repo.CreateFuelReport(ctx, &models.FuelReport{
		VehicleID: req.VehicleID,
		UserID:    actorID,
		Amount:    req.Amount,
		Cost:      req.Cost,
		Odometer:  req.Odometer,
		Notes:     req.Notes,
	})
}

// ListFuelReportsForVehicle returns a vehicle's purchases, newest first.
func (uc *FuelUC) ListFuelReportsForVehicle(ctx context.Context, vehicleID int64) ([]*models.FuelReport, error) {
	return uc.repo.ListFuelReportsForVehicle(ctx, vehicleID)
}
