package usecase

import (
	"context"

	"github.com/riderlink/riderlink/internal/pkg/models"
	"github.com/riderlink/riderlink/services/fleet"
)

// DashboardUC composes the fleet summary from the live collections on
// every request.
type DashboardUC struct {
	repo fleet.Repository
}

// NewDashboardUC creates the dashboard use case.
func NewDashboardUC(repo fleet.Repository) fleet.DashboardUC {
	return &DashboardUC{repo: repo}
}

// Summary aggregates vehicle status counts, active rider count, pending
// upcoming maintenance and unread alerts.
func (uc *DashboardUC) Summary(ctx context.Context) (*models.DashboardSummary, error) {
	vehicles, err := uc.repo.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}

	users, err := uc.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	upcoming, err := uc.repo.ListUpcomingMaintenance(ctx)
	if err != nil {
		return nil, err
	}

	alerts, err := uc.repo.ListUnreadAlerts(ctx)
	if err != nil {
		return nil, err
	}

	summary := &models.DashboardSummary{
		TotalVehicles:  len(vehicles),
		MaintenanceDue: len(upcoming),
		Alerts:         len(alerts),
	}

	for _, v := range vehicles {
		switch v.Status {
		case models.VehicleAvailable:
			summary.VehicleStatusCounts.Available++
		case models.VehicleInUse:
			summary.VehicleStatusCounts.InUse++
		case models.VehicleMaintenance:
			summary.VehicleStatusCounts.Maintenance++
		case models.VehicleServiceDue:
			summary.VehicleStatusCounts.ServiceDue++
		}
	}

	for _, u := range users {
		if u.Role == models.RoleRider && u.Active {
			summary.ActiveRiders++
		}
	}

	return summary, nil
}
