package usecase

import (
	"context"

	"github.com/riderlink/riderlink/internal/pkg/models"
	"github.com/riderlink/riderlink/services/fleet"
)

// defaultActivityLimit caps the feed when the caller does not ask for a
// specific size.
const defaultActivityLimit = 10

// ActivityUC serves the audit trail enriched with actor and vehicle
// summaries.
type ActivityUC struct {
	repo fleet.Repository
}

// NewActivityUC creates the activity use case.
func NewActivityUC(repo fleet.Repository) fleet.ActivityUC {
	return &ActivityUC{repo: repo}
}

// RecentActivity returns the newest entries with their referenced user
// and vehicle resolved. Dangling references resolve to nil rather than
// failing the feed.
func (uc *ActivityUC) RecentActivity(ctx context.Context, limit int) ([]*models.ActivityEntry, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}

	logs, err := uc.repo.ListRecentActivity(ctx, limit)
	if err != nil {
		return nil, err
	}

	users := map[int64]*models.UserSummary{}
	vehicles := map[int64]*models.VehicleSummary{}

	entries := make([]*models.ActivityEntry, 0, len(logs))
	for _, log := range logs {
		entry := &models.ActivityEntry{ActivityLog: *log}

		if log.UserID != nil {
			summary, ok := users[*log.UserID]
			if !ok {
				user, err := uc.repo.GetUser(ctx, *log.UserID)
				if err != nil {
					return nil, err
				}
				if user != nil {
					summary = user.Summary()
				}
				users[*log.UserID] = summary
			}
			entry.User = summary
		}

		if log.VehicleID != nil {
			summary, ok := vehicles[*log.VehicleID]
			if !ok {
				vehicle, err := uc.repo.GetVehicle(ctx, *log.VehicleID)
				if err != nil {
					return nil, err
				}
				if vehicle != nil {
					summary = vehicle.Summary()
				}
				vehicles[*log.VehicleID] = summary
			}
			entry.Vehicle = summary
		}

		entries = append(entries, entry)
	}
	return entries, nil
}
