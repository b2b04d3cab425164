package usecase

import (
	"context"

	"github.com/riderlink/riderlink/internal/pkg/models"
	"github.com/riderlink/riderlink/services/fleet"
)

// AlertUC serves and acknowledges alerts.
type AlertUC struct {
	repo fleet.Repository
}

// NewAlertUC creates the alert use case.
func NewAlertUC(repo fleet.Repository) fleet.AlertUC {
	return &AlertUC{repo: repo}
}

// ListUnreadAlerts returns unacknowledged alerts, newest first.
func (uc *AlertUC) ListUnreadAlerts(ctx context.Context) ([]*models.Alert, error) {
	return uc.repo.ListUnreadAlerts(ctx)
}

// MarkAlertRead acknowledges an alert. Acknowledging an already read
// alert is a no-op, not an error.
func (uc *AlertUC) MarkAlertRead(ctx context.Context, id int64) (*models.Alert, error) {
	alert, err := uc.repo.MarkAlertRead(ctx, id)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, fleet.ErrNotFound
	}
	return alert, nil
}
