package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riderlink/riderlink/internal/pkg/models"
	"github.com/riderlink/riderlink/services/fleet"
	"github.com/riderlink/riderlink/services/fleet/repository"
)

func TestCreateMaintenanceRequiresScheduledDate(t *testing.T) {
	store := repository.NewMemoryStore()
	uc := NewMaintenanceUC(store)
	ctx := context.Background()

	vehicle := addVehicle(t, store, "MBK-1023")

	_, err := uc.CreateMaintenance(ctx, 1, &models.CreateMaintenanceRequest{
		VehicleID:   vehicle.ID,
		Type:        "oil_change",
		Description: "Routine oil change",
	})
	ve, ok := fleet.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "scheduledDate")

	records, err := store.ListMaintenanceForVehicle(ctx, vehicle.ID)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCreateMaintenanceAttributesActorAndAudits(t *testing.T) {
	store := repository.NewMemoryStore()
	uc := NewMaintenanceUC(store)
	ctx := context.Background()

	supervisor := registerUser(t, store, "super@example.com", "password123", models.RoleFleetSupervisor, true)
	vehicle := addVehicle(t, store, "MBK-1023")

	scheduled := time.Now().Add(72 * time.Hour)
	rec, err := uc.CreateMaintenance(ctx, supervisor.ID, &models.CreateMaintenanceRequest{
		VehicleID:     vehicle.ID,
		Type:          "inspection",
		Description:   "Quarterly inspection",
		ScheduledDate: &scheduled,
		Cost:          15000,
	})
	require.NoError(t, err)
	require.NotNil(t, rec.CreatedBy)
	assert.Equal(t, supervisor.ID, *rec.CreatedBy)

	entries, err := store.ListRecentActivity(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.ActionMaintenanceScheduled, entries[0].Action)
}

func TestCreateMaintenanceUnknownVehicle(t *testing.T) {
	store := repository.NewMemoryStore()
	uc := NewMaintenanceUC(store)

	scheduled := time.Now().Add(time.Hour)
	_, err := uc.CreateMaintenance(context.Background(), 1, &models.CreateMaintenanceRequest{
		VehicleID:     99,
		Type:          "inspection",
		Description:   "Quarterly inspection",
		ScheduledDate: &scheduled,
	})
	assert.ErrorIs(t, err, fleet.ErrNotFound)
}

func TestCompleteMaintenanceDefaultsDateToNow(t *testing.T) {
	store := repository.NewMemoryStore()
	uc := NewMaintenanceUC(store)
	ctx := context.Background()

	vehicle := addVehicle(t, store, "MBK-1023")
	scheduled := time.Now().Add(-time.Hour)
	rec, err := store.CreateMaintenance(ctx, &models.Maintenance{
		VehicleID:     vehicle.ID,
		Type:          "oil_change",
		Description:   "Routine oil change",
		ScheduledDate: scheduled,
	})
	require.NoError(t, err)

	before := time.Now()
	done, err := uc.CompleteMaintenance(ctx, 1, rec.ID, &models.CompleteMaintenanceRequest{Notes: "done"})
	require.NoError(t, err)

	require.NotNil(t, done.CompletedDate)
	assert.False(t, done.CompletedDate.Before(before))
	assert.Equal(t, "done", done.Notes)
}

func TestCompleteMaintenanceNotFound(t *testing.T) {
	store := repository.NewMemoryStore()
	uc := NewMaintenanceUC(store)

	_, err := uc.CompleteMaintenance(context.Background(), 1, 99, &models.CompleteMaintenanceRequest{})
	assert.ErrorIs(t, err, fleet.ErrNotFound)
}
