package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riderlink/riderlink/internal/pkg/models"
	"github.com/riderlink/riderlink/services/fleet"
	"github.com/riderlink/riderlink/services/fleet/repository"
)

func TestCreateVehicleRecordsAudit(t *testing.T) {
	store := repository.NewMemoryStore()
	uc := NewVehicleUC(store)
	ctx := context.Background()

	admin := registerUser(t, store, "admin@example.com", "password123", models.RoleAdmin, true)

	vehicle, err := uc.CreateVehicle(ctx, admin.ID, &models.CreateVehicleRequest{
		Code:         "MBK-1023",
		Make:         "Yamaha",
		Model:        "YBR 125",
		Year:         2022,
		LicensePlate: "ABC123",
		VIN:          "1HGCM82633A123456",
	})
	require.NoError(t, err)
	assert.Equal(t, models.VehicleAvailable, vehicle.Status)

	entries, err := store.ListRecentActivity(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.ActionVehicleCreated, entries[0].Action)
	require.NotNil(t, entries[0].UserID)
	assert.Equal(t, admin.ID, *entries[0].UserID)
}

func TestCreateVehicleValidationMakesNoWrites(t *testing.T) {
	store := repository.NewMemoryStore()
	uc := NewVehicleUC(store)
	ctx := context.Background()

	_, err := uc.CreateVehicle(ctx, 1, &models.CreateVehicleRequest{Make: "Yamaha"})
	ve, ok := fleet.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "vehicleId")
	assert.Contains(t, ve.Fields, "model")

	vehicles, err := store.ListVehicles(ctx)
	require.NoError(t, err)
	assert.Empty(t, vehicles)

	entries, err := store.ListRecentActivity(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListVehiclesByStatus(t *testing.T) {
	store := repository.NewMemoryStore()
	uc := NewVehicleUC(store)
	ctx := context.Background()

	addVehicle(t, store, "MBK-1023")
	second := addVehicle(t, store, "MBK-1065")
	inMaint := models.VehicleMaintenance
	_, err := store.UpdateVehicle(ctx, second.ID, &models.VehiclePatch{Status: &inMaint})
	require.NoError(t, err)

	available, err := uc.ListVehicles(ctx, models.VehicleAvailable)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "MBK-1023", available[0].Code)

	all, err := uc.ListVehicles(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = uc.ListVehicles(ctx, "flying")
	_, ok := fleet.AsValidationError(err)
	assert.True(t, ok)
}

func TestAssignVehicleUnknownUser(t *testing.T) {
	store := repository.NewMemoryStore()
	uc := NewVehicleUC(store)
	ctx := context.Background()

	vehicle := addVehicle(t, store, "MBK-1023")

	_, err := uc.AssignVehicle(ctx, vehicle.ID, 99)
	assert.ErrorIs(t, err, fleet.ErrNotFound)

	// The vehicle must be untouched after the failed assignment.
	unchanged, err := store.GetVehicle(ctx, vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VehicleAvailable, unchanged.Status)
	assert.Nil(t, unchanged.AssignedTo)
}

func TestAssignVehicleSuccess(t *testing.T) {
	store := repository.NewMemoryStore()
	uc := NewVehicleUC(store)
	ctx := context.Background()

	rider := registerUser(t, store, "rider@example.com", "password123", models.RoleRider, true)
	vehicle := addVehicle(t, store, "MBK-1023")

	assigned, err := uc.AssignVehicle(ctx, vehicle.ID, rider.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VehicleInUse, assigned.Status)
	require.NotNil(t, assigned.AssignedTo)
	assert.Equal(t, rider.ID, *assigned.AssignedTo)
}

func TestUpdateVehicleNotFound(t *testing.T) {
	store := repository.NewMemoryStore()
	uc := NewVehicleUC(store)

	newMake := "Honda"
	_, err := uc.UpdateVehicle(context.Background(), 1, 99, &models.VehiclePatch{Make: &newMake})
	assert.ErrorIs(t, err, fleet.ErrNotFound)
}
