package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riderlink/riderlink/internal/pkg/models"
	"github.com/riderlink/riderlink/services/fleet/repository"
)

func TestRecentActivityEnrichesReferences(t *testing.T) {
	store := repository.NewMemoryStore()
	uc := NewActivityUC(store)
	ctx := context.Background()

	rider := registerUser(t, store, "rider@example.com", "password123", models.RoleRider, true)
	vehicle := addVehicle(t, store, "MBK-1023")

	_, err := store.CreateActivityLog(ctx, &models.ActivityLog{
		UserID:      &rider.ID,
		VehicleID:   &vehicle.ID,
		Action:      "vehicle_checkout",
		Description: "Vehicle MBK-1023 checked out",
	})
	require.NoError(t, err)

	entries, err := uc.RecentActivity(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	require.NotNil(t, entries[0].User)
	assert.Equal(t, rider.FirstName, entries[0].User.FirstName)
	require.NotNil(t, entries[0].Vehicle)
	assert.Equal(t, "MBK-1023", entries[0].Vehicle.Code)
}

func TestRecentActivityToleratesDanglingReferences(t *testing.T) {
	store := repository.NewMemoryStore()
	uc := NewActivityUC(store)
	ctx := context.Background()

	missingUser := int64(77)
	_, err := store.CreateActivityLog(ctx, &models.ActivityLog{
		UserID:      &missingUser,
		Action:      "vehicle_checkout",
		Description: "Checked out by a deleted account",
	})
	require.NoError(t, err)

	entries, err := uc.RecentActivity(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].User)
	assert.Nil(t, entries[0].Vehicle)
}

func TestRecentActivityDefaultLimit(t *testing.T) {
	store := repository.NewMemoryStore()
	uc := NewActivityUC(store)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		_, err := store.CreateActivityLog(ctx, &models.ActivityLog{
			Action:      "vehicle_checkout",
			Description: fmt.Sprintf("entry %d", i),
		})
		require.NoError(t, err)
	}

	entries, err := uc.RecentActivity(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, entries, defaultActivityLimit)

	// Newest entry first.
	assert.Equal(t, "entry 14", entries[0].Description)

	five, err := uc.RecentActivity(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, five, 5)
}
