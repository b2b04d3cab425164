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

func TestCreateGeofence(t *testing.T) {
	store := repository.NewMemoryStore()
	uc := NewGeofenceUC(store)
	ctx := context.Background()

	admin := registerUser(t, store, "admin@example.com", "password123", models.RoleAdmin, true)

	fence, err := uc.CreateGeofence(ctx, admin.ID, &models.CreateGeofenceRequest{
		Name:        "Depot",
		Description: "Main depot area",
		Coordinates: `[[40.70,-74.01],[40.72,-74.01],[40.72,-74.00],[40.70,-74.00]]`,
	})
	require.NoError(t, err)

	assert.True(t, fence.Active)
	require.NotNil(t, fence.CreatedBy)
	assert.Equal(t, admin.ID, *fence.CreatedBy)
}

func TestCreateGeofenceRejectsMalformedPolygon(t *testing.T) {
	store := repository.NewMemoryStore()
	uc := NewGeofenceUC(store)
	ctx := context.Background()

	cases := []string{
		"not json",
		`[[40.70,-74.01],[40.72,-74.01]]`, // too few points
		`[[40.70],[40.72,-74.01],[40.72,-74.00]]`,
	}
	for _, coords := range cases {
		_, err := uc.CreateGeofence(ctx, 1, &models.CreateGeofenceRequest{
			Name:        "Broken",
			Coordinates: coords,
		})
		ve, ok := fleet.AsValidationError(err)
		require.True(t, ok, "coordinates %q should be rejected", coords)
		assert.Contains(t, ve.Fields, "coordinates")
	}

	fences, err := store.ListGeofences(ctx)
	require.NoError(t, err)
	assert.Empty(t, fences)
}
