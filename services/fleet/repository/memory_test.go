package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riderlink/riderlink/internal/pkg/models"
	"github.com/riderlink/riderlink/services/fleet"
)

func newTestStore(t *testing.T, now time.Time) *MemoryStore {
	t.Helper()
	store := NewMemoryStore()
	store.now = func() time.Time { return now }
	return store
}

func createTestUser(t *testing.T, store *MemoryStore, email string, role models.Role) *models.User {
	t.Helper()
	user, err := store.CreateUser(context.Background(), &models.User{
		Email:     email,
		Password:  "hashed",
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
		Active:    true,
	})
	require.NoError(t, err)
	return user
}

func createTestVehicle(t *testing.T, store *MemoryStore, code string) *models.Vehicle {
	t.Helper()
	vehicle, err := store.CreateVehicle(context.Background(), &models.Vehicle{
		Code:         code,
		Make:         "Yamaha",
		Model:        "YBR 125",
		Year:         2022,
		LicensePlate: "ABC123",
		VIN:          "1HGCM82633A123456",
	})
	require.NoError(t, err)
	return vehicle
}

func TestCreateUserAssignsIdentityAndRejectsDuplicateEmail(t *testing.T) {
	store := newTestStore(t, time.Now())
	ctx := context.Background()

	user := createTestUser(t, store, "rider@example.com", models.RoleRider)
	assert.Equal(t, int64(1), user.ID)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", user.UUID.String())
	assert.False(t, user.CreatedAt.IsZero())

	_, err := store.CreateUser(ctx, &models.User{Email: "rider@example.com", Role: models.RoleRider})
	assert.ErrorIs(t, err, fleet.ErrDuplicateEmail)

	// The failed insert must not have consumed an id.
	second := createTestUser(t, store, "other@example.com", models.RoleRider)
	assert.Equal(t, int64(2), second.ID)
}

func TestUpdateUserLeavesAbsentFieldsUntouched(t *testing.T) {
	store := newTestStore(t, time.Now())
	ctx := context.Background()

	user := createTestUser(t, store, "rider@example.com", models.RoleRider)

	phone := "555-0100"
	updated, err := store.UpdateUser(ctx, user.ID, &models.UserPatch{Phone: &phone})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "555-0100", updated.Phone)
	assert.Equal(t, user.Email, updated.Email)
	assert.Equal(t, user.FirstName, updated.FirstName)
	assert.Equal(t, user.Role, updated.Role)
}

func TestUpdateUserUnknownIDReturnsNil(t *testing.T) {
	store := newTestStore(t, time.Now())

	phone := "555-0100"
	updated, err := store.UpdateUser(context.Background(), 42, &models.UserPatch{Phone: &phone})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestCreateVehicleRejectsDuplicateCode(t *testing.T) {
	store := newTestStore(t, time.Now())
	ctx := context.Background()

	createTestVehicle(t, store, "MBK-1023")

	_, err := store.CreateVehicle(ctx, &models.Vehicle{Code: "MBK-1023"})
	assert.ErrorIs(t, err, fleet.ErrDuplicateVehicle)
}

func TestAssignVehicleToUserAppliesAllSideEffects(t *testing.T) {
	store := newTestStore(t, time.Now())
	ctx := context.Background()

	rider := createTestUser(t, store, "rider@example.com", models.RoleRider)
	vehicle := createTestVehicle(t, store, "MBK-1023")
	assert.Equal(t, models.VehicleAvailable, vehicle.Status)

	assigned, err := store.AssignVehicleToUser(ctx, vehicle.ID, rider.ID)
	require.NoError(t, err)
	require.NotNil(t, assigned)

	assert.Equal(t, models.VehicleInUse, assigned.Status)
	require.NotNil(t, assigned.AssignedTo)
	assert.Equal(t, rider.ID, *assigned.AssignedTo)

	entries, err := store.ListRecentActivity(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.ActionVehicleAssigned, entries[0].Action)
	require.NotNil(t, entries[0].UserID)
	assert.Equal(t, rider.ID, *entries[0].UserID)
	require.NotNil(t, entries[0].VehicleID)
	assert.Equal(t, vehicle.ID, *entries[0].VehicleID)
}

func TestAssignVehicleToUnknownVehicleReturnsNil(t *testing.T) {
	store := newTestStore(t, time.Now())
	ctx := context.Background()

	rider := createTestUser(t, store, "rider@example.com", models.RoleRider)

	assigned, err := store.AssignVehicleToUser(ctx, 99, rider.ID)
	require.NoError(t, err)
	assert.Nil(t, assigned)

	// Nothing should have been logged for the failed assignment.
	entries, err := store.ListRecentActivity(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCompleteMaintenanceCascades(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store := newTestStore(t, now)
	ctx := context.Background()

	vehicle := createTestVehicle(t, store, "MBK-1023")
	inMaint := models.VehicleMaintenance
	_, err := store.UpdateVehicle(ctx, vehicle.ID, &models.VehiclePatch{Status: &inMaint})
	require.NoError(t, err)

	rec, err := store.CreateMaintenance(ctx, &models.Maintenance{
		VehicleID:     vehicle.ID,
		Type:          "oil_change",
		Description:   "Routine oil change",
		ScheduledDate: now.Add(-24 * time.Hour),
	})
	require.NoError(t, err)

	completedAt := now.Add(time.Hour)
	done, err := store.CompleteMaintenance(ctx, rec.ID, completedAt, "replaced filter")
	require.NoError(t, err)
	require.NotNil(t, done)

	require.NotNil(t, done.CompletedDate)
	assert.True(t, done.CompletedDate.Equal(completedAt))
	assert.Equal(t, "replaced filter", done.Notes)

	updated, err := store.GetVehicle(ctx, vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VehicleAvailable, updated.Status)
	require.NotNil(t, updated.LastMaintenanceDate)
	assert.True(t, updated.LastMaintenanceDate.Equal(completedAt))

	entries, err := store.ListRecentActivity(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.ActionMaintenanceCompleted, entries[0].Action)
}

func TestCompleteMaintenanceKeepsNotesWhenEmpty(t *testing.T) {
	store := newTestStore(t, time.Now())
	ctx := context.Background()

	vehicle := createTestVehicle(t, store, "MBK-1023")
	rec, err := store.CreateMaintenance(ctx, &models.Maintenance{
		VehicleID:     vehicle.ID,
		Type:          "oil_change",
		Description:   "Routine oil change",
		ScheduledDate: time.Now(),
		Notes:         "original note",
	})
	require.NoError(t, err)

	done, err := store.CompleteMaintenance(ctx, rec.ID, time.Now(), "")
	require.NoError(t, err)
	assert.Equal(t, "original note", done.Notes)
}

func TestListUpcomingMaintenanceBoundary(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store := newTestStore(t, now)
	ctx := context.Background()

	vehicle := createTestVehicle(t, store, "MBK-1023")

	add := func(scheduled time.Time) *models.Maintenance {
		rec, err := store.CreateMaintenance(ctx, &models.Maintenance{
			VehicleID:     vehicle.ID,
			Type:          "inspection",
			Description:   "Scheduled inspection",
			ScheduledDate: scheduled,
		})
		require.NoError(t, err)
		return rec
	}

	add(now)                                    // exactly now: excluded
	justAfter := add(now.Add(time.Millisecond)) // barely future: included
	add(now.Add(-time.Hour))                    // overdue: excluded
	later := add(now.Add(48 * time.Hour))       // future: included
	completed := add(now.Add(24 * time.Hour))
	_, err := store.CompleteMaintenance(ctx, completed.ID, now, "")
	require.NoError(t, err)

	upcoming, err := store.ListUpcomingMaintenance(ctx)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)

	// Soonest first.
	assert.Equal(t, justAfter.ID, upcoming[0].ID)
	assert.Equal(t, later.ID, upcoming[1].ID)
}

func TestGpsLocationOrderingAndLimit(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store := newTestStore(t, now)
	ctx := context.Background()

	vehicle := createTestVehicle(t, store, "MBK-1023")

	// All three points share a timestamp; insertion order must decide.
	for i := 0; i < 3; i++ {
		_, err := store.CreateGpsLocation(ctx, &models.GpsLocation{
			VehicleID: vehicle.ID,
			Latitude:  40.7128,
			Longitude: -74.0060,
			Speed:     10 * i,
		})
		require.NoError(t, err)
	}

	latest, err := store.GetLatestGpsLocation(ctx, vehicle.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, int64(3), latest.ID)

	history, err := store.ListGpsLocationsForVehicle(ctx, vehicle.ID, 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, int64(3), history[0].ID)
	assert.Equal(t, int64(2), history[1].ID)

	all, err := store.ListGpsLocationsForVehicle(ctx, vehicle.ID, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGetLatestGpsLocationForUnknownVehicle(t *testing.T) {
	store := newTestStore(t, time.Now())

	latest, err := store.GetLatestGpsLocation(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestCreateFuelReportAppendsActivity(t *testing.T) {
	store := newTestStore(t, time.Now())
	ctx := context.Background()

	rider := createTestUser(t, store, "rider@example.com", models.RoleRider)
	vehicle := createTestVehicle(t, store, "MBK-1023")

	report, err := store.CreateFuelReport(ctx, &models.FuelReport{
		VehicleID: vehicle.ID,
		UserID:    rider.ID,
		Amount:    5000,
		Cost:      750,
		Odometer:  12345,
	})
	require.NoError(t, err)
	assert.False(t, report.ReportDate.IsZero())

	entries, err := store.ListRecentActivity(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.ActionFuelReported, entries[0].Action)
}

func TestMarkAlertReadIsMonotonic(t *testing.T) {
	store := newTestStore(t, time.Now())
	ctx := context.Background()

	vehicle := createTestVehicle(t, store, "MBK-1023")
	alert, err := store.CreateAlert(ctx, &models.Alert{
		VehicleID: &vehicle.ID,
		Type:      models.AlertMaintenanceDue,
		Message:   "Maintenance due",
	})
	require.NoError(t, err)
	assert.False(t, alert.Read)

	read, err := store.MarkAlertRead(ctx, alert.ID)
	require.NoError(t, err)
	assert.True(t, read.Read)

	// Acknowledging again stays read.
	again, err := store.MarkAlertRead(ctx, alert.ID)
	require.NoError(t, err)
	assert.True(t, again.Read)

	unread, err := store.ListUnreadAlerts(ctx)
	require.NoError(t, err)
	assert.Empty(t, unread)
}

func TestSeedLoadsDemoFixture(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Seed(ctx))

	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	admin, err := store.GetUserByEmail(ctx, "admin@riderlink.com")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	vehicles, err := store.ListVehicles(ctx)
	require.NoError(t, err)
	assert.Len(t, vehicles, 3)

	unread, err := store.ListUnreadAlerts(ctx)
	require.NoError(t, err)
	assert.Len(t, unread, 2)

	entries, err := store.ListRecentActivity(ctx, 10)
	require.NoError(t, err)
	var attributed bool
	for _, e := range entries {
		if e.Action == models.ActionMaintenanceCompleted {
			require.NotNil(t, e.UserID)
			assert.Equal(t, admin.ID, *e.UserID)
			attributed = true
		}
	}
	assert.True(t, attributed)
}
