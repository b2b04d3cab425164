package http

import (
	"context"
	nethttp "net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riderlink/riderlink/internal/pkg/models"
)

func TestDashboardSummaryEndpoint(t *testing.T) {
	ts := newTestServer(t)
	rider := ts.addUser(t, "rider@example.com", "password123", models.RoleRider)
	ts.addVehicle(t, "MBK-1023")
	ts.addVehicle(t, "MBK-1065")

	rec := ts.request(nethttp.MethodGet, "/api/dashboard/summary", ts.tokenFor(t, rider), "")
	require.Equal(t, nethttp.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["totalVehicles"])
	assert.Equal(t, float64(1), data["activeRiders"])

	counts, ok := data["vehicleStatusCounts"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), counts["available"])
}

func TestAlertsFlow(t *testing.T) {
	ts := newTestServer(t)
	rider := ts.addUser(t, "rider@example.com", "password123", models.RoleRider)
	vehicle := ts.addVehicle(t, "MBK-1023")
	token := ts.tokenFor(t, rider)

	_, err := ts.store.CreateAlert(context.Background(), &models.Alert{
		VehicleID: &vehicle.ID,
		Type:      models.AlertMaintenanceDue,
		Message:   "Maintenance due in 5 days",
	})
	require.NoError(t, err)

	unread := ts.request(nethttp.MethodGet, "/api/alerts", token, "")
	require.Equal(t, nethttp.StatusOK, unread.Code)
	data, ok := decodeBody(t, unread)["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, data, 1)

	ack := ts.request(nethttp.MethodPost, "/api/alerts/1/read", token, "")
	require.Equal(t, nethttp.StatusOK, ack.Code)

	after := ts.request(nethttp.MethodGet, "/api/alerts", token, "")
	data, ok = decodeBody(t, after)["data"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, data)
}

func TestMarkUnknownAlertReturns404(t *testing.T) {
	ts := newTestServer(t)
	rider := ts.addUser(t, "rider@example.com", "password123", models.RoleRider)

	rec := ts.request(nethttp.MethodPost, "/api/alerts/42/read", ts.tokenFor(t, rider), "")
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}

func TestGeofencesForbiddenForRider(t *testing.T) {
	ts := newTestServer(t)
	rider := ts.addUser(t, "rider@example.com", "password123", models.RoleRider)

	rec := ts.request(nethttp.MethodGet, "/api/geofences", ts.tokenFor(t, rider), "")
	assert.Equal(t, nethttp.StatusForbidden, rec.Code)
}

func TestGeofenceCreateAndList(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.addUser(t, "admin@example.com", "password123", models.RoleAdmin)
	token := ts.tokenFor(t, admin)

	rec := ts.request(nethttp.MethodPost, "/api/geofences", token,
		`{"name":"Depot","coordinates":"[[40.70,-74.01],[40.72,-74.01],[40.72,-74.00],[40.70,-74.00]]"}`)
	require.Equal(t, nethttp.StatusCreated, rec.Code)

	list := ts.request(nethttp.MethodGet, "/api/geofences", token, "")
	require.Equal(t, nethttp.StatusOK, list.Code)
	data, ok := decodeBody(t, list)["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 1)
}

func TestRecentActivityEndpoint(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.addUser(t, "admin@example.com", "password123", models.RoleAdmin)
	rider := ts.addUser(t, "rider@example.com", "password123", models.RoleRider)
	ts.addVehicle(t, "MBK-1023")
	token := ts.tokenFor(t, admin)

	assign := ts.request(nethttp.MethodPost, "/api/vehicles/1/assign", token, `{"userId":2}`)
	require.Equal(t, nethttp.StatusOK, assign.Code)

	rec := ts.request(nethttp.MethodGet, "/api/activity-logs", token, "")
	require.Equal(t, nethttp.StatusOK, rec.Code)

	data, ok := decodeBody(t, rec)["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, data, 1)

	entry := data[0].(map[string]interface{})
	assert.Equal(t, models.ActionVehicleAssigned, entry["action"])
	user, ok := entry["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(rider.ID), user["id"])
}

func TestFuelReportEndpoint(t *testing.T) {
	ts := newTestServer(t)
	rider := ts.addUser(t, "rider@example.com", "password123", models.RoleRider)
	ts.addVehicle(t, "MBK-1023")
	token := ts.tokenFor(t, rider)

	rec := ts.request(nethttp.MethodPost, "/api/fuel-reports", token,
		`{"vehicleId":1,"amount":5000,"cost":750,"odometer":12345}`)
	require.Equal(t, nethttp.StatusCreated, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]interface{})
	// Attribution comes from the session, not the payload.
	assert.Equal(t, float64(rider.ID), data["userId"])

	list := ts.request(nethttp.MethodGet, "/api/vehicles/1/fuel-reports", token, "")
	require.Equal(t, nethttp.StatusOK, list.Code)
	reports, ok := decodeBody(t, list)["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, reports, 1)
}
