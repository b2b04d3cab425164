package http

import (
	nethttp "net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riderlink/riderlink/internal/pkg/models"
)

func TestRecordAndQueryLocations(t *testing.T) {
	ts := newTestServer(t)
	rider := ts.addUser(t, "rider@example.com", "password123", models.RoleRider)
	ts.addVehicle(t, "MBK-1023")
	token := ts.tokenFor(t, rider)

	for _, body := range []string{
		`{"vehicleId":1,"latitude":40.7128,"longitude":-74.0060,"speed":30}`,
		`{"vehicleId":1,"latitude":40.7130,"longitude":-74.0062,"speed":25}`,
	} {
		rec := ts.request(nethttp.MethodPost, "/api/gps-locations", token, body)
		require.Equal(t, nethttp.StatusCreated, rec.Code)
	}

	latest := ts.request(nethttp.MethodGet, "/api/vehicles/1/latest-location", token, "")
	require.Equal(t, nethttp.StatusOK, latest.Code)
	data := decodeBody(t, latest)["data"].(map[string]interface{})
	assert.Equal(t, 40.7130, data["latitude"])
	assert.NotEmpty(t, data["geohash"])

	history := ts.request(nethttp.MethodGet, "/api/vehicles/1/gps-locations?limit=1", token, "")
	require.Equal(t, nethttp.StatusOK, history.Code)
	points, ok := decodeBody(t, history)["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, points, 1)
}

func TestRecordLocationUnknownVehicleReturns404(t *testing.T) {
	ts := newTestServer(t)
	rider := ts.addUser(t, "rider@example.com", "password123", models.RoleRider)

	rec := ts.request(nethttp.MethodPost, "/api/gps-locations", ts.tokenFor(t, rider),
		`{"vehicleId":99,"latitude":40.7128,"longitude":-74.0060}`)
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}

func TestLatestLocationNoPointsReturns404(t *testing.T) {
	ts := newTestServer(t)
	rider := ts.addUser(t, "rider@example.com", "password123", models.RoleRider)
	ts.addVehicle(t, "MBK-1023")

	rec := ts.request(nethttp.MethodGet, "/api/vehicles/1/latest-location", ts.tokenFor(t, rider), "")
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}
