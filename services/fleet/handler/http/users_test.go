package http

import (
	nethttp "net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riderlink/riderlink/internal/pkg/models"
)

func TestListUsersForbiddenForRider(t *testing.T) {
	ts := newTestServer(t)
	rider := ts.addUser(t, "rider@example.com", "password123", models.RoleRider)

	rec := ts.request(nethttp.MethodGet, "/api/users", ts.tokenFor(t, rider), "")
	assert.Equal(t, nethttp.StatusForbidden, rec.Code)
}

func TestListUsersForbiddenForSupervisor(t *testing.T) {
	ts := newTestServer(t)
	supervisor := ts.addUser(t, "super@example.com", "password123", models.RoleFleetSupervisor)

	rec := ts.request(nethttp.MethodGet, "/api/users", ts.tokenFor(t, supervisor), "")
	assert.Equal(t, nethttp.StatusForbidden, rec.Code)
}

func TestListUsersAsAdminOmitsPasswords(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.addUser(t, "admin@example.com", "password123", models.RoleAdmin)
	ts.addUser(t, "rider@example.com", "password123", models.RoleRider)

	rec := ts.request(nethttp.MethodGet, "/api/users", ts.tokenFor(t, admin), "")
	require.Equal(t, nethttp.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	data, ok := body["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 2)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.addUser(t, "admin@example.com", "password123", models.RoleAdmin)

	rec := ts.request(nethttp.MethodPost, "/api/users", ts.tokenFor(t, admin),
		`{"email":"admin@example.com","password":"password123","firstName":"Dup","lastName":"User","role":"rider"}`)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestCreateUserValidation(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.addUser(t, "admin@example.com", "password123", models.RoleAdmin)

	rec := ts.request(nethttp.MethodPost, "/api/users", ts.tokenFor(t, admin),
		`{"email":"new@example.com","password":"short","firstName":"New","lastName":"User","role":"astronaut"}`)
	require.Equal(t, nethttp.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	fields, ok := body["fields"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "role")
}

func TestUpdateUser(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.addUser(t, "admin@example.com", "password123", models.RoleAdmin)
	ts.addUser(t, "rider@example.com", "password123", models.RoleRider)

	rec := ts.request(nethttp.MethodPatch, "/api/users/2", ts.tokenFor(t, admin),
		`{"active":false}`)
	require.Equal(t, nethttp.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, false, data["active"])
	// Untouched fields survive the patch.
	assert.Equal(t, "rider@example.com", data["email"])
}

func TestUpdateUserNotFound(t *testing.T) {
	ts := newTestServer(t)
	admin := ts.addUser(t, "admin@example.com", "password123", models.RoleAdmin)

	rec := ts.request(nethttp.MethodPatch, "/api/users/42", ts.tokenFor(t, admin),
		`{"active":false}`)
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}
