package http

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	jwtpkg "github.com/riderlink/riderlink/internal/pkg/jwt"
	"github.com/riderlink/riderlink/internal/pkg/models"
	"github.com/riderlink/riderlink/services/fleet/repository"
	"github.com/riderlink/riderlink/services/fleet/usecase"
)

var testJWTConfig = models.JWTConfig{
	Secret:     "test-secret",
	Expiration: 60,
	Issuer:     "riderlink",
	CookieName: "riderlink_session",
}

type testServer struct {
	echo  *echo.Echo
	store *repository.MemoryStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	store := repository.NewMemoryStore()
	h := NewHandler(
		usecase.NewAuthUC(store, testJWTConfig),
		usecase.NewUserUC(store),
		usecase.NewVehicleUC(store),
		usecase.NewTelemetryUC(store, nil),
		usecase.NewMaintenanceUC(store),
		usecase.NewFuelUC(store),
		usecase.NewActivityUC(store),
		usecase.NewGeofenceUC(store),
		usecase.NewAlertUC(store),
		usecase.NewDashboardUC(store),
		testJWTConfig,
	)

	e := echo.New()
	h.RegisterRoutes(e, nil)

	return &testServer{echo: e, store: store}
}

func (ts *testServer) addUser(t *testing.T, email, password string, role models.Role) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user, err := ts.store.CreateUser(context.Background(), &models.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
		Active:    true,
	})
	require.NoError(t, err)
	return user
}

func (ts *testServer) addVehicle(t *testing.T, code string) *models.Vehicle {
	t.Helper()
	vehicle, err := ts.store.CreateVehicle(context.Background(), &models.Vehicle{
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

func (ts *testServer) tokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	token, _, err := jwtpkg.GenerateToken(user.ID, user.Role, testJWTConfig)
	require.NoError(t, err)
	return token
}

// request performs an HTTP round trip against the test server. token may
// be empty for unauthenticated requests.
func (ts *testServer) request(method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// serve runs a prepared request through the server.
func (ts *testServer) serve(req *nethttp.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)
	return rec
}

// newCookieRequest builds a request authenticated by the session cookie.
func newCookieRequest(method, path string, cookie *nethttp.Cookie) *nethttp.Request {
	req := httptest.NewRequest(method, path, nil)
	req.AddCookie(cookie)
	return req
}

func statusCookie(rec *httptest.ResponseRecorder, name string) *nethttp.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
