package health

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// BuildInfo describes the running build.
type BuildInfo struct {
	Version     string    `json:"version"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	Storage     string    `json:"storage"`
	ServerTime  time.Time `json:"server_time"`
}

// NewPingHandler reports build and runtime information.
func NewPingHandler(serviceName, version, storage string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, BuildInfo{
			Version:     version,
			ServiceName: serviceName,
			GoVersion:   runtime.Version(),
			Hostname:    hostname,
			Storage:     storage,
			ServerTime:  time.Now(),
		})
	}
}

// RegisterHealthEndpoints registers the liveness and readiness endpoints.
func RegisterHealthEndpoints(e *echo.Echo, serviceName, version, storage string) {
	e.GET("/ping", NewPingHandler(serviceName, version, storage))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/health/ready", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
