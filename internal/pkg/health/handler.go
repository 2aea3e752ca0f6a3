package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rescuerush/rescuerush/internal/pkg/models"
)

// DatabasePinger is the slice of the Mongo client the health check needs.
type DatabasePinger interface {
	Ping(ctx context.Context) error
}

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	BuildTime   string    `json:"build_time"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// DefaultBuildInfo contains default build information
var DefaultBuildInfo = BuildInfo{
	Version:   "development",
	GitCommit: "unknown",
	BuildTime: "unknown",
	GoVersion: runtime.Version(),
}

// Status is the /health response body
type Status struct {
	Status        string `json:"status"`
	Database      string `json:"database"`
	DatabaseType  string `json:"database_type"`
	MongoDBURISet bool   `json:"mongodb_uri_set"`
	Environment   string `json:"environment"`
}

// NewPingHandler creates a handler for the ping endpoint
func NewPingHandler(serviceName string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	buildInfo := DefaultBuildInfo
	buildInfo.ServiceName = serviceName

	if version := os.Getenv("VERSION"); version != "" {
		buildInfo.Version = version
	}
	if gitCommit := os.Getenv("GIT_COMMIT"); gitCommit != "" {
		buildInfo.GitCommit = gitCommit
	}
	if buildTime := os.Getenv("BUILD_TIME"); buildTime != "" {
		buildInfo.BuildTime = buildTime
	}

	return func(c echo.Context) error {
		buildInfo.Hostname = hostname
		buildInfo.ServerTime = time.Now()

		return c.JSON(http.StatusOK, buildInfo)
	}
}

// NewHealthHandler reports process health and the document store
// connection state.
func NewHealthHandler(db DatabasePinger, configs *models.Config) echo.HandlerFunc {
	dbType := "Local MongoDB"
	if strings.Contains(configs.Mongo.URI, "mongodb+srv") {
		dbType = "MongoDB Atlas"
	}

	env := configs.App.Environment
	if env == "" {
		env = "development"
	}

	return func(c echo.Context) error {
		dbStatus := "Connected"
		if db == nil {
			dbStatus = "Disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				dbStatus = "Disconnected"
			}
		}

		return c.JSON(http.StatusOK, Status{
			Status:        "OK",
			Database:      dbStatus,
			DatabaseType:  dbType,
			MongoDBURISet: configs.Mongo.URI != "",
			Environment:   env,
		})
	}
}

// RegisterHealthEndpoints registers the health check endpoints
func RegisterHealthEndpoints(e *echo.Echo, serviceName string, db DatabasePinger, configs *models.Config) {
	e.GET("/ping", NewPingHandler(serviceName))
	e.GET("/health", NewHealthHandler(db, configs))
}
