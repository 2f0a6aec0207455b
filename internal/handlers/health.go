package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
)

// HealthChecker is anything that can report its own connectivity.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	db    HealthChecker
	cache HealthChecker
	now   func() time.Time
}

// NewHealthHandler creates a health handler. Either checker may be nil when
// that backend is not configured.
func NewHealthHandler(db, cache HealthChecker) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, now: time.Now}
}

// HealthResponse is the response structure for health checks.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Stage     string `json:"stage"`
	Database  string `json:"database"`
	Cache     string `json:"cache"`
}

// Check pings each configured backend.
func (h *HealthHandler) Check(ctx context.Context) (int, HealthResponse) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: h.now().UTC().Format(time.RFC3339),
		Service:   "loan-recommendation-engine",
		Version:   getEnvOrDefault("SERVICE_VERSION", "1.0.0"),
		Stage:     getEnvOrDefault("STAGE", "unknown"),
		Database:  backendStatus(ctx, h.db),
		Cache:     backendStatus(ctx, h.cache),
	}

	if response.Database == "disconnected" || response.Cache == "disconnected" {
		response.Status = "degraded"
		return http.StatusServiceUnavailable, response
	}
	return http.StatusOK, response
}

// Handle processes API Gateway health check requests.
func (h *HealthHandler) Handle(ctx context.Context, _ events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	status, response := h.Check(ctx)
	return apiResponse(status, Response{Success: status == http.StatusOK, Data: response})
}

// ServeHTTP implements http.Handler for the local server.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status, response := h.Check(r.Context())
	writeJSON(w, status, Response{Success: status == http.StatusOK, Data: response})
}

func backendStatus(ctx context.Context, c HealthChecker) string {
	if c == nil {
		return "not configured"
	}
	if err := c.HealthCheck(ctx); err != nil {
		return "disconnected"
	}
	return "connected"
}

// getEnvOrDefault returns environment variable or default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
