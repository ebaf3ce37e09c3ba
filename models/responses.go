package models

import "time"

// Health statuses reported by the health endpoint.
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"

	DatabaseConnected    = "connected"
	DatabaseDisconnected = "disconnected"
)

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	// Status is either [HealthStatusHealthy] or [HealthStatusUnhealthy].
	Status string `json:"status"`

	// Timestamp is the moment the probe ran, in ISO-8601 UTC with
	// millisecond precision.
	Timestamp string `json:"timestamp"`

	// Database is either [DatabaseConnected] or [DatabaseDisconnected].
	Database string `json:"database"`
}

// Healthy reports whether the probe succeeded.
func (h HealthResponse) Healthy() bool {
	return h.Status == HealthStatusHealthy
}

// HealthTimestampLayout is the layout used for [HealthResponse.Timestamp].
const HealthTimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatHealthTimestamp renders t the way the health endpoint reports it.
func FormatHealthTimestamp(t time.Time) string {
	return t.UTC().Format(HealthTimestampLayout)
}

// ErrorResponse is the generic error body returned by the API.
// It never carries internal details.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CreateUserRequest is the body of POST /api/users.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ToUser converts the request to a [User] ready to be stored.
func (r CreateUserRequest) ToUser() User {
	return User{Username: r.Username, Email: r.Email}
}
