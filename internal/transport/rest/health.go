package rest

import (
	"context"
	"net/http"
	"time"
)

const healthCheckTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

type schemaInspector interface {
	PendingMigrations(ctx context.Context) (int, error)
}

// HealthHandler serves the liveness, readiness and health probes.
type HealthHandler struct {
	db      dbPinger
	schema  schemaInspector
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, schema schemaInspector, version string) *HealthHandler {
	return &HealthHandler{db: db, schema: schema, version: version}
}

// HealthResponse is the JSON body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Pending *int   `json:"pending,omitempty"`
}

// Live always answers 200 while the process serves requests.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 200 only when the database is reachable and every embedded
// migration has been applied.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	overall, _ := h.check(r.Context())
	writeJSON(w, statusCode(overall), HealthResponse{Status: overall, Timestamp: time.Now()})
}

// Health reports each component with the database latency and the number
// of pending migrations.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	overall, components := h.check(r.Context())
	writeJSON(w, statusCode(overall), HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

// check returns "ok", "degraded" (schema behind or unknown) or "down"
// (database unreachable).
func (h *HealthHandler) check(ctx context.Context) (string, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	components := make(map[string]CompStatus, 2)

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		components["database"] = CompStatus{Status: "down"}
		return "down", components
	}
	components["database"] = CompStatus{Status: "ok", Latency: time.Since(start).String()}

	pending, err := h.schema.PendingMigrations(ctx)
	switch {
	case err != nil:
		components["schema"] = CompStatus{Status: "unknown"}
		return "degraded", components
	case pending > 0:
		components["schema"] = CompStatus{Status: "behind", Pending: &pending}
		return "degraded", components
	}
	components["schema"] = CompStatus{Status: "ok", Pending: &pending}
	return "ok", components
}

func statusCode(overall string) int {
	if overall == "ok" {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}
