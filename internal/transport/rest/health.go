package rest

import (
	"context"
	"net/http"
	"time"
)

// AppName is reported by the info endpoint.
const AppName = "IA EDUSPHERE"

// ruleCounter defines the minimal interface for rule store health checks.
type ruleCounter interface {
	Count(ctx context.Context) int
}

// HealthHandler serves the info and health endpoints.
type HealthHandler struct {
	rules       ruleCounter
	version     string
	seedVersion int
	now         func() time.Time
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(rules ruleCounter, version string, seedVersion int) *HealthHandler {
	return &HealthHandler{rules: rules, version: version, seedVersion: seedVersion, now: time.Now}
}

// InfoResponse is the JSON response for /.
type InfoResponse struct {
	App         string `json:"app"`
	Status      string `json:"status"`
	Version     string `json:"version"`
	SeedVersion int    `json:"seed_version"`
	RuleCount   int    `json:"rule_count"`
}

// HealthResponse is the JSON response for /sante, /health and /live.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Time       time.Time             `json:"time"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status string `json:"status"`
	Rules  int    `json:"rules"`
}

// Info handles GET /.
func (h *HealthHandler) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, InfoResponse{
		App:         AppName,
		Status:      "online",
		Version:     h.version,
		SeedVersion: h.seedVersion,
		RuleCount:   h.rules.Count(r.Context()),
	})
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   h.now(),
	})
}

// Health reports the rule store. The store is in memory, so it is
// always reachable; its size is included for operators.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Version: h.version,
		Components: map[string]CompStatus{
			"rule_store": {Status: "healthy", Rules: h.rules.Count(r.Context())},
		},
		Time: h.now(),
	})
}
