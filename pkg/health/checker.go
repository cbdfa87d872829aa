// Package health provides liveness and readiness endpoints for the VITTIN site.
package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"sync"
	"time"
)

// Status represents the health status of a service.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
)

// CheckResult represents the result of a single health check.
type CheckResult struct {
	Status   Status `json:"status"`
	Duration int64  `json:"duration_ms"`
	Error    string `json:"error,omitempty"`
	Details  any    `json:"details,omitempty"`
}

// Report is the overall health status.
type Report struct {
	Status    Status                 `json:"status"`
	Checks    map[string]CheckResult `json:"checks"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version,omitempty"`
}

// Check defines a single health check.
type Check struct {
	Name     string
	Check    func(ctx context.Context) error
	Timeout  time.Duration
	Critical bool // failure makes the overall status unhealthy
}

// Checker manages health checks for the application.
type Checker struct {
	checks  []Check
	version string
	mu      sync.RWMutex
}

// NewChecker creates a health checker reporting version.
func NewChecker(version string) *Checker {
	return &Checker{version: version}
}

// AddCheck adds a non-critical check. Its failure degrades the service.
func (hc *Checker) AddCheck(name string, check func(context.Context) error, timeout time.Duration) {
	hc.add(Check{Name: name, Check: check, Timeout: timeout})
}

// AddCriticalCheck adds a check whose failure makes the service unhealthy.
func (hc *Checker) AddCriticalCheck(name string, check func(context.Context) error, timeout time.Duration) {
	hc.add(Check{Name: name, Check: check, Timeout: timeout, Critical: true})
}

func (hc *Checker) add(c Check) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	hc.checks = append(hc.checks, c)
}

// Names lists registered checks in sorted order.
func (hc *Checker) Names() []string {
	hc.mu.RLock()
	defer hc.mu.RUnlock()

	names := make([]string, 0, len(hc.checks))
	for _, c := range hc.checks {
		names = append(names, c.Name)
	}
	sort.Strings(names)
	return names
}

// Check runs all checks concurrently and folds them into one report.
func (hc *Checker) Check(ctx context.Context) Report {
	hc.mu.RLock()
	checks := make([]Check, len(hc.checks))
	copy(checks, hc.checks)
	hc.mu.RUnlock()

	report := Report{
		Status:    StatusHealthy,
		Checks:    make(map[string]CheckResult, len(checks)),
		Timestamp: time.Now().UTC(),
		Version:   hc.version,
	}

	type namedResult struct {
		name     string
		result   CheckResult
		critical bool
	}

	results := make(chan namedResult, len(checks))
	var wg sync.WaitGroup

	for _, c := range checks {
		wg.Add(1)
		go func(check Check) {
			defer wg.Done()
			results <- namedResult{
				name:     check.Name,
				result:   run(ctx, check),
				critical: check.Critical,
			}
		}(c)
	}

	wg.Wait()
	close(results)

	for r := range results {
		report.Checks[r.name] = r.result

		if r.result.Status != StatusHealthy {
			if r.critical {
				report.Status = StatusUnhealthy
			} else if report.Status == StatusHealthy {
				report.Status = StatusDegraded
			}
		}
	}

	return report
}

func run(ctx context.Context, check Check) CheckResult {
	timeout := check.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	start := time.Now()
	checkCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := check.Check(checkCtx)

	result := CheckResult{
		Status:   StatusHealthy,
		Duration: time.Since(start).Milliseconds(),
	}
	if err != nil {
		result.Status = StatusUnhealthy
		result.Error = err.Error()

		var he *Error
		if errors.As(err, &he) {
			result.Details = he.Details
		}
	}
	return result
}

// LivenessHandler answers 200 while the process is running.
func (hc *Checker) LivenessHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":    "alive",
			"timestamp": time.Now().UTC(),
		})
	})
}

// ReadinessHandler answers 200 unless a critical check fails, then 503.
// Degraded services stay ready.
func (hc *Checker) ReadinessHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		report := hc.Check(r.Context())

		code := http.StatusOK
		if report.Status == StatusUnhealthy {
			code = http.StatusServiceUnavailable
		}
		writeJSON(w, code, report)
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// Error is a check failure carrying details for the report.
type Error struct {
	Message string
	Details map[string]any
}

func (e *Error) Error() string {
	return e.Message
}

// CredentialCheck fails when the chat provider credential is missing. Register
// it as non-critical: the site still serves with chat offline.
func CredentialCheck(configured bool) func(context.Context) error {
	return func(ctx context.Context) error {
		if !configured {
			return &Error{
				Message: "chat credential not configured",
				Details: map[string]any{"mode": "offline"},
			}
		}
		return nil
	}
}

// CapacityCheck fails when count reaches max, e.g. live chat sessions.
func CapacityCheck(what string, count func() int, max int) func(context.Context) error {
	return func(ctx context.Context) error {
		current := count()
		if max > 0 && current >= max {
			return &Error{
				Message: what + " at capacity",
				Details: map[string]any{
					"current": current,
					"max":     max,
				},
			}
		}
		return nil
	}
}
