// Package metrics holds the Prometheus collectors of the service.
// Collectors are registered once per process with promauto; all recording
// methods are safe to call on a nil *Metrics.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heartmarshall/ideabank-backend/internal/domain"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics groups HTTP and domain collectors.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	IdeaTransitionsTotal *prometheus.CounterVec
	VotesCastTotal       prometheus.Counter
	StepsCreatedTotal    prometheus.Counter
	AssignmentsTotal     prometheus.Counter
	ThreadExcludedTotal  *prometheus.CounterVec
}

// New returns the process-wide Metrics, registering the collectors on first use.
//
// Metrics:
//   - ideabank_http_requests_total{method,route,status}
//   - ideabank_http_request_duration_seconds{method,route}
//   - ideabank_idea_transitions_total{to}
//   - ideabank_votes_cast_total
//   - ideabank_project_steps_created_total
//   - ideabank_staff_assignments_total
//   - ideabank_thread_comments_excluded_total{reason}
func New() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			HTTPRequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "ideabank_http_requests_total",
					Help: "Total number of HTTP requests by method, route and status",
				},
				[]string{"method", "route", "status"},
			),
			HTTPRequestDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "ideabank_http_request_duration_seconds",
					Help:    "HTTP request latency in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"method", "route"},
			),
			IdeaTransitionsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "ideabank_idea_transitions_total",
					Help: "Idea status transitions by target status",
				},
				[]string{"to"},
			),
			VotesCastTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "ideabank_votes_cast_total",
				Help: "Votes successfully recorded",
			}),
			StepsCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "ideabank_project_steps_created_total",
				Help: "Project steps appended to contributions",
			}),
			AssignmentsTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "ideabank_staff_assignments_total",
				Help: "Staff members assigned to contributions",
			}),
			ThreadExcludedTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "ideabank_thread_comments_excluded_total",
					Help: "Comments left out of a loaded thread",
				},
				[]string{"reason"}, // "depth" or "unreachable"
			),
		}
	})
	return globalMetrics
}

// ObserveHTTP records one finished request.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// IdeaTransition records an idea entering status to.
func (m *Metrics) IdeaTransition(to domain.IdeaStatus) {
	if m == nil {
		return
	}
	m.IdeaTransitionsTotal.WithLabelValues(to.String()).Inc()
}

// VoteCast records a new vote.
func (m *Metrics) VoteCast() {
	if m == nil {
		return
	}
	m.VotesCastTotal.Inc()
}

// StepCreated records a new project step.
func (m *Metrics) StepCreated() {
	if m == nil {
		return
	}
	m.StepsCreatedTotal.Inc()
}

// StaffAssigned records a new assignment.
func (m *Metrics) StaffAssigned() {
	if m == nil {
		return
	}
	m.AssignmentsTotal.Inc()
}

// ThreadExcluded records comments dropped while building a thread.
func (m *Metrics) ThreadExcluded(reason string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.ThreadExcludedTotal.WithLabelValues(reason).Add(float64(n))
}
