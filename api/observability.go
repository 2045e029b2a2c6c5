package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"gazeta-portal/core/store"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var processStartedAt = time.Now().UTC()

func newRequestMetrics() (*prometheus.CounterVec, *prometheus.HistogramVec) {
	total := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gazeta_http_requests_total",
		Help: "HTTP requests served, by method, route and status.",
	}, []string{"method", "path", "status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gazeta_http_request_duration_seconds",
		Help:    "HTTP request latency, by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
	return total, duration
}

// metricsMiddleware labels by the matched chi route pattern, not the raw URL,
// so capability tokens and ids do not blow up metric cardinality.
func (s *Server) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		path := chi.RouteContext(r.Context()).RoutePattern()
		if path == "" {
			path = "unmatched"
		}
		s.reqTotal.WithLabelValues(r.Method, path, strconv.Itoa(rec.status)).Inc()
		s.reqDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}

func (s *Server) registerObservabilityRoutes() {
	s.router.MethodFunc("GET", "/healthz", s.healthz)
	s.router.MethodFunc("GET", "/readyz", s.readyz)

	reg := prometheus.NewRegistry()
	_ = reg.Register(collectors.NewGoCollector())
	_ = reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "gazeta_uptime_seconds",
		Help: "Process uptime in seconds.",
	}, func() float64 {
		return time.Since(processStartedAt).Seconds()
	}))
	reg.MustRegister(s.reqTotal, s.reqDuration)
	reg.MustRegister(newPortalMetricsCollector(s.students, s.tickets, s.departments, s.users))

	s.router.Method("GET", "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSONPlain(w, http.StatusOK, map[string]any{
		"ok":         true,
		"now":        time.Now().UTC().Format(time.RFC3339Nano),
		"uptime_sec": int64(time.Since(processStartedAt).Seconds()),
	})
}

func (s *Server) readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
	defer cancel()
	if s == nil || s.db == nil {
		writeJSONPlain(w, http.StatusServiceUnavailable, map[string]any{"ok": false})
		return
	}
	if err := s.db.PingContext(ctx); err != nil {
		writeJSONPlain(w, http.StatusServiceUnavailable, map[string]any{"ok": false})
		return
	}
	writeJSONPlain(w, http.StatusOK, map[string]any{"ok": true})
}

func writeJSONPlain(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// portalMetricsCollector reads the collection counters on scrape. The counts
// come straight from the document stores, so a scrape costs a few small reads.
type portalMetricsCollector struct {
	students    store.StudentsStore
	tickets     store.TicketsStore
	departments store.DepartmentsStore
	users       store.UsersStore

	studentsDesc    *prometheus.Desc
	openTicketsDesc *prometheus.Desc
	pendingDesc     *prometheus.Desc
	usersDesc       *prometheus.Desc
	deptsDesc       *prometheus.Desc
}

func newPortalMetricsCollector(students store.StudentsStore, tickets store.TicketsStore, departments store.DepartmentsStore, users store.UsersStore) prometheus.Collector {
	return &portalMetricsCollector{
		students:    students,
		tickets:     tickets,
		departments: departments,
		users:       users,
		studentsDesc: prometheus.NewDesc(
			"gazeta_students_total",
			"Number of staff record sheets.",
			nil, nil,
		),
		openTicketsDesc: prometheus.NewDesc(
			"gazeta_tickets_open",
			"Number of open help tickets.",
			nil, nil,
		),
		pendingDesc: prometheus.NewDesc(
			"gazeta_departments_pending_requests",
			"Number of pending membership requests across all departments.",
			nil, nil,
		),
		usersDesc: prometheus.NewDesc(
			"gazeta_portal_users_total",
			"Number of portal accounts.",
			nil, nil,
		),
		deptsDesc: prometheus.NewDesc(
			"gazeta_departments_total",
			"Number of departments.",
			nil, nil,
		),
	}
}

func (c *portalMetricsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.studentsDesc
	ch <- c.openTicketsDesc
	ch <- c.pendingDesc
	ch <- c.usersDesc
	ch <- c.deptsDesc
}

func (c *portalMetricsCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if n, err := c.students.Count(ctx); err == nil {
		ch <- prometheus.MustNewConstMetric(c.studentsDesc, prometheus.GaugeValue, float64(n))
	}
	if n, err := c.tickets.OpenCount(ctx); err == nil {
		ch <- prometheus.MustNewConstMetric(c.openTicketsDesc, prometheus.GaugeValue, float64(n))
	}
	if n, err := c.departments.PendingCount(ctx); err == nil {
		ch <- prometheus.MustNewConstMetric(c.pendingDesc, prometheus.GaugeValue, float64(n))
	}
	if n, err := c.departments.Count(ctx); err == nil {
		ch <- prometheus.MustNewConstMetric(c.deptsDesc, prometheus.GaugeValue, float64(n))
	}
	if n, err := c.users.Count(ctx); err == nil {
		ch <- prometheus.MustNewConstMetric(c.usersDesc, prometheus.GaugeValue, float64(n))
	}
}
