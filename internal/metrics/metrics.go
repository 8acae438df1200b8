package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "jobmatrix"

var (
	registerOnce sync.Once

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	requestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	requestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "HTTP requests currently being served.",
		},
	)

	registrations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "registrations_total",
			Help:      "Completed registrations by role.",
		},
		[]string{"role"},
	)

	logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "logins_total",
			Help:      "Login attempts by outcome.",
		},
		[]string{"outcome"},
	)
)

// Register adds every collector to the default registry. Safe to call more
// than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(requestDuration, requestTotal, requestsInFlight, registrations, logins)
	})
}

// Middleware records latency and counts for every request.
func Middleware() echo.MiddlewareFunc {
	Register()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			requestsInFlight.Inc()
			defer requestsInFlight.Dec()

			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}
			labels := prometheus.Labels{
				"method": c.Request().Method,
				"path":   routeLabel(c),
				"status": strconv.Itoa(status),
			}
			requestDuration.With(labels).Observe(time.Since(start).Seconds())
			requestTotal.With(labels).Inc()
			return err
		}
	}
}

// routeLabel is the matched route template. Requests that match no route
// share one label so arbitrary URLs cannot grow the series count.
func routeLabel(c echo.Context) string {
	if path := c.Path(); path != "" {
		return path
	}
	return "unmatched"
}

// ObserveRegistration counts a completed registration.
func ObserveRegistration(role string) {
	registrations.WithLabelValues(role).Inc()
}

// ObserveLogin counts a login attempt. Outcome is a short label such as
// "success" or "bad_password".
func ObserveLogin(outcome string) {
	logins.WithLabelValues(outcome).Inc()
}
