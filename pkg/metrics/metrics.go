package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const Path = "/metrics"

var (
	RequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ReservationsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "canteen_reservations_created_total",
			Help: "Reservations accepted",
		},
	)
	ReservationsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "canteen_reservations_rejected_total",
			Help: "Reservation attempts refused, by reason",
		},
		[]string{"reason"},
	)
	ReservationsCancelled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "canteen_reservations_cancelled_total",
			Help: "Reservations cancelled by their owner",
		},
	)
)

// NormalizePath keeps only the first segment so ids don't blow up label cardinality.
func NormalizePath(p string) string {
	p = strings.TrimPrefix(p, "/")
	if idx := strings.Index(p, "/"); idx >= 0 {
		p = p[:idx]
	}
	if p == "" {
		return "root"
	}
	return p
}

func Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		if req.URL.Path == Path {
			return next(c)
		}
		start := time.Now()
		err := next(c)
		status := c.Response().Status
		if err != nil {
			status = http.StatusInternalServerError
			var he *echo.HTTPError
			if errors.As(err, &he) {
				status = he.Code
			}
		}
		path := NormalizePath(req.URL.Path)
		RequestTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
		RequestDuration.WithLabelValues(req.Method, path).Observe(time.Since(start).Seconds())
		return err
	}
}
