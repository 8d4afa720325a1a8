package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "furls_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "furls_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "route"},
	)

	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "furls_session_uploads_total",
			Help: "Session uploads by result (stored, invalid, rate_limited, error)",
		},
		[]string{"result"},
	)

	AuthFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "furls_auth_failures_total",
			Help: "Rejected credentials by scheme (bearer, api_key, login)",
		},
		[]string{"scheme"},
	)

	FriendActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "furls_friend_actions_total",
			Help: "Friendship state transitions by action",
		},
		[]string{"action"},
	)
)

// RecordHTTPRequest records one finished request.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func RecordUpload(result string) {
	UploadsTotal.WithLabelValues(result).Inc()
}

func RecordAuthFailure(scheme string) {
	AuthFailuresTotal.WithLabelValues(scheme).Inc()
}

func RecordFriendAction(action string) {
	FriendActionsTotal.WithLabelValues(action).Inc()
}
