package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Login outcomes.
const (
	LoginSuccess            = "success"
	LoginInvalidCredentials = "invalid_credentials"
	LoginBlocked            = "blocked"
	LoginDeleted            = "deleted"
	LoginRejected           = "rejected"
	LoginError              = "error"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shop_http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "shop_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shop_login_attempts_total",
		Help: "Login attempts by outcome.",
	}, []string{"outcome"})

	identityCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shop_identity_cache_hits_total",
		Help: "Identity lookups served from the user cache.",
	})

	identityCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shop_identity_cache_misses_total",
		Help: "Identity lookups that went to the store.",
	})
)

// ObserveRequest records one finished HTTP request.
func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func IncLogin(outcome string) {
	loginAttempts.WithLabelValues(outcome).Inc()
}

func IncIdentityCacheHit() {
	identityCacheHits.Inc()
}

func IncIdentityCacheMiss() {
	identityCacheMisses.Inc()
}
