package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var authAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "auth_service_attempts_total",
	Help: "Authentication operations by outcome",
}, []string{"operation", "outcome"})

// Handler returns an http.Handler for Prometheus scraping
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordAuthAttempt counts one auth operation (register/login) outcome.
func RecordAuthAttempt(operation, outcome string) {
	authAttempts.WithLabelValues(operation, outcome).Inc()
}
