package service

import (
	"github.com/bookworm-labs/bookstore-api/internal/observability/metrics"
)

func incrementRegistrations() {
	metrics.RegistrationsTotal.Inc()
}

func incrementLogins() {
	metrics.LoginsTotal.Inc()
}

func incrementSessionTokensIssued() {
	metrics.SessionTokensIssued.Inc()
}
