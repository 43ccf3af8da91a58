package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RegistrationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "registrations_total",
			Help: "Total number of successful user registrations",
		},
	)

	LoginsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "Total number of successful logins",
		},
	)

	SessionTokensIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "session_tokens_issued_total",
			Help: "Total number of session tokens issued",
		},
	)

	TokenVerificationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "token_verifications_total",
			Help: "Total number of session token verifications",
		},
	)

	TokenVerificationsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "token_verifications_failed_total",
			Help: "Total number of failed session token verifications",
		},
	)
)
