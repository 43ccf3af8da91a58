package http

import (
	"net/http"

	"github.com/bookworm-labs/bookstore-api/internal/common/constants"
	"github.com/bookworm-labs/bookstore-api/internal/common/httpmetrics"
	"github.com/bookworm-labs/bookstore-api/internal/common/logger"
)

// BuildBaseHandler wraps handler with the shared middleware chain:
// security headers, panic recovery, trace IDs, body limits and metrics.
func BuildBaseHandler(log *logger.Logger, handler http.Handler) http.Handler {
	metrics := httpmetrics.New()
	recovery := RecoveryMiddleware(log)
	traceID := TraceIDMiddleware
	maxRequestSize := MaxRequestSizeMiddleware(constants.DefaultMaxRequestSize)
	securityHeaders := SecurityHeadersMiddleware

	return securityHeaders(recovery(traceID(maxRequestSize(metrics.Wrap(handler)))))
}
