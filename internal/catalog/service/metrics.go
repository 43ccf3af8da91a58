package service

import (
	"github.com/bookworm-labs/bookstore-api/internal/observability/metrics"
)

func incrementLookup(kind, outcome string) {
	metrics.CatalogLookupsTotal.WithLabelValues(kind, outcome).Inc()
}

func incrementReviewsUpserted() {
	metrics.ReviewsUpserted.Inc()
}

func incrementReviewsDeleted() {
	metrics.ReviewsDeleted.Inc()
}
