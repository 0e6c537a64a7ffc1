// Package metrics defines and registers all custom Prometheus metrics for the
// rewards API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics register themselves with the default registry via promauto at
// package init, so importing this package from the handlers is enough.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rewards"

// ClaimsCreatedTotal counts successfully created claims.
var ClaimsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "claims_created_total",
		Help:      "Total number of reward claims successfully created.",
	},
)

// ClaimsRejectedTotal counts claim attempts that failed.
// Label:
//   - reason: "insufficient_points", "not_found", "invalid_request", or "error"
var ClaimsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "claims_rejected_total",
		Help:      "Total number of reward claim attempts that failed, by reason.",
	},
	[]string{"reason"},
)

// ClaimStatusUpdatesTotal counts admin status transitions applied to claims.
// Label:
//   - status: the new claim status (e.g. "approved", "rejected", "completed")
var ClaimStatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "claim_status_updates_total",
		Help:      "Total number of claim status updates applied by admins, by new status.",
	},
	[]string{"status"},
)
