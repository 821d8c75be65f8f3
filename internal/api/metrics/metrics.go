// Package metrics defines and registers the custom Prometheus metrics for the
// inventory API. It is the single source of truth for metric names, labels,
// and help strings; HTTP-level metrics come from the echoprometheus
// middleware and are not declared here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventory"

// LoginAttemptsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure" (failure covers unknown user and wrong
//     password alike; the split is deliberately not observable)
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered.",
	},
)

// ForbiddenTotal counts requests rejected by the access policy.
// Label:
//   - operation: the denied (entity, verb) operation, e.g. "category:delete"
var ForbiddenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forbidden_total",
		Help:      "Total number of requests denied by role-based access control.",
	},
	[]string{"operation"},
)

// ProductsCreatedTotal counts newly created products.
var ProductsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products created.",
	},
)

// CategoryDeleteConflictsTotal counts category deletions blocked by the
// dependent-product guard.
var CategoryDeleteConflictsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "category_delete_conflicts_total",
		Help:      "Total number of category deletions blocked by existing products.",
	},
)
