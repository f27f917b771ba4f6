// Package metrics defines and registers all custom Prometheus metrics for
// the catalog console. It is the single source of truth for metric names,
// labels, and help strings; everything is registered with the default
// registry via promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// CatalogLoadsTotal counts catalog document fetch attempts.
// Label:
//   - result: "ok" or "error"
var CatalogLoadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "loads_total",
		Help:      "Total number of catalog document fetch attempts, by result.",
	},
	[]string{"result"},
)

// QueriesTotal counts storefront query evaluations.
// Label:
//   - sort: the sort key applied (featured, price-low, price-high, discount)
var QueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "queries_total",
		Help:      "Total number of catalog queries evaluated, by sort key.",
	},
	[]string{"sort"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// PermissionDeniedTotal counts console actions refused by the role table.
// Label:
//   - permission: the capability that was missing
var PermissionDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "permission_denied_total",
		Help:      "Total number of actions denied for missing permissions.",
	},
	[]string{"permission"},
)

// ExportsTotal counts explicit catalog snapshot downloads, the system's only
// commit mechanism for catalog edits.
var ExportsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of catalog snapshot exports.",
	},
)
