// Package metrics defines all custom Prometheus metrics for the freezer API.
// It is the single source of truth for metric names, labels, and help strings.
// Metrics register themselves with the default registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "freezer"

// AdjustmentsTotal counts quantity adjustments against freezers.
// Labels:
//   - op: "put_in" or "put_out"
//   - result: "ok" or "error"
var AdjustmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "adjustments_total",
		Help:      "Total number of product quantity adjustments, by operation and result.",
	},
	[]string{"op", "result"},
)

// RecomputeRunsTotal counts batch recompute runs.
// Label:
//   - result: "ok" or "error" (a run that failed partway; re-running converges)
var RecomputeRunsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recompute_runs_total",
		Help:      "Total number of batch recompute runs, by result.",
	},
	[]string{"result"},
)

// ImageFetchesTotal counts image cache lookups.
// Label:
//   - result: "hit" (stored image served) or "miss" (default logo served)
var ImageFetchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "image_fetches_total",
		Help:      "Total number of freezer image lookups, labelled by cache result.",
	},
	[]string{"result"},
)

// LoginsTotal counts successful logins by the role that was granted.
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of sessions established, by granted role.",
	},
	[]string{"role"},
)
