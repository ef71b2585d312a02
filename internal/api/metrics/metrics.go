// Package metrics defines and registers all custom Prometheus metrics
// for the menu API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry at import time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "foodmenu"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success" or "conflict"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// ── Menu metrics ──────────────────────────────────────────────────────────────

// MenuItemsCreatedTotal counts created menu items.
// Label:
//   - category: the category submitted with the item
var MenuItemsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "menu_items_created_total",
		Help:      "Total number of menu items created, by category.",
	},
	[]string{"category"},
)

// MenuItemsDeletedTotal counts deleted menu items.
var MenuItemsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "menu_items_deleted_total",
		Help:      "Total number of menu items deleted.",
	},
)

// ── Upload metrics ────────────────────────────────────────────────────────────

// UploadsTotal counts file uploads.
// Label:
//   - result: "success", "invalid_filename", or "storage_error"
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of file uploads, by result.",
	},
	[]string{"result"},
)

// UploadSizeBytes observes the declared size of uploaded files.
var UploadSizeBytes = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upload_size_bytes",
		Help:      "Declared size of uploaded files in bytes.",
		Buckets:   prometheus.ExponentialBuckets(1024, 4, 8), // 1KiB .. 16MiB
	},
)
