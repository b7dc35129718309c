// Package metrics defines and registers all custom Prometheus metrics for the
// prompt library service. It is the single source of truth for metric names,
// labels, and help strings; everything is registered with the default
// registry at package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "promptvault"

// ── Prompt collection metrics ─────────────────────────────────────────────────

// PromptsCreatedTotal counts newly created prompts.
// Label:
//   - category: the prompt category (e.g. "development")
var PromptsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "prompts_created_total",
		Help:      "Total number of prompts created, by category.",
	},
	[]string{"category"},
)

// PromptMutationsTotal counts mutating collection commands.
// Label:
//   - op: "update", "delete" or "toggle_favorite"
var PromptMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "prompt_mutations_total",
		Help:      "Total number of prompt mutation commands, by operation.",
	},
	[]string{"op"},
)

// TemplateRendersTotal counts template render calls.
var TemplateRendersTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "template_renders_total",
		Help:      "Total number of template render calls.",
	},
)

// ── Session metrics ───────────────────────────────────────────────────────────

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

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "duplicate" or "failure"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// ── Snapshot store metrics ────────────────────────────────────────────────────

// SnapshotWritesTotal counts snapshot store writes.
// Labels:
//   - key: the snapshot key
//   - result: "ok" or "error"
var SnapshotWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshot_writes_total",
		Help:      "Total number of snapshot store writes, by key and result.",
	},
	[]string{"key", "result"},
)
