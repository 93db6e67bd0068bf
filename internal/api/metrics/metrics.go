// Package metrics defines and registers all custom Prometheus metrics for the
// user-management API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init and
// are exposed on /metrics by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "usermgmt"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - outcome: "success", "failure" (bad email or password), or "locked"
//     (rejected by the lockout window before credentials were checked)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// AccountsCreatedTotal counts created accounts by role ("admin" or "user").
var AccountsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_created_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// AccountsUpdatedTotal counts account updates by target role.
var AccountsUpdatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_updated_total",
		Help:      "Total number of account updates, by target role.",
	},
	[]string{"role"},
)

// AccountsDeletedTotal counts hard-deleted accounts by role.
var AccountsDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_deleted_total",
		Help:      "Total number of accounts deleted, by role.",
	},
	[]string{"role"},
)

// AuthzDeniedTotal counts authorization rejections.
// Label:
//   - reason: "role" (caller role not allowed) or "peer_admin" (admin tried
//     to modify another admin)
var AuthzDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denied_total",
		Help:      "Total number of requests rejected by authorization checks.",
	},
	[]string{"reason"},
)
