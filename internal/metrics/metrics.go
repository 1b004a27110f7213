// Package metrics exposes Prometheus counters for the grievance lifecycle.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	grievancesSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jandarpan_grievances_submitted_total",
		Help: "Grievances submitted, by derived category.",
	}, []string{"category"})

	grievancesEscalated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jandarpan_grievances_escalated_total",
		Help: "Grievances auto-escalated by the staleness rule.",
	})

	statusUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jandarpan_status_updates_total",
		Help: "Staff status updates, by new status.",
	}, []string{"status"})

	feedbackReceived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jandarpan_feedback_received_total",
		Help: "Feedback submissions acknowledged.",
	})
)

func RecordSubmission(category string) {
	grievancesSubmitted.WithLabelValues(category).Inc()
}

func RecordEscalation() {
	grievancesEscalated.Inc()
}

func RecordStatusUpdate(status string) {
	statusUpdates.WithLabelValues(status).Inc()
}

func RecordFeedback() {
	feedbackReceived.Inc()
}
