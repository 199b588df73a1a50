package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	assistantActions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hustlex_assistant_actions_total",
			Help: "Total number of interpreted assistant chat commands",
		},
		[]string{"action"},
	)

	relaySubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hustlex_relay_submissions_total",
			Help: "Total number of relayed form submissions",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(assistantActions, relaySubmissions)
}

// RecordAction counts an interpreted chat command
func RecordAction(action string) {
	assistantActions.WithLabelValues(action).Inc()
}

// RecordSubmission counts a relay outcome
func RecordSubmission(status string) {
	relaySubmissions.WithLabelValues(status).Inc()
}
