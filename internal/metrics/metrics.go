// Package metrics exposes Prometheus instrumentation for the streaming
// service. Collectors are package-level and registered once at startup.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ActiveStreams = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "tracker_active_streams",
			Help: "Number of currently registered stream subscribers",
		},
	)

	StreamEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_stream_events_total",
			Help: "Total number of events broadcast to subscribers, by event kind",
		},
		[]string{"kind"},
	)

	KeepAlivesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tracker_stream_keepalives_total",
			Help: "Total number of keep-alive comments written to open streams",
		},
	)

	DroppedSubscribersTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tracker_stream_dropped_subscribers_total",
			Help: "Total number of subscribers dropped because their event buffer was full",
		},
	)

	ActiveSimulations = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "tracker_active_simulations",
			Help: "Number of status simulation runs currently in flight",
		},
	)
)

// Register registers all Prometheus metrics
func Register() {
	prometheus.MustRegister(ActiveStreams)
	prometheus.MustRegister(StreamEventsTotal)
	prometheus.MustRegister(KeepAlivesTotal)
	prometheus.MustRegister(DroppedSubscribersTotal)
	prometheus.MustRegister(ActiveSimulations)
}
