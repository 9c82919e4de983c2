package lifecycle

import "github.com/prometheus/client_golang/prometheus"

var (
	refreshesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wsld",
			Subsystem: "lifecycle",
			Name:      "refreshes_total",
			Help:      "Total registry refreshes by result",
		},
		[]string{"result"},
	)

	pollTicksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wsld",
			Subsystem: "lifecycle",
			Name:      "poll_ticks_total",
			Help:      "Total state poller ticks by result",
		},
		[]string{"result"},
	)

	commandsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wsld",
			Subsystem: "lifecycle",
			Name:      "commands_total",
			Help:      "Total host commands by operation and result",
		},
		[]string{"op", "result"},
	)

	runningDistributions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "wsld",
			Subsystem: "lifecycle",
			Name:      "running_distributions",
			Help:      "Running distributions seen by the last successful poll",
		},
	)
)

func init() {
	prometheus.MustRegister(refreshesTotal, pollTicksTotal, commandsTotal, runningDistributions)
}
