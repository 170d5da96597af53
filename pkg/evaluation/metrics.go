package evaluation

import (
	"github.com/prometheus/client_golang/prometheus"
)

// prometheus metrics
type metrics struct {
	scenarioCount   *prometheus.CounterVec
	runtime         *prometheus.GaugeVec
	memory          *prometheus.GaugeVec
	routeDistance   *prometheus.GaugeVec
	runtimeSummary  prometheus.Summary
	runtimeDuration prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		scenarioCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hospitalnav",
			Name:      "scenario_count",
			Help:      "The total number of evaluated scenarios",
		}, []string{"status"}),
		runtime: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "hospitalnav",
			Name:      "scenario_runtime_seconds",
			Help:      "Wall-clock runtime of nearest hospital search plus dijkstra & A* for a scenario",
		}, []string{"scenario"}),
		memory: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "hospitalnav",
			Name:      "scenario_memory_megabytes",
			Help:      "Heap bytes allocated (MB) during a scenario",
		}, []string{"scenario"}),
		routeDistance: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "hospitalnav",
			Name:      "scenario_route_distance_meters",
			Help:      "Shortest path distance from the scenario start to its nearest hospital",
		}, []string{"scenario", "hospital"}),
		runtimeSummary: prometheus.NewSummary(prometheus.SummaryOpts{
			Namespace:  "hospitalnav",
			Name:       "scenario_runtime_summary_seconds",
			Help:       "The runtime of scenarios",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		}),
		runtimeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hospitalnav",
			Name:      "scenario_duration_seconds",
			Help:      "The runtime of scenarios",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}, // 0.01 = 10ms
		}),
	}
	reg.MustRegister(m.scenarioCount, m.runtime, m.memory, m.routeDistance, m.runtimeSummary, m.runtimeDuration)
	return m
}

func (m *metrics) observe(r ScenarioResult) {
	if r.Err != nil {
		m.scenarioCount.WithLabelValues("error").Inc()
		return
	}
	m.scenarioCount.WithLabelValues("ok").Inc()
	seconds := r.Runtime.Seconds()
	m.runtime.WithLabelValues(r.Scenario).Set(seconds)
	m.memory.WithLabelValues(r.Scenario).Set(r.MemoryMB)
	m.routeDistance.WithLabelValues(r.Scenario, r.HospitalName).Set(r.Distance)
	m.runtimeSummary.Observe(seconds)
	m.runtimeDuration.Observe(seconds)
}

// WriteTextfile tulis semua metric ke file format node-exporter textfile collector.
func WriteTextfile(g prometheus.Gatherer, path string) error {
	return prometheus.WriteToTextfile(path, g)
}
