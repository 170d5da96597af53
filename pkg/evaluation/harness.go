package evaluation

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"lintang/hospitalnav/pkg/config"
	"lintang/hospitalnav/pkg/domain"
	"lintang/hospitalnav/pkg/service"
	"lintang/hospitalnav/pkg/util"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

type Router interface {
	RouteToNearestHospital(lat, lon float64) (service.RouteResult, error)
}

// ScenarioResult hasil satu scenario evaluasi.
type ScenarioResult struct {
	Scenario     string
	HospitalName string
	DijkstraPath string
	AStarPath    string
	Runtime      time.Duration
	MemoryMB     float64
	Distance     float64 // meter
	Polyline     string
	Err          error
}

type Harness struct {
	router  Router
	metrics *metrics
}

func NewHarness(router Router, reg prometheus.Registerer) *Harness {
	return &Harness{router: router, metrics: NewMetrics(reg)}
}

// Measure jalankan satu scenario sambil mengukur wall-clock runtime & memory yang dialokasikan.
func (h *Harness) Measure(s config.Scenario) ScenarioResult {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	start := time.Now()

	route, err := h.router.RouteToNearestHospital(s.Lat, s.Lon)

	elapsed := time.Since(start)
	runtime.ReadMemStats(&after)

	res := ScenarioResult{
		Scenario: s.Name,
		Runtime:  elapsed,
		MemoryMB: util.BytesToMB(after.TotalAlloc - before.TotalAlloc),
		Err:      err,
	}
	if err != nil {
		return res
	}
	res.HospitalName = route.Hospital.Hospital.Name
	res.DijkstraPath = route.Dijkstra.Instructions
	res.AStarPath = route.AStar.Instructions
	res.Distance = route.Dijkstra.Distance
	res.Polyline = route.Dijkstra.Polyline
	return res
}

// Run semua scenario berurutan & tulis report ke out. scenario yang gagal tetap dilaporkan, scenario berikutnya tetap jalan.
func (h *Harness) Run(scenarios []config.Scenario, out io.Writer) []ScenarioResult {
	results := make([]ScenarioResult, 0, len(scenarios))
	for _, s := range scenarios {
		fmt.Fprintf(out, "\nScenario: %s\n", s.Name)
		res := h.Measure(s)
		h.metrics.observe(res)
		if res.Err != nil {
			log.Error().Err(res.Err).Str("scenario", s.Name).Msg("scenario failed")
		}
		WriteReport(out, res)
		results = append(results, res)
	}
	return results
}

func WriteReport(out io.Writer, r ScenarioResult) {
	if r.Err != nil {
		// pesan domain error saja, error asal sudah ada di log
		msg := r.Err.Error()
		var derr *domain.Error
		if errors.As(r.Err, &derr) {
			msg = derr.Message()
		}
		fmt.Fprintf(out, "Error: %s\n", msg)
		return
	}
	fmt.Fprintf(out, "Nearest hospital: %s\n", r.HospitalName)
	fmt.Fprintf(out, "Runtime: %.2f seconds\n", r.Runtime.Seconds())
	fmt.Fprintf(out, "Memory allocated: %.2f MB\n", r.MemoryMB)
	fmt.Fprintf(out, "\nThe shortest path to the nearest hospital using Dijkstra's algorithm is:\n%s\n", r.DijkstraPath)
	fmt.Fprintf(out, "\nThe shortest path to the nearest hospital using A* algorithm is:\n%s\n", r.AStarPath)
}
