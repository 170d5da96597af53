package annotation

import (
	"fmt"
	"runtime"

	"lintang/hospitalnav/pkg/concurrent"
	"lintang/hospitalnav/pkg/config"
	"lintang/hospitalnav/pkg/datastructure"
	"lintang/hospitalnav/pkg/domain"
	"lintang/hospitalnav/pkg/features"
	"lintang/hospitalnav/pkg/geo"
	"lintang/hospitalnav/pkg/graphml"
	"lintang/hospitalnav/pkg/spatial"

	"github.com/k0kubun/go-ansi"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
)

// Tag satu hospital yang sudah di-map ke node graph.
type Tag struct {
	Hospital string
	NodeID   int64
	Distance float64 // meter, dari titik hospital ke node
}

// Annotate tag node terdekat setiap hospital dengan nama hospital-nya. kalau dua hospital jatuh ke node yang sama, yang terakhir menang.
func Annotate(g *datastructure.Graph, hospitals datastructure.HospitalSet) ([]Tag, error) {
	if len(hospitals) == 0 {
		return nil, domain.NewErrorf(domain.ErrNoHospitalsAvailable, "no hospitals to annotate %s", g.Name)
	}
	idx := spatial.NewNodeIndex(g)

	bar := progressbar.NewOptions(len(hospitals),
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan][1/1][reset] mapping hospitals ke node road network ..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	type mapped struct {
		id  int
		tag Tag
		err error
	}
	wp := concurrent.NewWorkerPool[datastructure.Hospital, mapped](runtime.NumCPU(), len(hospitals))
	wp.Start(func(job concurrent.Job[datastructure.Hospital]) mapped {
		h := job.JobItem
		nodeID, err := idx.NearestNode(h.Lat, h.Lon)
		if err != nil {
			return mapped{id: job.ID, err: err}
		}
		n, _ := g.Node(nodeID)
		return mapped{id: job.ID, tag: Tag{
			Hospital: h.Name,
			NodeID:   nodeID,
			Distance: geo.DistanceMeters(h.Lat, h.Lon, n.Lat, n.Lon),
		}}
	})
	for i, h := range hospitals {
		wp.AddJob(concurrent.Job[datastructure.Hospital]{ID: i, JobItem: h})
	}
	wp.Close()
	wp.Wait()

	tags := make([]Tag, len(hospitals))
	for res := range wp.CollectResults() {
		if res.err != nil {
			return nil, res.err
		}
		tags[res.id] = res.tag
		bar.Add(1)
	}

	// tag sesuai urutan hospital, hospital terakhir menang kalau node-nya sama
	for _, t := range tags {
		g.TagHospital(t.NodeID, t.Hospital)
	}
	fmt.Println("")
	return tags, nil
}

// Run load {city}.graphml & {city}_hospitals.geojson, annotate, simpan ke {city}_mapped.graphml.
func Run(paths config.Paths) ([]Tag, error) {
	g, err := graphml.ReadFile(paths.Graph)
	if err != nil {
		return nil, err
	}
	hospitals, err := features.ReadHospitals(paths.Hospitals)
	if err != nil {
		return nil, err
	}
	log.Info().Int("nodes", g.NumNodes()).Int("edges", g.NumEdges()).Int("hospitals", len(hospitals)).Msg("annotating road network")

	tags, err := Annotate(g, hospitals)
	if err != nil {
		return nil, err
	}
	for _, t := range tags {
		log.Debug().Str("hospital", t.Hospital).Int64("node", t.NodeID).Float64("distance", t.Distance).Msg("hospital mapped")
	}

	if err := graphml.WriteFile(g, paths.MappedGraph); err != nil {
		return nil, err
	}
	log.Info().Str("graph", paths.MappedGraph).Int("tagged_nodes", len(g.HospitalNodes())).Msg("mapped graph saved")
	return tags, nil
}
