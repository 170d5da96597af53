package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"lintang/hospitalnav/pkg/acquisition"
	"lintang/hospitalnav/pkg/config"
	"lintang/hospitalnav/pkg/domain"
	"lintang/hospitalnav/pkg/geocoder"
	"lintang/hospitalnav/pkg/logger"

	"github.com/rs/zerolog/log"
)

var (
	configFile = flag.String("config", "config.yaml", "config file (yaml)")
	city       = flag.String("city", "", "nama kota, dipakai buat nama file data (override config)")
	place      = flag.String("place", "", "nama place yang di-geocode, mis. 'Heidelberg, Germany' (override config)")
	source     = flag.String("source", "", "sumber openstreetmap: pbf | overpass (override config)")
	pbfFile    = flag.String("pbf", "", "openstreetmap .osm.pbf file buat source pbf (override config)")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Error().Err(err).Msg("collect failed")
		os.Exit(domain.ExitCode(err))
	}
}

func run() error {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return err
	}
	if *city != "" {
		cfg.City = *city
	}
	if *place != "" {
		cfg.Place = *place
	}
	if *source != "" {
		cfg.Acquisition.Source = *source
	}
	if *pbfFile != "" {
		cfg.Acquisition.PBFFile = *pbfFile
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	if err := logger.Init(cfg.Log); err != nil {
		return domain.WrapErrorf(err, domain.ErrBadParamInput, "init logger")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	gc, closeGeocoder, err := geocoder.FromConfig(cfg.Geocoder)
	if err != nil {
		return err
	}
	defer closeGeocoder()

	var src acquisition.Source
	switch cfg.Acquisition.Source {
	case "pbf":
		src = acquisition.NewPBFSource(cfg.Acquisition.PBFFile)
	default:
		src = acquisition.NewOverpassSource(cfg.Acquisition.OverpassURL, cfg.Acquisition.Timeout)
	}

	collector := acquisition.NewCollector(src, gc, cfg.Acquisition.BBoxPadding)
	paths := cfg.Paths()
	res, err := collector.Collect(ctx, cfg.Place, cfg.City, paths)
	if err != nil {
		return err
	}

	fmt.Printf("\nRoad network %s: %d nodes, %d edges -> %s\n", cfg.City, res.Graph.NumNodes(), res.Graph.NumEdges(), paths.Graph)
	fmt.Printf("Hospitals: %d -> %s\n", len(res.Hospitals), paths.Hospitals)
	return nil
}
