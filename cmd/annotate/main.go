package main

import (
	"flag"
	"fmt"
	"os"

	"lintang/hospitalnav/pkg/annotation"
	"lintang/hospitalnav/pkg/config"
	"lintang/hospitalnav/pkg/domain"
	"lintang/hospitalnav/pkg/logger"

	"github.com/rs/zerolog/log"
)

var (
	configFile = flag.String("config", "config.yaml", "config file (yaml)")
	city       = flag.String("city", "", "nama kota (override config)")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Error().Err(err).Msg("annotate failed")
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
	if err := logger.Init(cfg.Log); err != nil {
		return domain.WrapErrorf(err, domain.ErrBadParamInput, "init logger")
	}

	paths := cfg.Paths()
	tags, err := annotation.Run(paths)
	if err != nil {
		return err
	}
	fmt.Printf("%d hospitals mapped -> %s\n", len(tags), paths.MappedGraph)
	return nil
}
