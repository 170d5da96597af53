package main

import (
	"flag"
	"os"

	"lintang/hospitalnav/pkg/config"
	"lintang/hospitalnav/pkg/domain"
	"lintang/hospitalnav/pkg/evaluation"
	"lintang/hospitalnav/pkg/logger"
	"lintang/hospitalnav/pkg/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
)

var (
	configFile  = flag.String("config", "config.yaml", "config file (yaml)")
	city        = flag.String("city", "", "nama kota (override config)")
	metricsFile = flag.String("metrics", "", "tulis metric prometheus ke file textfile collector (override config)")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Error().Err(err).Msg("evaluate failed")
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
	if *metricsFile != "" {
		cfg.Evaluation.MetricsFile = *metricsFile
	}
	if err := logger.Init(cfg.Log); err != nil {
		return domain.WrapErrorf(err, domain.ErrBadParamInput, "init logger")
	}

	// evaluasi tidak butuh geocoder, scenario sudah berupa koordinat
	svc, err := service.LoadNavigationService(cfg, nil)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	h := evaluation.NewHarness(svc, reg)
	results := h.Run(cfg.Evaluation.Scenarios, os.Stdout)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	log.Info().Int("scenarios", len(results)).Int("failed", failed).Msg("evaluation finished")

	if cfg.Evaluation.MetricsFile != "" {
		if err := evaluation.WriteTextfile(reg, cfg.Evaluation.MetricsFile); err != nil {
			return domain.WrapErrorf(err, domain.ErrInternal, "write metrics %s", cfg.Evaluation.MetricsFile)
		}
		log.Info().Str("file", cfg.Evaluation.MetricsFile).Msg("metrics written")
	}
	return nil
}
