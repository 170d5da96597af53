package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"lintang/hospitalnav/pkg/config"
	"lintang/hospitalnav/pkg/domain"
	"lintang/hospitalnav/pkg/geocoder"
	"lintang/hospitalnav/pkg/logger"
	"lintang/hospitalnav/pkg/service"

	"github.com/rs/zerolog/log"
)

var (
	configFile = flag.String("config", "config.yaml", "config file (yaml)")
	city       = flag.String("city", "", "nama kota (override config)")
	address    = flag.String("address", "", "lokasi awal, kalau kosong & -lat/-lon tidak diisi akan ditanyakan")
	lat        = flag.Float64("lat", math.NaN(), "latitude lokasi awal")
	lon        = flag.Float64("lon", math.NaN(), "longitude lokasi awal")
	verbose    = flag.Bool("verbose", false, "print jarak & encoded polyline rute")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Error().Err(err).Msg("route failed")
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

	gc, closeGeocoder, err := geocoder.FromConfig(cfg.Geocoder)
	if err != nil {
		return err
	}
	defer closeGeocoder()

	svc, err := service.LoadNavigationService(cfg, gc)
	if err != nil {
		return err
	}

	var (
		query string
		res   service.RouteResult
	)
	if !math.IsNaN(*lat) && !math.IsNaN(*lon) {
		query = fmt.Sprintf("%f, %f", *lat, *lon)
		res, err = svc.RouteToNearestHospital(*lat, *lon)
	} else {
		query = *address
		if query == "" {
			query, err = prompt()
			if err != nil {
				return err
			}
		}
		res, err = svc.RouteFromAddress(context.Background(), query)
	}
	if err != nil {
		return err
	}

	fmt.Printf("\nThe nearest hospital to '%s' is '%s'.\n", query, res.Hospital.Hospital.Name)
	fmt.Println("\nThe shortest path to the nearest hospital using Dijkstra's algorithm is:")
	fmt.Println(res.Dijkstra.Instructions)
	fmt.Println("\nThe shortest path to the nearest hospital using A* algorithm is:")
	fmt.Println(res.AStar.Instructions)
	if *verbose {
		fmt.Printf("\nDistance: %.1f m\n", res.Dijkstra.Distance)
		fmt.Printf("Polyline: %s\n", res.Dijkstra.Polyline)
	}
	return nil
}

func prompt() (string, error) {
	fmt.Print("Enter the starting location (e.g., 'Some Building, Heidelberg, Germany'): ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		if err != nil {
			return "", domain.WrapErrorf(err, domain.ErrBadParamInput, "read starting location")
		}
		return "", domain.NewErrorf(domain.ErrBadParamInput, "starting location is empty")
	}
	return line, nil
}
