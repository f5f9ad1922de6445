package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"github.com/mr1hm/go-nearby-hospitals/internal/config"
	"github.com/mr1hm/go-nearby-hospitals/internal/location"
	"github.com/mr1hm/go-nearby-hospitals/internal/logging"
	"github.com/mr1hm/go-nearby-hospitals/internal/overpass"
	"github.com/mr1hm/go-nearby-hospitals/internal/session"
)

var (
	lat = flag.Float64("lat", 0, "latitude of the search origin in degrees")
	lon = flag.Float64("lon", 0, "longitude of the search origin in degrees")
)

func main() {
	_ = godotenv.Load()
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	logging.Setup(cfg.Logging.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := overpass.NewClient(cfg.Overpass.URL, cfg.Overpass.UserAgent, cfg.Overpass.Timeout)
	res := session.NewController(client).Run(ctx, locatorFromFlags(), nil)

	if res.Failed() {
		slog.Debug("session failed", "stage", res.Stage, "error", res.Err)
		fmt.Fprintln(os.Stderr, res.State.Error)
		if errors.Is(res.Err, location.ErrUnsupported) {
			fmt.Fprintln(os.Stderr, "Pass the search origin with -lat and -lon.")
		}
		os.Exit(1)
	}
	printHospitals(os.Stdout, res.State)
}

// locatorFromFlags treats missing -lat/-lon like a host without a location
// capability.
func locatorFromFlags() location.Locator {
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["lat"] || !set["lon"] {
		return location.Unsupported{}
	}
	return location.Fixed{Latitude: *lat, Longitude: *lon}
}

func printHospitals(w io.Writer, st session.State) {
	if len(st.Hospitals) == 0 {
		fmt.Fprintf(w, "No hospitals found within %d km.\n", overpass.SearchRadiusMeters/1000)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KM\tNAME\tEMERGENCY\tPHONE\tADDRESS")
	for _, h := range st.Hospitals {
		emergency := ""
		if h.Emergency {
			emergency = "yes"
		}
		fmt.Fprintf(tw, "%.1f\t%s\t%s\t%s\t%s\n", h.Distance, h.Name, emergency, h.Phone, h.Address)
	}
	tw.Flush()
}
