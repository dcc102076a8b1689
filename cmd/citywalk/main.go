// Command citywalk tells two pedestrians who has to leave home first to meet
// at a destination, or serves the same answers over HTTP.
//
// Usage:
//
//	citywalk [-config city.yaml] [-destination "La Pasión"] [-map]
//	citywalk -serve :8080
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/citywalk/config"
	"github.com/katalvlaran/citywalk/internal/logging"
	"github.com/katalvlaran/citywalk/internal/render"
	"github.com/katalvlaran/citywalk/internal/server"
	"github.com/katalvlaran/citywalk/router"
)

type options struct {
	configPath  string
	destination string
	showMap     bool
	serveAddr   string
	logLevel    string
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "citywalk: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("citywalk", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "YAML city description (embedded reference city when empty)")
	fs.StringVar(&o.destination, "destination", "", "destination name (all destinations when empty)")
	fs.BoolVar(&o.showMap, "map", false, "print a text map with both routes")
	fs.StringVar(&o.serveAddr, "serve", "", "serve the JSON API on this address instead of printing")
	fs.StringVar(&o.logLevel, "log-level", "info", "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	return o, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	level, err := logging.ParseLevel(o.logLevel)
	if err != nil {
		return err
	}
	logger := logging.New(stderr, level)

	city, err := loadCity(o.configPath, logger)
	if err != nil {
		return err
	}
	if o.serveAddr != "" {
		return serve(o.serveAddr, city, logger)
	}

	names := []string{o.destination}
	if o.destination == "" {
		names = names[:0]
		for _, d := range city.Destinations() {
			names = append(names, d.Name)
		}
	}
	for i, name := range names {
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		tr, err := city.ComputeTrajectories(name)
		if err != nil {
			return err
		}
		report(stdout, tr)
		if o.showMap {
			fmt.Fprintln(stdout)
			if err := render.Map(stdout, city, &tr); err != nil {
				return err
			}
		}
	}

	return nil
}

func loadCity(path string, logger *slog.Logger) (*router.City, error) {
	var (
		f   *config.File
		err error
	)
	if path == "" {
		f, err = config.Default()
		path = "embedded reference city"
	} else {
		f, err = config.Load(path)
	}
	if err != nil {
		return nil, err
	}
	city, err := f.Build(router.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	g := city.Grid()
	logger.Info("city loaded",
		"source", path,
		"grid", fmt.Sprintf("%dx%d", g.Height, g.Width),
		"destinations", len(city.Destinations()),
	)

	return city, nil
}

// report prints both legs and the departure verdict.
func report(w io.Writer, tr router.Trajectories) {
	fmt.Fprintf(w, "Destination: %s %v (%s)\n", tr.Destination, tr.Target, render.StreetName(tr.Target))
	for _, leg := range []router.Leg{tr.A, tr.B} {
		fmt.Fprintf(w, "  %-10s %3d min  %s\n", leg.Traveler, leg.Cost, formatPath(leg.Route))
	}
	if tr.Simultaneous() {
		fmt.Fprintln(w, "  Both leave at the same time.")
		return
	}
	fmt.Fprintf(w, "  %s must leave %d minutes earlier.\n", tr.Earlier, tr.Delta)
}

func formatPath(r router.Route) string {
	parts := make([]string, len(r.Path))
	for i, c := range r.Path {
		parts[i] = c.String()
	}

	return strings.Join(parts, " -> ")
}

func serve(addr string, city *router.City, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           server.New(city, logger).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case sig := <-shutdown:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")

	return nil
}
