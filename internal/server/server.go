// Package server exposes a router.City over a small JSON HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/citywalk/costmodel"
	"github.com/katalvlaran/citywalk/gridgraph"
	"github.com/katalvlaran/citywalk/router"
)

// errBadQuery marks malformed query parameters.
var errBadQuery = errors.New("server: bad query")

// Server serves read-only queries against one City.
type Server struct {
	city   *router.City
	logger *slog.Logger
	mux    *mux.Router
}

// New wires all routes. A nil logger falls back to slog.Default().
func New(city *router.City, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		city:   city,
		logger: logger,
		mux:    mux.NewRouter(),
	}
	s.RegisterRoutes(s.mux)

	return s
}

// Handler returns the root http.Handler. Every request is logged, including
// those no route matches.
func (s *Server) Handler() http.Handler { return s.logRequests(s.mux) }

// RegisterRoutes attaches the API to r.
func (s *Server) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/grid", s.handleGrid).Methods(http.MethodGet)
	api.HandleFunc("/travelers", s.handleTravelers).Methods(http.MethodGet)
	api.HandleFunc("/destinations", s.handleDestinations).Methods(http.MethodGet)
	api.HandleFunc("/trajectories/{destination}", s.handleTrajectories).Methods(http.MethodGet)
	api.HandleFunc("/routes", s.handleRoute).Methods(http.MethodGet)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// gridResponse lists the tier of every block, row by row.
type gridResponse struct {
	Height int                `json:"height"`
	Width  int                `json:"width"`
	Tiers  [][]costmodel.Tier `json:"tiers"`
}

func (s *Server) handleGrid(w http.ResponseWriter, _ *http.Request) {
	g := s.city.Grid()
	resp := gridResponse{Height: g.Height, Width: g.Width, Tiers: make([][]costmodel.Tier, g.Height)}
	for row := range resp.Tiers {
		resp.Tiers[row] = make([]costmodel.Tier, g.Width)
		for col := range resp.Tiers[row] {
			resp.Tiers[row][col] = s.city.Model().Classify(gridgraph.Cell{Row: row, Col: col})
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTravelers(w http.ResponseWriter, _ *http.Request) {
	ts := s.city.Travelers()
	writeJSON(w, http.StatusOK, map[string]interface{}{"travelers": ts[:]})
}

func (s *Server) handleDestinations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"destinations": s.city.Destinations()})
}

func (s *Server) handleTrajectories(w http.ResponseWriter, r *http.Request) {
	dest := mux.Vars(r)["destination"]
	tr, err := s.city.ComputeTrajectories(dest)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tr)
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, err := parseCell(q.Get("from"))
	if err != nil {
		s.writeError(w, fmt.Errorf("from: %w", err))
		return
	}
	to, err := parseCell(q.Get("to"))
	if err != nil {
		s.writeError(w, fmt.Errorf("to: %w", err))
		return
	}
	id := router.TravelerID(q.Get("traveler"))

	route, err := s.city.ShortestPath(from, to, id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, router.Leg{Traveler: id, Route: route})
}

// parseCell reads "row,col".
func parseCell(s string) (gridgraph.Cell, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return gridgraph.Cell{}, fmt.Errorf("%w: want row,col, got %q", errBadQuery, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("%w: row %q", errBadQuery, parts[0])
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("%w: col %q", errBadQuery, parts[1])
	}

	return gridgraph.Cell{Row: row, Col: col}, nil
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, router.ErrInvalidDestination):
		return http.StatusNotFound
	case errors.Is(err, errBadQuery),
		errors.Is(err, router.ErrInvalidCoordinate),
		errors.Is(err, router.ErrUnknownTraveler):
		return http.StatusBadRequest
	case errors.Is(err, router.ErrUnreachable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err.Error())
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).String(),
		)
	})
}
