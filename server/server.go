package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/matryer/way"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/grid"
)

// Route paths.
const (
	PathRoute   = "/route"
	PathHealth  = "/healthz"
	PathMetrics = "/metrics"
)

// maxBodyBytes bounds a request body.
const maxBodyBytes = 8 << 20

// Server is an http.Handler serving route requests.
type Server struct {
	router  *way.Router
	log     *logrus.Logger
	opts    Options
	metrics *metrics
}

// New builds a Server and its routes.
func New(opts ...Option) *Server {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &Server{
		log:     cfg.Logger,
		opts:    cfg,
		metrics: newMetrics(cfg.Registry),
	}
	s.routes()

	return s
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc(http.MethodPost, PathRoute, s.handleRoute)
	s.router.HandleFunc(http.MethodGet, PathHealth, s.handleHealth)
	s.router.Handle(http.MethodGet, PathMetrics, promhttp.HandlerFor(s.opts.Registry, promhttp.HandlerOpts{}))
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	entry := s.log.WithField("remote", r.RemoteAddr)

	var req RouteRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		s.badRequest(w, entry, fmt.Errorf("server: decode request: %w", err))
		return
	}

	g, rejected, err := s.buildGrid(&req)
	if err != nil {
		s.badRequest(w, entry, err)
		return
	}
	start, goal := req.Start.Coord(), req.Goal.Coord()
	entry = entry.WithFields(logrus.Fields{
		"rows":      g.Rows(),
		"cols":      g.Cols(),
		"obstacles": len(req.Obstacles) - rejected,
		"start":     start.String(),
		"goal":      goal.String(),
	})

	began := time.Now()
	res, err := astar.FindPath(g, start, goal,
		astar.WithContext(r.Context()),
		astar.WithMaxExpansions(s.opts.MaxExpansions),
	)
	s.metrics.searchDuration.Observe(time.Since(began).Seconds())

	resp := RouteResponse{Rejected: rejected}
	switch {
	case errors.Is(err, astar.ErrNoRoute):
		s.metrics.searchesTotal.WithLabelValues(resultNoRoute).Inc()
		resp.Message = err.Error()
		entry.WithError(err).Info("no route")
	case err != nil:
		entry.WithError(err).Error("search failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	default:
		s.metrics.searchesTotal.WithLabelValues(resultFound).Inc()
		s.metrics.expandedNodes.Observe(float64(res.Expanded))
		resp.Found = true
		resp.Cost = res.Cost
		resp.Expanded = res.Expanded
		resp.Route = make([]Point, len(res.Route))
		for i, c := range res.Route {
			resp.Route[i] = pointOf(c)
		}
		entry.WithFields(logrus.Fields{"cost": res.Cost, "expanded": res.Expanded}).Info("route found")
	}

	s.writeJSON(w, http.StatusOK, resp)
}

// buildGrid materialises the request grid and applies its obstacles.
// Out-of-range obstacles are skipped and counted.
func (s *Server) buildGrid(req *RouteRequest) (*grid.Grid, int, error) {
	var (
		g   *grid.Grid
		err error
	)
	switch {
	case strings.TrimSpace(req.Map) != "":
		if (len(req.Map)-1024)/2 > s.opts.MaxCells {
			return nil, 0, fmt.Errorf("%w: map text too large", ErrTooManyCells)
		}
		g, err = grid.Parse(strings.NewReader(req.Map))
	case req.Rows != 0 || req.Cols != 0:
		if req.Rows > 0 && req.Cols > 0 && s.tooLarge(req.Rows, req.Cols) {
			return nil, 0, fmt.Errorf("%w: %d×%d > %d", ErrTooManyCells, req.Rows, req.Cols, s.opts.MaxCells)
		}
		g, err = grid.New(req.Rows, req.Cols)
	default:
		return nil, 0, ErrMissingGrid
	}
	if err != nil {
		return nil, 0, err
	}
	if s.tooLarge(g.Rows(), g.Cols()) {
		return nil, 0, fmt.Errorf("%w: %d×%d > %d", ErrTooManyCells, g.Rows(), g.Cols(), s.opts.MaxCells)
	}

	rejected := 0
	for _, p := range req.Obstacles {
		if !g.AddObstacle(p.Coord()) {
			rejected++
		}
	}

	return g, rejected, nil
}

// tooLarge reports whether rows×cols exceeds MaxCells without computing the
// product. rows and cols must be positive.
func (s *Server) tooLarge(rows, cols int) bool {
	return rows > s.opts.MaxCells/cols
}

func (s *Server) badRequest(w http.ResponseWriter, entry *logrus.Entry, err error) {
	s.metrics.searchesTotal.WithLabelValues(resultBadRequest).Inc()
	entry.WithError(err).Warn("bad route request")
	s.writeJSON(w, http.StatusBadRequest, RouteResponse{Message: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WithError(err).Error("encode response")
	}
}
