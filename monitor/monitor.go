// Package monitor serves live training progress over HTTP, so a
// running experiment can be watched from a browser or curl instead of
// scraping log output.
package monitor

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type experimentStats struct {
	Name     string    `json:"name"`
	Episodes int       `json:"episodes"`
	Rewards  []float64 `json:"rewards"`
}

// Server exposes per-experiment reward histories as JSON. It
// implements rl.Recorder, so it can be plugged into an experiment
// config directly.
type Server struct {
	server *http.Server
	logger zerolog.Logger

	lock        sync.Mutex
	experiments map[string]*experimentStats
	order       []string
}

// NewServer creates a monitor listening on addr (for example
// "localhost:8080").
func NewServer(addr string, logger zerolog.Logger) *Server {
	s := &Server{
		logger:      logger,
		experiments: make(map[string]*experimentStats),
		order:       make([]string, 0),
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/experiments", s.handleList)
	r.GET("/experiments/:name", s.handleExperiment)
	s.server = &http.Server{
		Addr:    addr,
		Handler: r,
	}

	return s
}

// Start begins serving in the background.
func (s *Server) Start() {
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error().Err(err).Msg("monitor server stopped")
		}
	}()
	s.logger.Info().Str("addr", s.server.Addr).Msg("monitor listening")
}

// Stop shuts the server down, waiting for in-flight requests.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Record appends one episode result for an experiment.
func (s *Server) Record(name string, episode int, reward float64) {
	s.lock.Lock()
	defer s.lock.Unlock()

	stats, ok := s.experiments[name]
	if !ok {
		stats = &experimentStats{Name: name, Rewards: make([]float64, 0)}
		s.experiments[name] = stats
		s.order = append(s.order, name)
	}
	stats.Episodes = episode + 1
	stats.Rewards = append(stats.Rewards, reward)
}

func (s *Server) handleList(c *gin.Context) {
	s.lock.Lock()
	defer s.lock.Unlock()
	c.JSON(http.StatusOK, gin.H{"experiments": s.order})
}

func (s *Server) handleExperiment(c *gin.Context) {
	name := c.Param("name")

	s.lock.Lock()
	defer s.lock.Unlock()
	stats, ok := s.experiments[name]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown experiment"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
