package main

import (
	"log/slog"
	"math/rand"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	astar "github.com/Saint-Jimmy-13/GWPF-GridWorldPathFinder"
	"github.com/Saint-Jimmy-13/GWPF-GridWorldPathFinder/experiment"
	"github.com/Saint-Jimmy-13/GWPF-GridWorldPathFinder/grid"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a step-by-step search API for visual frontends",
		RunE: func(cmd *cobra.Command, args []string) error {
			gin.SetMode(gin.ReleaseMode)
			srv := newVizServer()
			slog.Info("serving", "addr", addr)
			return srv.router().Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}

// vizServer holds the single active problem and stepper. One session at a
// time; /init replaces any previous session.
type vizServer struct {
	mu      sync.Mutex
	problem *grid.Problem
	stepper *astar.Stepper[grid.Cell, grid.Move]
}

func newVizServer() *vizServer {
	return &vizServer{}
}

func (s *vizServer) router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.POST("/init", s.handleInit)
	router.POST("/next", s.handleNext)
	return router
}

type initResponse struct {
	Size  int         `json:"size"`
	Start grid.Cell   `json:"start"`
	Goal  grid.Cell   `json:"goal"`
	Walls []grid.Cell `json:"walls"`
}

type stepResponse struct {
	Step    int         `json:"step"`
	Size    int         `json:"size"`
	Walls   []grid.Cell `json:"walls"`
	Open    []grid.Cell `json:"open,omitempty"`
	Closed  []grid.Cell `json:"closed,omitempty"`
	Current grid.Cell   `json:"current"`
	Start   grid.Cell   `json:"start"`
	Goal    grid.Cell   `json:"goal"`
	Done    bool        `json:"done"`
	Found   bool        `json:"found"`
	Path    []grid.Cell `json:"path,omitempty"`
	Stats   astar.Stats `json:"stats"`
}

func (s *vizServer) handleInit(c *gin.Context) {
	size := intQuery(c, "size", 20)
	if size < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "size must be at least 2"})
		return
	}
	density := floatQuery(c, "density", 0.2)
	seed := time.Now().UnixNano()
	if raw := c.Query("seed"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			seed = v
		}
	}
	heuristicName := c.DefaultQuery("heuristic", "manhattan")

	heuristic, err := experiment.HeuristicByName(heuristicName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := grid.Cell{Row: 0, Col: 0}
	goal := grid.Cell{Row: size - 1, Col: size - 1}
	problem, err := grid.Random(rand.New(rand.NewSource(seed)), size, density, start, goal)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	s.problem = problem
	s.stepper = astar.NewStepper[grid.Cell, grid.Move](problem, heuristic,
		astar.WithCapacityHint(size*size))
	s.mu.Unlock()

	c.JSON(http.StatusOK, initResponse{
		Size:  size,
		Start: start,
		Goal:  goal,
		Walls: problem.Obstacles(),
	})
}

func (s *vizServer) handleNext(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stepper == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "engine not initialized"})
		return
	}

	snap := s.stepper.Step()
	resp := stepResponse{
		Step:    snap.StepIndex,
		Size:    s.problem.Size(),
		Walls:   s.problem.Obstacles(),
		Open:    cellKeys(snap.Open),
		Closed:  cellKeys(snap.Closed),
		Current: snap.Current,
		Start:   s.problem.Start(),
		Goal:    s.problem.Goal(),
		Done:    snap.Done,
		Found:   snap.Found,
		Stats:   snap.Stats,
	}
	if snap.Found {
		resp.Path = grid.Trace(s.problem.Start(), snap.Path)
	}

	c.JSON(http.StatusOK, resp)
}

func cellKeys(m map[grid.Cell]bool) []grid.Cell {
	cells := make([]grid.Cell, 0, len(m))
	for cell := range m {
		cells = append(cells, cell)
	}
	return cells
}

func intQuery(c *gin.Context, key string, fallback int) int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}

func floatQuery(c *gin.Context, key string, fallback float64) float64 {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
	}
	return fallback
}
