package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/campustt/timetable/internal/timetable"
	"github.com/campustt/timetable/pkg/config"
	"github.com/campustt/timetable/pkg/logger"
)

// server carries the loaded configuration and the in-memory run store.
// Generated runs live for the process lifetime only; persistence belongs to
// downstream consumers.
type server struct {
	cfg    *config.Config
	logger *zap.Logger

	mu   sync.RWMutex
	runs map[string]*timetable.RunResult
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &server{
		cfg:    cfg,
		logger: log,
		runs:   make(map[string]*timetable.RunResult),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.GinMiddleware(log))

	r.POST("/runs", s.handleGenerate)
	r.GET("/runs/:id/grids", s.handleGetGrids)
	r.GET("/runs/:id/report", s.handleGetReport)
	r.GET("/runs/:id/conflicts", s.handleGetConflicts)
	r.GET("/runs/:id/baskets", s.handleGetBaskets)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info("listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatal("server", zap.Error(err))
	}
}

func (s *server) storeRun(res *timetable.RunResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[res.ID] = res
}

func (s *server) run(id string) (*timetable.RunResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.runs[id]
	return res, ok
}
