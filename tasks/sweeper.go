package tasks

import (
	"context"
	"sync"
	"time"

	"gazeta-portal/core/store"
	"gazeta-portal/core/utils"
	"github.com/robfig/cron/v3"
)

// SessionSweeper removes expired session rows in the background. Expired
// sessions are also dropped on read, so the sweeper exists only to keep the
// table from accumulating rows for users who never come back.
type SessionSweeper struct {
	sessions store.SessionStore
	logger   *utils.Logger
	spec     string

	cron *cron.Cron

	mu      sync.Mutex
	running bool
	sweeps  uint64
	removed int64
	lastRun time.Time
	lastErr error
}

// NewSessionSweeper builds a sweeper on the given cron spec. An empty spec
// defaults to every ten minutes.
func NewSessionSweeper(sessions store.SessionStore, logger *utils.Logger, spec string) *SessionSweeper {
	if spec == "" {
		spec = "@every 10m"
	}
	return &SessionSweeper{sessions: sessions, logger: logger, spec: spec}
}

func (s *SessionSweeper) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return nil
	}
	c := cron.New()
	if _, err := c.AddFunc(s.spec, s.sweep); err != nil {
		return err
	}
	c.Start()
	s.cron = c
	s.running = true
	if s.logger != nil {
		s.logger.Printf("session sweeper started spec=%q", s.spec)
	}
	return nil
}

func (s *SessionSweeper) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.running = false
}

func (s *SessionSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.sessions.DeleteExpired(ctx, time.Now().UTC())

	s.mu.Lock()
	s.sweeps++
	s.lastRun = time.Now().UTC()
	s.lastErr = err
	if err == nil {
		s.removed += n
	}
	s.mu.Unlock()

	if err != nil {
		if s.logger != nil {
			s.logger.Errorf("session sweep: %v", err)
		}
		return
	}
	if n > 0 && s.logger != nil {
		s.logger.Printf("session sweep removed=%d", n)
	}
}

type SweeperStats struct {
	Running bool
	Sweeps  uint64
	Removed int64
	LastRun time.Time
	LastErr error
}

func (s *SessionSweeper) Stats() SweeperStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SweeperStats{
		Running: s.running,
		Sweeps:  s.sweeps,
		Removed: s.removed,
		LastRun: s.lastRun,
		LastErr: s.lastErr,
	}
}
