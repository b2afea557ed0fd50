// Package worker hosts background loops that run beside the HTTP server.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"foodshare-api/internal/pkg/config"
	"foodshare-api/internal/usecase/commands"
)

const sweeperLeaseKey = "foodshare:sweeper:lease"

type Locker interface {
	TryAcquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

type SweepResult struct {
	ExpiredDonations int64
	LapsedRequests   int64
	// Skipped is set when another instance held the lease.
	Skipped bool
}

// Sweeper periodically expires stale donations and requests.
type Sweeper struct {
	expiry   commands.ExpiryCommands
	locker   Locker
	interval time.Duration
	leaseTTL time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSweeper(expiry commands.ExpiryCommands, locker Locker, cfg config.SweeperConfig) *Sweeper {
	interval := cfg.Interval
	if interval <= 0 {
		interval = time.Minute
	}
	leaseTTL := cfg.LeaseTTL
	if leaseTTL <= 0 || leaseTTL > interval {
		leaseTTL = interval
	}
	return &Sweeper{
		expiry:   expiry,
		locker:   locker,
		interval: interval,
		leaseTTL: leaseTTL,
	}
}

func (s *Sweeper) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.loop(ctx)
	}()
	slog.Info("expiry sweeper started", "interval", s.interval.String())
}

func (s *Sweeper) Stop(ctx context.Context) error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("expiry sweeper stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Sweeper) loop(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce performs one sweep. Each class is swept independently and failures
// are logged, never returned. A lease taken for the sweep is released when it
// finishes.
func (s *Sweeper) RunOnce(ctx context.Context) SweepResult {
	acquired, err := s.locker.TryAcquire(ctx, sweeperLeaseKey, s.leaseTTL)
	switch {
	case err != nil:
		// both sweeps are idempotent, so fall back to sweeping
		slog.Warn("sweeper lease unavailable, sweeping anyway", "error", err.Error())
	case !acquired:
		slog.Debug("sweeper lease held elsewhere, skipping tick")
		return SweepResult{Skipped: true}
	default:
		defer s.releaseLease(ctx)
	}

	var result SweepResult
	if n, err := s.expiry.ExpireDonations(ctx); err != nil {
		slog.Error("failed to expire donations", "error", err.Error())
	} else {
		result.ExpiredDonations = n
	}
	if n, err := s.expiry.ExpireRequests(ctx); err != nil {
		slog.Error("failed to expire requests", "error", err.Error())
	} else {
		result.LapsedRequests = n
	}

	if result.ExpiredDonations > 0 || result.LapsedRequests > 0 {
		slog.Info("sweep completed",
			"expired_donations", result.ExpiredDonations,
			"lapsed_requests", result.LapsedRequests)
	}
	return result
}

func (s *Sweeper) releaseLease(ctx context.Context) {
	if err := s.locker.Release(context.WithoutCancel(ctx), sweeperLeaseKey); err != nil {
		slog.Warn("failed to release sweeper lease", "error", err.Error())
	}
}
