package service

import (
	"context"
	"cryptodashboard/internal/domain"
	"cryptodashboard/internal/logger"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

const defaultRefreshInterval = 60 * time.Second

// ErrSnapshotNotReady is returned before the first refresh cycle completes.
var ErrSnapshotNotReady = errors.New("no portfolio snapshot computed yet")

// RefreshService re-runs the full valuation pipeline on a fixed timer. Each
// cycle carries a monotonic token; a slow cycle that finishes after a newer
// one started is discarded on arrival, so a stale result can never overwrite
// a fresher one. Each applied cycle fully supersedes the previous state -
// including replacing a good snapshot with an error state when the ledger
// fetch fails, so the caller shows an explicit error rather than stale data.
type RefreshService interface {
	Start(ctx context.Context)
	Latest() (*domain.PortfolioSnapshot, error)
}

type refreshServiceHandler struct {
	PortfolioService PortfolioService
	Interval         time.Duration

	cycleCounter atomic.Uint64

	mu           sync.RWMutex
	appliedCycle uint64
	latest       *domain.PortfolioSnapshot
	latestErr    error
}

func NewRefreshService(portfolioService PortfolioService, interval time.Duration) RefreshService {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &refreshServiceHandler{
		PortfolioService: portfolioService,
		Interval:         interval,
	}
}

// Start blocks until ctx is cancelled. In-flight cycles are not cancelled
// when a new tick fires; superseded results are discarded in applyResult.
func (h *refreshServiceHandler) Start(ctx context.Context) {
	h.runCycle(ctx)

	ticker := time.NewTicker(h.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			go h.runCycle(ctx)
		}
	}
}

func (h *refreshServiceHandler) runCycle(ctx context.Context) {
	log := logger.FromContext(ctx)
	token := h.cycleCounter.Add(1)

	start := time.Now()
	snapshot, err := h.PortfolioService.Snapshot(ctx)
	if err != nil {
		log.Warnf("refresh cycle %d failed: %s", token, err.Error())
	} else {
		log.Infof("refresh cycle %d (%s) completed in %dms", token, snapshot.RefreshID, time.Since(start).Milliseconds())
	}

	h.applyResult(token, snapshot, err)
}

func (h *refreshServiceHandler) applyResult(token uint64, snapshot *domain.PortfolioSnapshot, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if token <= h.appliedCycle {
		// a newer cycle already landed
		return
	}

	h.appliedCycle = token
	h.latest = snapshot
	h.latestErr = err
}

func (h *refreshServiceHandler) Latest() (*domain.PortfolioSnapshot, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.latestErr != nil {
		return nil, h.latestErr
	}
	if h.latest == nil {
		return nil, ErrSnapshotNotReady
	}
	return h.latest, nil
}
