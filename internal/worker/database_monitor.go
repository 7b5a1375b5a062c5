package worker

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// DatabaseProbe checks database reachability.
type DatabaseProbe interface {
	HealthCheck(ctx context.Context) error
}

// StatusRecorder receives the outcome of every probe.
type StatusRecorder interface {
	SetDatabaseUp(up bool)
}

// DatabaseMonitor periodically probes the database in the background, exports
// the result and logs availability transitions.
type DatabaseMonitor struct {
	probe    DatabaseProbe
	recorder StatusRecorder
	interval time.Duration
	logger   *slog.Logger

	up      atomic.Bool
	checked atomic.Bool

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewDatabaseMonitor constructs the monitor. Non-positive intervals fall back
// to one second.
func NewDatabaseMonitor(probe DatabaseProbe, recorder StatusRecorder, interval time.Duration, logger *slog.Logger) *DatabaseMonitor {
	if interval <= 0 {
		interval = time.Second
	}
	return &DatabaseMonitor{
		probe:    probe,
		recorder: recorder,
		interval: interval,
		logger:   logger,
	}
}

// Start probes once and then keeps probing on every tick until Stop.
func (m *DatabaseMonitor) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancel != nil {
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel

	m.wg.Add(1)
	go m.loop(runCtx)
}

// Stop cancels probing and waits for the loop to exit.
func (m *DatabaseMonitor) Stop() {
	m.mu.Lock()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.mu.Unlock()

	m.wg.Wait()
}

// lastProbeUp reports the result of the most recent probe.
func (m *DatabaseMonitor) lastProbeUp() bool {
	return m.up.Load()
}

func (m *DatabaseMonitor) loop(ctx context.Context) {
	defer m.wg.Done()
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.check(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

func (m *DatabaseMonitor) check(ctx context.Context) {
	err := m.probe.HealthCheck(ctx)
	if ctx.Err() != nil {
		return
	}
	up := err == nil
	m.recorder.SetDatabaseUp(up)

	previous := m.up.Swap(up)
	first := !m.checked.Swap(true)
	switch {
	case !up && (first || previous):
		m.logger.Warn("database unavailable", slog.String("error", err.Error()))
	case up && !first && !previous:
		m.logger.Info("database available again")
	}
}
