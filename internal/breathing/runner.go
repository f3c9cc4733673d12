package breathing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/akyairhashvil/umeed/internal/config"
	"github.com/akyairhashvil/umeed/internal/models"
	"go.uber.org/zap"
)

// Snapshot is published after every tick the runner applies.
type Snapshot struct {
	State    models.TimerState
	Progress float64
	Result   TickResult
}

// Runner drives a Session from a ticker goroutine. Control methods are
// serialised and each one stops the running ticker before changing state,
// so a Runner never has more than one ticker alive.
type Runner struct {
	ctl sync.Mutex // serialises Start/Pause/Reset/SelectPreset/Stop
	mu  sync.Mutex // guards session

	session  *Session
	clock    Clock
	interval time.Duration
	logger   *zap.Logger
	updates  chan Snapshot

	cancel context.CancelFunc
	done   chan struct{}
}

// RunnerOption customises a Runner.
type RunnerOption func(*Runner)

// WithClock replaces the real ticker source.
func WithClock(c Clock) RunnerOption {
	return func(r *Runner) { r.clock = c }
}

// WithInterval overrides the tick interval. Non-positive values keep the
// default.
func WithInterval(d time.Duration) RunnerOption {
	return func(r *Runner) {
		if d > 0 {
			r.interval = d
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(l *zap.Logger) RunnerOption {
	return func(r *Runner) { r.logger = l }
}

// NewRunner wraps session, which must not be nil. The runner takes
// ownership of it.
func NewRunner(session *Session, opts ...RunnerOption) *Runner {
	r := &Runner{
		session:  session,
		clock:    RealClock{},
		interval: config.TickInterval,
		logger:   zap.NewNop(),
		updates:  make(chan Snapshot, 1),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Updates delivers the latest snapshot. Stale snapshots are replaced when
// the reader falls behind.
func (r *Runner) Updates() <-chan Snapshot { return r.updates }

// Snapshot returns the current state without waiting for a tick.
func (r *Runner) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.session.State()
	return Snapshot{State: st, Progress: Progress(st)}
}

// Start begins ticking. It reports false if a ticker is already active or
// the session refused to start.
func (r *Runner) Start(ctx context.Context) bool {
	r.ctl.Lock()
	defer r.ctl.Unlock()
	if r.active() {
		return false
	}
	r.mu.Lock()
	started := r.session.Start()
	r.mu.Unlock()
	if !started {
		return false
	}

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	ticker := r.clock.NewTicker(r.interval)
	r.cancel, r.done = cancel, done
	go r.loop(loopCtx, ticker, done)
	r.logger.Debug("breathing ticker started", zap.Duration("interval", r.interval))
	return true
}

// Pause stops the ticker and keeps progress.
func (r *Runner) Pause() {
	r.ctl.Lock()
	defer r.ctl.Unlock()
	r.stopLoop()
	r.mu.Lock()
	r.session.Pause()
	r.mu.Unlock()
}

// Reset stops the ticker and rewinds the session.
func (r *Runner) Reset() {
	r.ctl.Lock()
	defer r.ctl.Unlock()
	r.stopLoop()
	r.mu.Lock()
	r.session.Reset()
	r.mu.Unlock()
}

// SelectPreset stops the ticker and switches presets. An unknown id leaves
// both the ticker and the session untouched.
func (r *Runner) SelectPreset(id string) error {
	r.ctl.Lock()
	defer r.ctl.Unlock()
	if _, ok := r.session.Registry().Lookup(id); !ok {
		return fmt.Errorf("select %q: %w", id, ErrUnknownPreset)
	}
	r.stopLoop()
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session.SelectPreset(id)
}

// Stop releases the ticker. Call it when the view closes.
func (r *Runner) Stop() {
	r.Pause()
}

// Done is closed when the current ticker goroutine exits. It is nil when
// no ticker was ever started.
func (r *Runner) Done() <-chan struct{} {
	r.ctl.Lock()
	defer r.ctl.Unlock()
	return r.done
}

// active reports whether a ticker goroutine is still running. Caller holds ctl.
func (r *Runner) active() bool {
	if r.done == nil {
		return false
	}
	select {
	case <-r.done:
		r.cancel()
		r.cancel, r.done = nil, nil
		return false
	default:
		return true
	}
}

// stopLoop cancels the ticker goroutine and waits for it. Caller holds ctl.
func (r *Runner) stopLoop() {
	if r.done == nil {
		return
	}
	r.cancel()
	<-r.done
	r.cancel, r.done = nil, nil
}

func (r *Runner) loop(ctx context.Context, ticker Ticker, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			r.mu.Lock()
			r.session.Pause()
			r.mu.Unlock()
			return
		case <-ticker.C():
		}

		r.mu.Lock()
		res := r.session.Tick()
		st := r.session.State()
		r.mu.Unlock()
		if !res.Advanced {
			continue
		}
		if res.PhaseChanged {
			r.logger.Debug("breathing phase changed",
				zap.String("from", string(res.From)),
				zap.String("to", string(res.To)),
				zap.Int("completed_cycles", st.CompletedCycles))
		}
		r.publish(Snapshot{State: st, Progress: Progress(st), Result: res})
		if res.Finished {
			r.logger.Info("breathing exercise finished",
				zap.String("preset", st.Preset.ID),
				zap.Int("cycles", st.CompletedCycles))
			return
		}
	}
}

func (r *Runner) publish(s Snapshot) {
	select {
	case r.updates <- s:
		return
	default:
	}
	select {
	case <-r.updates:
	default:
	}
	select {
	case r.updates <- s:
	default:
	}
}
