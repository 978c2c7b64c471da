package drill

import (
	"sync"
	"time"

	"wordlearner/internal/domain"
	"wordlearner/internal/service"

	"go.uber.org/zap"
)

// Runner periodically advances the word sequence and hands each word to a
// show callback. One runner drives one chat's drill session.
type Runner struct {
	sequence *service.SequenceService
	logger   *zap.Logger

	mu       sync.Mutex
	stopChan chan struct{}
	running  bool
}

// NewRunner creates a stopped runner over the given sequence.
func NewRunner(sequence *service.SequenceService, logger *zap.Logger) *Runner {
	return &Runner{
		sequence: sequence,
		logger:   logger,
	}
}

// Start shows the current word immediately and then advances every interval.
// show is called from the runner's goroutine. Starting a running runner is a
// no-op; call Stop first to change the interval.
func (r *Runner) Start(interval time.Duration, show func(domain.Word)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return
	}

	r.stopChan = make(chan struct{})
	r.running = true

	go r.run(interval, r.stopChan, show)

	r.logger.Info("Drill started", zap.Duration("interval", interval))
}

// Stop halts the drill. Stopping a stopped runner is a no-op.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return
	}

	close(r.stopChan)
	r.running = false

	r.logger.Info("Drill stopped")
}

// Running reports whether the drill is active.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

func (r *Runner) run(interval time.Duration, stop chan struct{}, show func(domain.Word)) {
	if w := r.sequence.Current(); w != nil {
		show(*w)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			// Keep ticking through an empty collection; words may arrive.
			if w := r.sequence.Next(); w != nil {
				show(*w)
			}
		}
	}
}
