// Package names resolves display names for a batch of accounts using
// a bounded pool of concurrent workers with cooperative cancellation.
package names

import (
	"sync"

	"github.com/shelfapp/shelf/internal/logger"
)

// ResolveFunc looks up the display name for a 64-bit account ID. A
// failed lookup is expected and reported by the pool as a nil name.
type ResolveFunc func(id64 int64) (string, error)

// Sink receives each resolved result as it completes. Results arrive
// out of submission order, keyed by the job's index in the input
// slice; name is nil when resolution failed or was aborted.
type Sink func(index int, name *string)

type job struct {
	index int
	id64  int64
}

// Pool resolves names for one batch at a time. At most one run may be
// outstanding; Start during an active run is a no-op.
type Pool struct {
	// Min is the minimum worker count. A run uses
	// max(Min, len(jobs)) workers, so small batches resolve with full
	// parallelism.
	Min int

	Resolve ResolveFunc
	Log     logger.Logger

	mu      sync.Mutex
	queue   []job
	abort   bool
	running bool
	active  int
	done    func()
}

func (p *Pool) logger() logger.Logger {
	if p.Log != nil {
		return p.Log
	}
	return logger.Nop()
}

// Start launches a resolution run over ids. Each result is published
// to sink as it completes; done, if non-nil, fires exactly once after
// the last worker exits, whether the queue drained or the run was
// stopped. Returns false without side effects when a run is already
// active.
func (p *Pool) Start(ids []int64, sink Sink, done func()) bool {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return false
	}

	p.queue = make([]job, len(ids))
	for i, id := range ids {
		p.queue[i] = job{index: i, id64: id}
	}
	p.abort = false
	p.running = true
	p.done = done

	workers := len(ids)
	if p.Min > workers {
		workers = p.Min
	}
	if workers < 1 {
		workers = 1
	}
	p.active = workers
	p.mu.Unlock()

	p.logger().Debug("name resolution started",
		logger.Int("jobs", len(ids)), logger.Int("workers", workers))

	for i := 0; i < workers; i++ {
		go p.work(sink)
	}
	return true
}

// Stop requests cancellation. Workers finish their in-flight lookup
// but discard its result and take no further jobs. Safe to call at
// any time, including when no run is active.
func (p *Pool) Stop() {
	p.mu.Lock()
	p.abort = true
	p.mu.Unlock()
}

// Running reports whether a run is active.
func (p *Pool) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

func (p *Pool) work(sink Sink) {
	log := p.logger()

	for {
		p.mu.Lock()
		if p.abort || len(p.queue) == 0 {
			p.mu.Unlock()
			break
		}
		j := p.queue[0]
		p.queue = p.queue[1:]
		p.mu.Unlock()

		var name *string
		resolved, err := p.Resolve(j.id64)
		if err != nil {
			log.Debug("name resolution failed",
				logger.Int64("account", j.id64), logger.Error(err))
		} else {
			name = &resolved
		}

		// Re-check after the lookup so an abort during the network
		// call suppresses the stale result.
		p.mu.Lock()
		aborted := p.abort
		p.mu.Unlock()
		if aborted {
			break
		}

		sink(j.index, name)
	}

	p.mu.Lock()
	p.active--
	last := p.active == 0
	var done func()
	if last {
		p.running = false
		done = p.done
		p.done = nil
	}
	p.mu.Unlock()

	if last {
		log.Debug("name resolution finished")
		if done != nil {
			done()
		}
	}
}
