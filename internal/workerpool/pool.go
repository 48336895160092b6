package workerpool

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"task-status-viewer/internal/domain"
)

var (
	ErrPoolFull   = errors.New("lookup pool is full")
	ErrPoolClosed = errors.New("lookup pool is closed")
)

type StatusFetcher interface {
	TaskStatus(ctx context.Context, path string, withSuffix bool) (domain.TaskStatusPage, error)
}

// Lookup is one status page request. Fixed selects the three-segment route.
type Lookup struct {
	Path  string
	Fixed bool
}

type Result struct {
	Lookup Lookup
	Page   domain.TaskStatusPage
	Err    error
}

// Pool runs status lookups on a fixed number of workers behind a bounded
// queue. Results are delivered on Results until Shutdown has drained the
// queue.
type Pool struct {
	fetcher StatusFetcher
	logger  zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.RWMutex
	closed  bool
	queue   chan Lookup
	results chan Result

	wg        sync.WaitGroup
	closeOnce sync.Once
	done      chan struct{}
}

func New(poolSize int, fetcher StatusFetcher, logger zerolog.Logger) *Pool {
	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		fetcher: fetcher,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
		queue:   make(chan Lookup, poolSize),
		results: make(chan Result, poolSize),
		done:    make(chan struct{}),
	}
}

func (p *Pool) Start(workers int) {
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

func (p *Pool) Enqueue(l Lookup) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPoolClosed
	}

	select {
	case p.queue <- l:
		return nil
	default:
		return ErrPoolFull
	}
}

func (p *Pool) Results() <-chan Result {
	return p.results
}

// Shutdown stops accepting lookups and waits for queued ones to finish.
// If ctx expires first, in-flight lookups are cancelled and ctx.Err is
// returned.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.queue)
		p.mu.Unlock()

		go func() {
			p.wg.Wait()
			close(p.results)
			p.cancel()
			close(p.done)
		}()
	})

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		p.cancel()

		return ctx.Err()
	}
}

func (p *Pool) worker(n int) {
	defer p.wg.Done()

	logger := p.logger.With().Int("worker", n).Logger()

	for l := range p.queue {
		page, err := p.fetcher.TaskStatus(p.ctx, l.Path, !l.Fixed)
		if err != nil {
			logger.Debug().Err(err).Str("path", l.Path).Msg("lookup failed")
		}

		select {
		case p.results <- Result{Lookup: l, Page: page, Err: err}:
		case <-p.ctx.Done():
			return
		}
	}
}
