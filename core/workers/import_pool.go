// ABOUTME: Import pool fetches several news feeds concurrently with a bounded number of workers
// ABOUTME: Each feed reports its own result; one failing feed does not stop the others

package workers

import (
	"context"
	"sync"
	"time"

	"healthinfo-api/core/content"
)

// FeedImporter imports one feed
type FeedImporter interface {
	Import(ctx context.Context, feedURL string) (content.ImportResult, error)
}

// FeedResult is the outcome of importing one feed
type FeedResult struct {
	URL    string
	Result content.ImportResult
	Err    error
}

// PoolConfig holds configuration for the import pool
type PoolConfig struct {
	MaxWorkers int
	QueueSize  int
}

// DefaultPoolConfig returns the default pool configuration
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		MaxWorkers: 4,
		QueueSize:  32,
	}
}

type importJob struct {
	url    string
	ctx    context.Context
	result chan<- FeedResult
}

// ImportPool runs feed imports on a fixed set of worker goroutines
type ImportPool struct {
	importer   FeedImporter
	jobQueue   chan *importJob
	quit       chan struct{}
	maxWorkers int
	wg         sync.WaitGroup
	submits    sync.WaitGroup
	mu         sync.Mutex
	running    bool
	stopped    bool
}

// NewImportPool creates a stopped pool
func NewImportPool(importer FeedImporter, config PoolConfig) *ImportPool {
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = DefaultPoolConfig().MaxWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = DefaultPoolConfig().QueueSize
	}

	return &ImportPool{
		importer:   importer,
		jobQueue:   make(chan *importJob, config.QueueSize),
		quit:       make(chan struct{}),
		maxWorkers: config.MaxWorkers,
	}
}

// Start launches the workers
func (p *ImportPool) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running || p.stopped {
		return
	}
	for i := 0; i < p.maxWorkers; i++ {
		p.wg.Add(1)
		go p.run()
	}
	p.running = true
}

// Stop closes the queue and waits for queued imports to finish.
// Submits still waiting for queue space fail with ErrPoolNotRunning.
// A stopped pool cannot be restarted.
func (p *ImportPool) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	p.stopped = true
	close(p.quit)
	p.mu.Unlock()

	// the queue is closed only once no Submit can send on it
	p.submits.Wait()
	close(p.jobQueue)
	p.wg.Wait()
}

// Submit queues one feed. The outcome is sent on result.
// Waiting for queue space does not hold the pool lock.
func (p *ImportPool) Submit(ctx context.Context, feedURL string, result chan<- FeedResult) error {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return ErrPoolNotRunning
	}
	p.submits.Add(1)
	p.mu.Unlock()
	defer p.submits.Done()

	timer := time.NewTimer(5 * time.Second)
	defer timer.Stop()

	select {
	case p.jobQueue <- &importJob{url: feedURL, ctx: ctx, result: result}:
		return nil
	case <-p.quit:
		return ErrPoolNotRunning
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return ErrQueueFull
	}
}

// ImportAll imports every URL and returns results in input order
func (p *ImportPool) ImportAll(ctx context.Context, urls []string) []FeedResult {
	results := make([]FeedResult, len(urls))
	ch := make(chan FeedResult, len(urls))
	index := make(map[string][]int, len(urls))

	pending := 0
	for i, u := range urls {
		index[u] = append(index[u], i)
		if err := p.Submit(ctx, u, ch); err != nil {
			results[i] = FeedResult{URL: u, Err: err}
			index[u] = index[u][:len(index[u])-1]
			continue
		}
		pending++
	}

	for ; pending > 0; pending-- {
		r := <-ch
		slots := index[r.URL]
		results[slots[0]] = r
		index[r.URL] = slots[1:]
	}
	return results
}

func (p *ImportPool) run() {
	defer p.wg.Done()

	for job := range p.jobQueue {
		res := FeedResult{URL: job.url}
		if err := job.ctx.Err(); err != nil {
			res.Err = err
		} else {
			res.Result, res.Err = p.importer.Import(job.ctx, job.url)
		}
		job.result <- res
	}
}

// Error definitions
var (
	ErrPoolNotRunning = &PoolError{Message: "import pool is not running"}
	ErrQueueFull      = &PoolError{Message: "import queue is full"}
)

// PoolError represents a pool-specific error
type PoolError struct {
	Message string
}

func (e *PoolError) Error() string {
	return e.Message
}
