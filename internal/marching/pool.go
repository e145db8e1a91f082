package marching

import (
	"context"
	"sync"

	"voxmesh/internal/mesh"
	"voxmesh/internal/volume"
)

// Job is one extraction request. The host submits a fresh immutable volume
// whenever it decides regeneration is needed; prior output is replaced
// wholesale, never patched.
type Job struct {
	Volume    *volume.Volume
	Algorithm Algorithm
	Workers   int // per-job partition count; 0 means serial
	// Result channel - receives the result when done.
	ResultChan chan Result
}

// Result carries the extracted streams or the extraction error.
type Result struct {
	Buffers *mesh.Buffers
	Err     error
}

// Pool manages goroutines for repeated surface extraction.
type Pool struct {
	jobQueue chan Job
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewPool starts a pool with the given number of workers and queue size.
func NewPool(workers, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		jobQueue: make(chan Job, queueSize),
		ctx:      ctx,
		cancel:   cancel,
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

// Submit queues a job. Returns false if the queue is full.
func (p *Pool) Submit(job Job) bool {
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// SubmitBlocking queues a job, blocking until there is room or the pool
// shuts down.
func (p *Pool) SubmitBlocking(job Job) {
	select {
	case p.jobQueue <- job:
	case <-p.ctx.Done():
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			var res Result
			if job.Workers > 1 {
				res.Buffers, res.Err = ExtractParallel(job.Volume, job.Algorithm, job.Workers)
			} else {
				res.Buffers, res.Err = Extract(job.Volume, job.Algorithm)
			}
			select {
			case job.ResultChan <- res:
			case <-p.ctx.Done():
				return
			}
		case <-p.ctx.Done():
			return
		}
	}
}

// Shutdown stops the workers and waits for them to exit.
func (p *Pool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}

// QueueLen returns the current number of queued jobs.
func (p *Pool) QueueLen() int {
	return len(p.jobQueue)
}
