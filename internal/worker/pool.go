// worker/pool.go
package worker

// Task is a unit of work producing a single result.
type Task[T any] func() T

type job[T any] struct {
	fn  Task[T]
	out chan T
}

// Pool runs tasks on a fixed number of workers, bounding how many execute
// concurrently. Each submission gets its own result channel so callers can
// wait for their task without filtering a shared stream.
type Pool[T any] struct {
	jobs chan job[T]
}

func NewPool[T any](workerCount int, bufferSize int) *Pool[T] {
	p := &Pool[T]{
		jobs: make(chan job[T], bufferSize),
	}

	for i := 0; i < workerCount; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool[T]) worker() {
	for j := range p.jobs {
		j.out <- j.fn()
	}
}

// Submit queues a task and returns the channel its result will arrive on.
// The channel is buffered, so a caller that stops waiting does not block a
// worker.
func (p *Pool[T]) Submit(fn Task[T]) <-chan T {
	out := make(chan T, 1)
	p.jobs <- job[T]{fn: fn, out: out}
	return out
}

// Close stops the workers once queued tasks drain. Submitting after Close
// panics.
func (p *Pool[T]) Close() {
	close(p.jobs)
}
