package workers

import "context"

// Workers aggregates background workers so the server can start and stop all
// of them with one call. Workers are started in slice order and stopped in
// reverse order.
type Workers struct {
	workers []Worker
}

// NewWorkers bundles the given workers into one aggregate.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Start launches every worker.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop winds every worker down, last started first, and blocks until all of
// them have finished.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
