package workers

import "context"

// Workers starts and stops a fixed set of workers.
type Workers struct {
	workers []Worker
}

// NewWorkers groups ws. Nil entries are skipped.
func NewWorkers(ws ...Worker) *Workers {
	list := make([]Worker, 0, len(ws))
	for _, w := range ws {
		if w != nil {
			list = append(list, w)
		}
	}
	return &Workers{workers: list}
}

// Start starts every worker in order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
