package input

import (
	"context"
	"io"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/napalu/comandante/errs"
)

// DispatchFunc handles one line taken off the queue
type DispatchFunc func(line string) error

// Worker is the single consumer of a Handler. Lines are dispatched one at a
// time in the order they were queued.
type Worker struct {
	handler  *Handler
	dispatch DispatchFunc
	logger   *log.Logger

	running atomic.Bool
	wg      sync.WaitGroup
	cancel  context.CancelFunc
	mu      sync.Mutex
}

// NewWorker creates a Worker. A nil logger discards output.
func NewWorker(handler *Handler, dispatch DispatchFunc, logger *log.Logger) *Worker {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return &Worker{
		handler:  handler,
		dispatch: dispatch,
		logger:   logger,
	}
}

// Start launches the consumer loop. It returns immediately.
func (w *Worker) Start(ctx context.Context) error {
	if w.handler.Closed() {
		return errs.ErrStopped
	}
	if !w.running.CompareAndSwap(false, true) {
		return errs.ErrAlreadyRunning
	}

	w.mu.Lock()
	ctx, w.cancel = context.WithCancel(ctx)
	w.mu.Unlock()

	w.wg.Add(1)
	go w.loop(ctx)
	w.logger.Debug("worker started", "capacity", w.handler.Cap())

	return nil
}

// Stop closes the handler, lets the line being dispatched finish and waits for
// the loop to exit. Lines still queued are dropped.
func (w *Worker) Stop() {
	w.handler.Close()

	w.mu.Lock()
	if w.cancel != nil {
		w.cancel()
	}
	w.mu.Unlock()

	w.wg.Wait()
	if w.running.CompareAndSwap(true, false) {
		w.logger.Debug("worker stopped", "dropped", w.handler.Len())
	}
}

// Wait blocks until the loop has exited
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) IsRunning() bool {
	return w.running.Load()
}

func (w *Worker) loop(ctx context.Context) {
	defer w.wg.Done()

	for {
		line, err := w.handler.Consume(ctx)
		if err != nil {
			return
		}
		if err := w.dispatch(line); err != nil {
			w.logger.Error("dispatch failed", "line", line, "err", err)
		}
	}
}
