// Package input feeds raw command lines from any number of producers to a
// single consuming worker.
package input

import (
	"context"
	"sync"

	"github.com/napalu/comandante/errs"
)

// DefaultCapacity is the queue size used when none is configured
const DefaultCapacity = 10

// Handler is a bounded line queue. Once closed it refuses new input and
// consumers stop receiving lines.
type Handler struct {
	lines chan string
	done  chan struct{}
	once  sync.Once
}

// NewHandler creates a Handler holding up to capacity lines
func NewHandler(capacity int) *Handler {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Handler{
		lines: make(chan string, capacity),
		done:  make(chan struct{}),
	}
}

// Input queues line, blocking while the queue is full
func (h *Handler) Input(ctx context.Context, line string) error {
	if h.Closed() {
		return errs.ErrStopped
	}

	select {
	case h.lines <- line:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-h.done:
		return errs.ErrStopped
	}
}

// TryInput queues line or fails with errs.ErrProduce when the queue is full
func (h *Handler) TryInput(line string) error {
	if h.Closed() {
		return errs.ErrStopped
	}

	select {
	case h.lines <- line:
		return nil
	default:
		return errs.ErrProduce
	}
}

// Consume blocks until a line is available, ctx is done or the handler is closed
func (h *Handler) Consume(ctx context.Context) (string, error) {
	if h.Closed() {
		return "", errs.ErrStopped
	}

	select {
	case line := <-h.lines:
		return line, nil
	case <-ctx.Done():
		return "", ctx.Err()
	case <-h.done:
		return "", errs.ErrStopped
	}
}

// Close stops accepting and handing out lines. It may be called more than once.
func (h *Handler) Close() {
	h.once.Do(func() {
		close(h.done)
	})
}

func (h *Handler) Closed() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// Len returns the number of queued lines
func (h *Handler) Len() int {
	return len(h.lines)
}

func (h *Handler) Cap() int {
	return cap(h.lines)
}
