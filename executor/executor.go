// Package executor wraps the handlers bound to command items.
package executor

import (
	"sync/atomic"

	"github.com/napalu/comandante/errs"
)

// Handler receives the arguments bound to its item and the result of the pipe
// source, if any. The returned value is passed on to a pipe target.
type Handler func(args Arguments, piped any) (any, error)

// Executor is a handler with usage text and an invocation counter
type Executor struct {
	handler Handler
	usage   string
	count   atomic.Int64
}

// New creates an Executor. A nil handler does nothing and returns the piped value unchanged.
func New(handler Handler, usage string) *Executor {
	if handler == nil {
		handler = func(_ Arguments, piped any) (any, error) {
			return piped, nil
		}
	}

	return &Executor{handler: handler, usage: usage}
}

// Execute runs the handler. The invocation count is incremented only when the
// handler returns without error. A panicking handler is reported as errs.ErrHandlerPanic.
func (e *Executor) Execute(args Arguments, piped any) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = errs.ErrHandlerPanic.WithArgs(r)
		}
	}()

	result, err = e.handler(args, piped)
	if err != nil {
		return nil, err
	}
	e.count.Add(1)

	return result, nil
}

func (e *Executor) Usage() string {
	return e.usage
}

// Count returns how often the executor completed successfully
func (e *Executor) Count() int64 {
	return e.count.Load()
}
