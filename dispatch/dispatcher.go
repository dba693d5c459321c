// Package dispatch analyzes input lines and runs the resulting plans.
package dispatch

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/napalu/comandante/errs"
	"github.com/napalu/comandante/grammar"
	"github.com/napalu/comandante/registry"
)

// Result is the outcome of one top-level plan entry
type Result struct {
	Entry *grammar.AnalyzedExecutor
	Value any
	Err   error
}

// Dispatcher runs plans entry by entry. It does not lock: callers keep at most
// one line in flight, as comandante.Engine does.
type Dispatcher struct {
	reg      *registry.Registry
	analyzer *grammar.Analyzer
	logger   *log.Logger
}

// ConfigureFunc configures a Dispatcher
type ConfigureFunc func(d *Dispatcher)

// WithLogger sets the logger dispatches are reported to
func WithLogger(logger *log.Logger) ConfigureFunc {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

func New(reg *registry.Registry, configs ...ConfigureFunc) *Dispatcher {
	d := &Dispatcher{
		reg:      reg,
		analyzer: grammar.NewAnalyzer(reg),
		logger:   log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, cfg := range configs {
		cfg(d)
	}

	return d
}

// Analyze builds the plan for line without running it
func (d *Dispatcher) Analyze(line string) (*grammar.Plan, error) {
	plan, err := d.analyzer.Analyze(line)
	if err != nil {
		d.logger.Debug("analysis failed", "line", line, "err", err)
		return nil, err
	}

	return plan, nil
}

// Execute runs every top-level entry of plan in order. A failing entry does not
// stop the entries after it; the returned error joins all failures. An entry
// whose pipe source fails is not run.
func (d *Dispatcher) Execute(plan *grammar.Plan) ([]Result, error) {
	if plan == nil || plan.Len() == 0 {
		return nil, errs.ErrNoExecutable
	}

	logger := d.logger.With("plan", plan.ID.String())
	logger.Debug("dispatch", "line", plan.Line, "entries", plan.Len())

	results := make([]Result, 0, plan.Len())
	var failures []error
	plan.ForEach(func(entry *grammar.AnalyzedExecutor, _ int) bool {
		value, err := d.run(entry)
		if err != nil {
			logger.Debug("command failed", "command", entry.Path, "err", err)
			failures = append(failures, err)
		}
		results = append(results, Result{Entry: entry, Value: value, Err: err})
		return true
	})

	return results, errors.Join(failures...)
}

// Dispatch analyzes and executes line. Analysis errors are returned before
// anything runs.
func (d *Dispatcher) Dispatch(line string) ([]Result, error) {
	plan, err := d.Analyze(line)
	if err != nil {
		return nil, err
	}

	return d.Execute(plan)
}

func (d *Dispatcher) run(entry *grammar.AnalyzedExecutor) (any, error) {
	var piped any
	if src := entry.PipeSource; src != nil {
		value, err := d.run(src)
		if err != nil {
			return nil, errs.ErrPipeSourceFailed.WithArgs(src.Path).Wrap(err)
		}
		piped = value
	}

	value, err := entry.Executor.Execute(entry.Arguments, piped)
	if err != nil {
		return nil, &errs.ExecutionError{Command: entry.Path, Err: err}
	}

	return value, nil
}
