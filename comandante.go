// Copyright 2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package comandante is an interactive command engine. Commands are registered
// as chains of literals, options and typed arguments; input lines are analyzed
// against that grammar and the bound executors are dispatched in order, with `|`
// piping one command's result into the next and `&` chaining independent commands.
package comandante

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/napalu/comandante/dispatch"
	"github.com/napalu/comandante/grammar"
	"github.com/napalu/comandante/i18n"
	"github.com/napalu/comandante/input"
	"github.com/napalu/comandante/registry"
	"golang.org/x/text/language"
)

// NewEngine returns an Engine with the default configuration
func NewEngine() *Engine {
	engine := newEngine()
	// the default configuration only registers built-ins with fixed, valid names
	_ = engine.setup()

	return engine
}

func newEngine() *Engine {
	return &Engine{
		reg:      registry.New(),
		logger:   log.NewWithOptions(io.Discard, log.Options{Prefix: "comandante", Level: log.WarnLevel}),
		output:   os.Stdout,
		capacity: input.DefaultCapacity,
		builtins: true,
		prettyPrint: &PrettyPrintConfig{
			NewCommandPrefix:     " +",
			DefaultPrefix:        " │",
			TerminalPrefix:       " └",
			OuterLevelBindPrefix: "─",
		},
		version: DefaultVersion,
		author:  DefaultAuthor,
		doc:     DefaultDoc,
	}
}

func (e *Engine) setup() error {
	e.dispatcher = dispatch.New(e.reg, dispatch.WithLogger(e.logger))
	e.handler = input.NewHandler(e.capacity)
	e.worker = input.NewWorker(e.handler, func(line string) error {
		_, err := e.Dispatch(line)
		return err
	}, e.logger)

	if e.builtins {
		return e.registerBuiltins()
	}

	return nil
}

// Register starts a new command chain at the root of the grammar
func (e *Engine) Register() *CommandBuilder {
	return newCommandBuilder(e.reg, e.nameConverter)
}

// Registry returns the grammar graph commands are registered in
func (e *Engine) Registry() *registry.Registry {
	return e.reg
}

// Logger returns the logger shared by the dispatcher and the input worker
func (e *Engine) Logger() *log.Logger {
	return e.logger
}

// Analyze builds the execution plan for line without running anything
func (e *Engine) Analyze(line string) (*grammar.Plan, error) {
	return e.dispatcher.Analyze(line)
}

// Dispatch analyzes and runs line synchronously. Every non-nil result value of a
// successful entry is written to the engine's output, one per line. Calls are
// serialized with each other and with the background worker.
func (e *Engine) Dispatch(line string) ([]dispatch.Result, error) {
	e.dispatchMu.Lock()
	defer e.dispatchMu.Unlock()

	results, err := e.dispatcher.Dispatch(line)
	for _, result := range results {
		if result.Err != nil || result.Value == nil {
			continue
		}
		if _, werr := fmt.Fprintln(e.output, result.Value); werr != nil {
			e.logger.Warn("could not write result", "command", result.Entry.Path, "err", werr)
		}
	}

	return results, err
}

// Submit queues line for the background worker, blocking while the queue is full
func (e *Engine) Submit(ctx context.Context, line string) error {
	return e.handler.Input(ctx, line)
}

// TrySubmit queues line or fails with errs.ErrProduce when the queue is full
func (e *Engine) TrySubmit(line string) error {
	return e.handler.TryInput(line)
}

// Start launches the background worker consuming submitted lines
func (e *Engine) Start(ctx context.Context) error {
	return e.worker.Start(ctx)
}

// Stop refuses further input, waits for the line being dispatched and stops the worker.
// A stopped engine cannot be started again.
func (e *Engine) Stop() {
	e.worker.Stop()
}

func (e *Engine) IsRunning() bool {
	return e.worker.IsRunning()
}

// SetLanguage switches the language error and built-in messages are rendered in.
// The language is held by the process-wide i18n.Default() bundle, so the switch
// applies to every engine.
func (e *Engine) SetLanguage(lang language.Tag) error {
	return i18n.Default().SetDefaultLanguage(lang)
}

// Commands returns the registered top-level literal names in registration order
func (e *Engine) Commands() []string {
	children := e.reg.Children(registry.Root)
	names := make([]string, 0, len(children))
	for _, child := range children {
		names = append(names, child.Name())
	}

	return names
}

// Usage returns the invocation count of every bound executor keyed by command path
func (e *Engine) Usage() map[string]int64 {
	bindings := e.reg.Executors()
	usage := make(map[string]int64, len(bindings))
	for _, b := range bindings {
		usage[b.Path] = b.Executor.Count()
	}

	return usage
}
