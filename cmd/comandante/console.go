package main

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/charmbracelet/lipgloss"
	"github.com/napalu/comandante"
	"github.com/napalu/comandante/completion"
)

var promptStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("39"))

func isExit(line string) bool {
	return line == "exit" || line == "quit"
}

// interactive reads lines with completion and queues them for the engine's worker
func interactive(ctx context.Context, engine *comandante.Engine) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          promptStyle.Render("comandante") + "> ",
		AutoComplete:    completion.New(engine.Registry()),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	if err := engine.Start(ctx); err != nil {
		return err
	}
	defer engine.Stop()

	for {
		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if line == "" {
				return nil
			}
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isExit(line) {
			return nil
		}
		if err := engine.Submit(ctx, line); err != nil {
			return err
		}
	}
}

// batch dispatches lines one at a time in order. Failures are logged and do not
// stop the remaining lines.
func batch(engine *comandante.Engine, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if isExit(line) {
			break
		}
		if _, err := engine.Dispatch(line); err != nil {
			engine.Logger().Error("dispatch failed", "line", line, "err", err)
		}
	}

	return scanner.Err()
}
