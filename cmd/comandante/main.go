package main

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/napalu/comandante"
	"github.com/napalu/comandante/definition"
	"github.com/napalu/comandante/i18n"
	"github.com/napalu/goopt"
	"golang.org/x/term"
	"golang.org/x/text/language"
)

//go:embed demo.yaml
var demoDefinitions []byte

type Config struct {
	Definitions string `goopt:"name:definitions;short:f;desc:YAML command definitions to load instead of the demo commands"`
	Exec        string `goopt:"name:exec;short:e;desc:Dispatch a single line and exit"`
	LogLevel    string `goopt:"name:log-level;short:l;desc:Log level (debug, info, warn, error);default:warn"`
	Lang        string `goopt:"name:lang;desc:Language of messages (en, zh);default:en"`
	Help        bool   `goopt:"name:help;short:h;desc:Show help"`
}

var errorStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("196"))

func main() {
	cfg := &Config{}
	parser, err := goopt.NewParserFromStruct(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !parser.Parse(os.Args) {
		for _, err := range parser.GetErrors() {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	if cfg.Help {
		parser.PrintUsageWithGroups(os.Stdout)
		os.Exit(0)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}
}

func run(cfg *Config) error {
	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}

	if cfg.Exec != "" {
		_, err := engine.Dispatch(cfg.Exec)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return interactive(ctx, engine)
	}

	return batch(engine, os.Stdin)
}

func newEngine(cfg *Config) (*comandante.Engine, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "comandante",
		Level:  level,
	})

	lang, err := language.Parse(cfg.Lang)
	if err != nil {
		return nil, err
	}

	engine, err := comandante.NewEngineWith(
		comandante.WithLogger(logger),
		comandante.WithOutput(os.Stdout),
		comandante.WithLanguage(i18n.Default().Match(lang)))
	if err != nil {
		return nil, err
	}

	var defs *definition.File
	if cfg.Definitions != "" {
		defs, err = definition.LoadFile(cfg.Definitions)
	} else {
		defs, err = definition.Load(bytes.NewReader(demoDefinitions))
	}
	if err != nil {
		return nil, err
	}
	if err := defs.Apply(engine, handlers()); err != nil {
		return nil, err
	}
	logger.Debug("definitions loaded", "commands", len(defs.Commands), "items", engine.Registry().Count())

	return engine, nil
}
