// Package definition loads command chains from YAML documents and registers
// them with an engine.
//
//	commands:
//	  - chain:
//	      - literal: app
//	      - option: color
//	        alias: c
//	      - argument: color
//	        type: string
//	    handler: echo
//	    usage: set app color
package definition

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/napalu/comandante"
	"github.com/napalu/comandante/argtype"
	"github.com/napalu/comandante/errs"
	"github.com/napalu/comandante/executor"
	"gopkg.in/yaml.v3"
)

// File is a definition document
type File struct {
	Commands []Command `yaml:"commands" validate:"required,min=1,dive"`
}

// Command is one chain of items ending in the handler bound to its last item
type Command struct {
	Chain   []Step `yaml:"chain" validate:"required,min=1,dive"`
	Handler string `yaml:"handler" validate:"required"`
	Usage   string `yaml:"usage"`
}

// Step is one item of a chain. Exactly one of Literal, Option and Argument is set.
type Step struct {
	Literal  string `yaml:"literal" validate:"required_without_all=Option Argument,excluded_with=Option Argument"`
	Option   string `yaml:"option" validate:"required_without_all=Literal Argument,excluded_with=Literal Argument"`
	Alias    string `yaml:"alias" validate:"omitempty,len=1,excluded_without=Option"`
	Argument string `yaml:"argument" validate:"required_without_all=Literal Option,excluded_with=Literal Option"`
	Type     string `yaml:"type" validate:"excluded_without=Argument"`
}

// Handlers maps the handler names used in a definition to their implementation
type Handlers map[string]executor.Handler

// Registrar starts command chains; *comandante.Engine implements it
type Registrar interface {
	Register() *comandante.CommandBuilder
}

// Load decodes and validates a definition document. Unknown fields are rejected.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errs.ErrInvalidDefinition.Wrap(errors.New("empty document"))
		}
		return nil, errs.ErrInvalidDefinition.Wrap(err)
	}
	if err := f.Validate(); err != nil {
		return nil, errs.ErrInvalidDefinition.Wrap(err)
	}

	return &f, nil
}

// LoadFile loads the definition document at path
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	return Load(fh)
}

// Validate checks the document for structural errors. Field names in errors are
// the YAML keys.
func (f *File) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
	})

	return validate.Struct(f)
}

// Apply registers every command of f. Handler and argument type names are all
// resolved before anything is registered.
func (f *File) Apply(r Registrar, handlers Handlers) error {
	resolved := make([]executor.Handler, len(f.Commands))
	types := make([][]argtype.Type, len(f.Commands))
	for i, cmd := range f.Commands {
		h, ok := handlers[cmd.Handler]
		if !ok {
			return fmt.Errorf("commands[%d]: %w", i, errs.ErrUnknownHandler.WithArgs(cmd.Handler))
		}
		resolved[i] = h

		types[i] = make([]argtype.Type, len(cmd.Chain))
		for j, step := range cmd.Chain {
			if step.Argument == "" {
				continue
			}
			t, err := argtype.Lookup(step.Type)
			if err != nil {
				return fmt.Errorf("commands[%d].chain[%d]: %w", i, j, err)
			}
			types[i][j] = t
		}
	}

	for i, cmd := range f.Commands {
		b := r.Register()
		for j, step := range cmd.Chain {
			switch {
			case step.Literal != "":
				b.Literal(step.Literal)
			case step.Option != "":
				b.Option(step.Option, step.Alias)
			default:
				b.Argument(step.Argument, types[i][j])
			}
		}
		if err := b.Executor(resolved[i], cmd.Usage); err != nil {
			return fmt.Errorf("commands[%d]: %w", i, err)
		}
	}

	return nil
}
