// Package argtype provides the value parsers argument slots are registered with.
package argtype

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/araddon/dateparse"
	"github.com/napalu/comandante/errs"
)

// Type converts the raw text bound to an argument slot into a typed value
type Type interface {
	Name() string
	Parse(value string) (any, error)
}

// ParseFunc converts raw argument text
type ParseFunc func(value string) (any, error)

type strategy struct {
	name  string
	parse ParseFunc
}

func (s *strategy) Name() string {
	return s.name
}

func (s *strategy) Parse(value string) (any, error) {
	v, err := s.parse(value)
	if err != nil {
		return nil, errs.ErrParseValue.WithArgs(s.name, value).Wrap(err)
	}

	return v, nil
}

func (s *strategy) String() string {
	return s.name
}

// New creates a named Type from fn. Errors returned by fn are wrapped in errs.ErrParseValue.
func New(name string, fn ParseFunc) Type {
	return &strategy{name: name, parse: fn}
}

// ListDelimiterFunc reports whether r separates list elements
type ListDelimiterFunc func(r rune) bool

// DefaultListDelimiter splits on ',', '|' and ' '
func DefaultListDelimiter(r rune) bool {
	return r == ',' || r == '|' || r == ' '
}

// ListOf returns a list Type which splits on delimiter and parses each element with elem
func ListOf(elem Type, delimiter ListDelimiterFunc) Type {
	if delimiter == nil {
		delimiter = DefaultListDelimiter
	}

	return New("[]"+elem.Name(), func(value string) (any, error) {
		fields := strings.FieldsFunc(value, delimiter)
		values := make([]any, 0, len(fields))
		for _, f := range fields {
			v, err := elem.Parse(f)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}

		return values, nil
	})
}

var (
	String = New("string", func(value string) (any, error) {
		return value, nil
	})
	Int = New("int", func(value string) (any, error) {
		i, err := strconv.ParseInt(value, 0, strconv.IntSize)
		if err != nil {
			return nil, err
		}
		return int(i), nil
	})
	Bool = New("bool", func(value string) (any, error) {
		return strconv.ParseBool(value)
	})
	Float = New("float", func(value string) (any, error) {
		return strconv.ParseFloat(value, 64)
	})
	Time = New("time", func(value string) (any, error) {
		return dateparse.ParseAny(value)
	})
	Duration = New("duration", func(value string) (any, error) {
		return time.ParseDuration(value)
	})
	List = New("list", func(value string) (any, error) {
		return strings.FieldsFunc(value, DefaultListDelimiter), nil
	})
)

var (
	known = map[string]Type{}
	mu    sync.RWMutex
)

func init() {
	for _, t := range []Type{String, Int, Bool, Float, Time, Duration, List} {
		known[t.Name()] = t
	}
}

// Register makes t available to Lookup under its name, replacing any Type of the same name
func Register(t Type) {
	mu.Lock()
	defer mu.Unlock()
	known[t.Name()] = t
}

// Lookup finds a Type by name. An empty name resolves to String.
func Lookup(name string) (Type, error) {
	if name == "" {
		return String, nil
	}

	mu.RLock()
	defer mu.RUnlock()
	if t, ok := known[strings.ToLower(name)]; ok {
		return t, nil
	}

	return nil, errs.ErrUnknownType.WithArgs(name)
}

// Names returns the names of all known types in sorted order
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(known))
	for name := range known {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
