package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/napalu/comandante/argtype"
	"github.com/napalu/comandante/definition"
	"github.com/napalu/comandante/executor"
)

func init() {
	argtype.Register(argtype.ListOf(argtype.Int, nil))
}

var now = time.Now

func handlers() definition.Handlers {
	return definition.Handlers{
		"echo":  echo,
		"upper": upper,
		"grep":  grep,
		"sum":   sum,
		"time":  timeOf,
	}
}

func echo(args executor.Arguments, _ any) (any, error) {
	return strings.Join(args.Values(), " "), nil
}

// upper works on the piped value when there is one, else on its own arguments
func upper(args executor.Arguments, piped any) (any, error) {
	if piped != nil {
		return strings.ToUpper(fmt.Sprint(piped)), nil
	}

	return strings.ToUpper(strings.Join(args.Values(), " ")), nil
}

func grep(args executor.Arguments, piped any) (any, error) {
	pattern, _ := args.Lookup("pattern")
	if piped == nil {
		return nil, nil
	}
	text := fmt.Sprint(piped)
	if !strings.Contains(text, pattern) {
		return nil, nil
	}

	return text, nil
}

func sum(args executor.Arguments, _ any) (any, error) {
	v, err := args.Parse("numbers")
	if err != nil {
		return nil, err
	}

	total := 0
	for _, n := range v.([]any) {
		total += n.(int)
	}

	return total, nil
}

func timeOf(args executor.Arguments, _ any) (any, error) {
	if _, ok := args.Lookup("when"); ok {
		v, err := args.Parse("when")
		if err != nil {
			return nil, err
		}
		return v.(time.Time).Format(time.RFC3339), nil
	}

	v, err := args.Parse("offset")
	if err != nil {
		return nil, err
	}

	return now().Add(v.(time.Duration)).Format(time.RFC3339), nil
}
