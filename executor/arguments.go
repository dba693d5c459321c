package executor

import (
	"github.com/napalu/comandante/argtype"
	"github.com/napalu/comandante/errs"
)

// Value is one argument bound during analysis, together with the slot it was bound to
type Value struct {
	Param string
	Type  argtype.Type
	Text  string
}

// Arguments holds the values bound to an executor in input order
type Arguments struct {
	values []Value
}

func NewArguments(values ...Value) Arguments {
	return Arguments{values: values}
}

// Append returns a copy of a with v added at the end
func (a Arguments) Append(v Value) Arguments {
	values := make([]Value, len(a.values), len(a.values)+1)
	copy(values, a.values)

	return Arguments{values: append(values, v)}
}

func (a Arguments) Len() int {
	return len(a.values)
}

// Values returns the raw text of every bound value, or nil when nothing is bound
func (a Arguments) Values() []string {
	if len(a.values) == 0 {
		return nil
	}
	texts := make([]string, len(a.values))
	for i, v := range a.values {
		texts[i] = v.Text
	}

	return texts
}

// Value returns the i-th bound value
func (a Arguments) Value(i int) (Value, bool) {
	if i < 0 || i >= len(a.values) {
		return Value{}, false
	}

	return a.values[i], true
}

// Lookup returns the text of the first value bound to param
func (a Arguments) Lookup(param string) (string, bool) {
	for _, v := range a.values {
		if v.Param == param {
			return v.Text, true
		}
	}

	return "", false
}

// All returns the text of every value bound to param
func (a Arguments) All(param string) []string {
	var texts []string
	for _, v := range a.values {
		if v.Param == param {
			texts = append(texts, v.Text)
		}
	}

	return texts
}

// Parse converts the first value bound to param with the type of its slot
func (a Arguments) Parse(param string) (any, error) {
	for _, v := range a.values {
		if v.Param != param {
			continue
		}
		t := v.Type
		if t == nil {
			t = argtype.String
		}
		return t.Parse(v.Text)
	}

	return nil, errs.ErrArgumentNotBound.WithArgs(param)
}
