package registry

import (
	"fmt"

	"github.com/napalu/comandante/argtype"
)

// Kind classifies an Item
type Kind int

const (
	Literal Kind = iota + 1
	Option
	Argument
)

// ArgumentName is the name every Argument item is registered under. The
// parameter name lives in SubName.
const ArgumentName = "#"

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Option:
		return "option"
	case Argument:
		return "argument"
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// Key identifies an Item. Names are not part of the identity: the same word
// registered after two different predecessors yields two distinct items.
type Key struct {
	Kind   Kind
	Prev   int
	Serial int
}

// Item is one node of the command grammar graph. Items are immutable once registered.
type Item struct {
	kind      Kind
	name      string
	subName   string
	serial    int
	prev      int
	valueType argtype.Type
}

// Root is the synthetic predecessor of every top-level literal
var Root = &Item{kind: Literal, serial: 0, prev: -1}

func (i *Item) Kind() Kind {
	return i.kind
}

func (i *Item) Name() string {
	return i.name
}

// SubName is the alias of an option or the parameter name of an argument
func (i *Item) SubName() string {
	return i.subName
}

func (i *Item) SerialID() int {
	return i.serial
}

func (i *Item) PrevSerialID() int {
	return i.prev
}

// ValueType is the parser of an argument item. It is nil for other kinds.
func (i *Item) ValueType() argtype.Type {
	return i.valueType
}

func (i *Item) Key() Key {
	return Key{Kind: i.kind, Prev: i.prev, Serial: i.serial}
}

func (i *Item) IsRoot() bool {
	return i.serial == Root.serial
}

// Describe renders the item the way it is written on a command line:
// "name" for literals, "--name/-a" for options and "<param:type>" for arguments.
func (i *Item) Describe() string {
	switch i.kind {
	case Option:
		if i.subName != "" {
			return "--" + i.name + "/-" + i.subName
		}
		return "--" + i.name
	case Argument:
		typeName := argtype.String.Name()
		if i.valueType != nil {
			typeName = i.valueType.Name()
		}
		return "<" + i.subName + ":" + typeName + ">"
	}

	return i.name
}

func (i *Item) String() string {
	if i.IsRoot() {
		return "ROOT"
	}

	return i.Describe()
}
