// Package registry owns the command grammar graph: every literal, option and
// argument item together with the executors bound to them.
package registry

import (
	"strings"
	"sync/atomic"

	"github.com/napalu/comandante/argtype"
	"github.com/napalu/comandante/errs"
	"github.com/napalu/comandante/executor"
	"github.com/napalu/comandante/types/orderedmap"
)

// serials hands out item serial ids. They are unique across every registry of the
// process; 0 belongs to Root.
var serials atomic.Int64

type nameKey struct {
	name string
	prev int
}

// Binding is an executor together with the item it is bound to and the command
// path leading to that item
type Binding struct {
	Path     string
	Item     *Item
	Executor *executor.Executor
}

// Registry resolves names to items and items to executors. Registration is a
// single-threaded build phase; once dispatching starts the registry is only read.
type Registry struct {
	items     *orderedmap.OrderedMap[nameKey, *Item]
	aliases   *orderedmap.OrderedMap[nameKey, *Item]
	bySerial  map[int]*Item
	executors *orderedmap.OrderedMap[Key, *executor.Executor]
}

func New() *Registry {
	return &Registry{
		items:     orderedmap.NewOrderedMap[nameKey, *Item](),
		aliases:   orderedmap.NewOrderedMap[nameKey, *Item](),
		bySerial:  map[int]*Item{Root.serial: Root},
		executors: orderedmap.NewOrderedMap[Key, *executor.Executor](),
	}
}

// Resolve looks up name under prev
func (r *Registry) Resolve(name string, prev *Item) (*Item, bool) {
	return r.items.Get(nameKey{name: name, prev: serialOf(prev)})
}

// ResolveAlias looks up an option alias under prevMain, the literal the option belongs to
func (r *Registry) ResolveAlias(alias string, prevMain *Item) (*Item, bool) {
	return r.aliases.Get(nameKey{name: alias, prev: serialOf(prevMain)})
}

// Register adds an item named name after prev. Registering a (name, prev) pair
// twice returns the item created first; a second registration with a different
// kind fails with errs.ErrKindClash.
func (r *Registry) Register(kind Kind, prev *Item, name, subName string) (*Item, error) {
	return r.register(kind, prev, name, subName, nil)
}

// RegisterArgument adds the argument slot following prev. Every predecessor owns at most one slot.
func (r *Registry) RegisterArgument(prev *Item, param string, valueType argtype.Type) (*Item, error) {
	if valueType == nil {
		valueType = argtype.String
	}

	return r.register(Argument, prev, ArgumentName, param, valueType)
}

func (r *Registry) register(kind Kind, prev *Item, name, subName string, valueType argtype.Type) (*Item, error) {
	if name == "" {
		return nil, errs.ErrBuild.Wrap(errs.ErrEmptyName)
	}

	key := nameKey{name: name, prev: serialOf(prev)}
	if existing, ok := r.items.Get(key); ok {
		if existing.kind != kind {
			return nil, errs.ErrBuild.Wrap(errs.ErrKindClash.WithArgs(name, existing.kind.String()))
		}
		return existing, nil
	}

	item := &Item{
		kind:      kind,
		name:      name,
		subName:   subName,
		serial:    int(serials.Add(1)),
		prev:      key.prev,
		valueType: valueType,
	}
	r.items.Set(key, item)
	r.bySerial[item.serial] = item

	if kind == Option && subName != "" {
		r.aliases.SetIfAbsent(nameKey{name: subName, prev: key.prev}, item)
	}

	return item, nil
}

// BindExecutor binds ex to item. The first binding wins: later calls leave the
// existing executor in place and return false.
func (r *Registry) BindExecutor(item *Item, ex *executor.Executor) bool {
	_, inserted := r.executors.SetIfAbsent(item.Key(), ex)

	return inserted
}

// FindExecutor returns the executor bound to item
func (r *Registry) FindExecutor(item *Item) (*executor.Executor, bool) {
	if item == nil {
		return nil, false
	}

	return r.executors.Get(item.Key())
}

// Item returns the item with the given serial id
func (r *Registry) Item(serial int) (*Item, bool) {
	item, ok := r.bySerial[serial]

	return item, ok
}

// Children returns the items registered directly after prev in registration order
func (r *Registry) Children(prev *Item) []*Item {
	serial := serialOf(prev)
	var children []*Item
	r.items.Range(func(_ nameKey, item *Item) bool {
		if item.prev == serial {
			children = append(children, item)
		}
		return true
	})

	return children
}

// Suggest lists the children of prev whose name or alias starts with text,
// falling back to every child when none does
func (r *Registry) Suggest(prev *Item, text string) []string {
	return r.SuggestExcluding(prev, text)
}

// SuggestExcluding is Suggest without the given items
func (r *Registry) SuggestExcluding(prev *Item, text string, exclude ...*Item) []string {
	var children []*Item
	for _, child := range r.Children(prev) {
		if !containsItem(exclude, child) {
			children = append(children, child)
		}
	}
	text = strings.TrimLeft(text, "-")

	var matched []string
	if text != "" {
		for _, child := range children {
			if child.kind == Argument {
				continue
			}
			if strings.HasPrefix(child.name, text) || (child.kind == Option && child.subName != "" && strings.HasPrefix(child.subName, text)) {
				matched = append(matched, child.Describe())
			}
		}
	}
	if len(matched) > 0 {
		return matched
	}

	all := make([]string, 0, len(children))
	for _, child := range children {
		all = append(all, child.Describe())
	}

	return all
}

// Path renders the command path from the root to item, e.g. "app --color <color:string>"
func (r *Registry) Path(item *Item) string {
	var parts []string
	for cur := item; cur != nil && !cur.IsRoot(); {
		parts = append(parts, cur.Describe())
		next, ok := r.bySerial[cur.prev]
		if !ok {
			break
		}
		cur = next
	}

	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}

	return strings.Join(parts, " ")
}

// Executors returns every binding in the order executors were bound
func (r *Registry) Executors() []Binding {
	bindings := make([]Binding, 0, r.executors.Count())
	r.executors.Range(func(key Key, ex *executor.Executor) bool {
		item := r.bySerial[key.Serial]
		bindings = append(bindings, Binding{
			Path:     r.Path(item),
			Item:     item,
			Executor: ex,
		})
		return true
	})

	return bindings
}

// Count returns the number of registered items, the root excluded
func (r *Registry) Count() int {
	return r.items.Count()
}

func containsItem(items []*Item, item *Item) bool {
	for _, it := range items {
		if it == item {
			return true
		}
	}

	return false
}

func serialOf(item *Item) int {
	if item == nil {
		return Root.serial
	}

	return item.serial
}
