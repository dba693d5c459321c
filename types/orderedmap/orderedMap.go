// Package orderedmap provides an append-only map which remembers insertion order.
// The registry relies on it to list grammar items in the order they were registered.
package orderedmap

// OrderedMap stores key-value pairs and iterates them in insertion order.
// Overwriting a key keeps its original position.
type OrderedMap[K comparable, V any] struct {
	index map[K]int
	keys  []K
	vals  []V
}

// NewOrderedMap creates a new OrderedMap of type K
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		index: map[K]int{},
	}
}

// Set stores a key-value pair. An existing key is updated in place.
func (o *OrderedMap[K, V]) Set(key K, val V) {
	if i, exists := o.index[key]; exists {
		o.vals[i] = val
		return
	}

	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, val)
}

// SetIfAbsent stores the pair only when key is not present yet and returns the value
// held for key afterwards together with whether it was inserted.
func (o *OrderedMap[K, V]) SetIfAbsent(key K, val V) (V, bool) {
	if i, exists := o.index[key]; exists {
		return o.vals[i], false
	}
	o.Set(key, val)

	return val, true
}

// Get returns the value associated with the key.
// If the key doesn't exist, the second return value will be false.
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	i, exists := o.index[key]
	if !exists {
		return *new(V), false
	}

	return o.vals[i], true
}

// Has reports whether key is present
func (o *OrderedMap[K, V]) Has(key K) bool {
	_, exists := o.index[key]
	return exists
}

// Count returns the count of keys in OrderedMap
func (o *OrderedMap[K, V]) Count() int {
	return len(o.keys)
}

// Keys returns a copy of the keys in insertion order
func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, len(o.keys))
	copy(keys, o.keys)

	return keys
}

// Values returns a copy of the values in insertion order
func (o *OrderedMap[K, V]) Values() []V {
	vals := make([]V, len(o.vals))
	copy(vals, o.vals)

	return vals
}

// Range calls fn for each pair in insertion order until fn returns false
func (o *OrderedMap[K, V]) Range(fn func(key K, val V) bool) {
	for i := range o.keys {
		if !fn(o.keys[i], o.vals[i]) {
			return
		}
	}
}
