package queue

// Q is a generic ordered sequence which supports stack operations at its tail
// and front-to-back traversal. Execution plans keep their top-level entries in a Q
// so that a pipe source can be taken back off the tail once its consumer is known.
type Q[T any] struct {
	items []T
}

// New creates a new Q
func New[T any]() *Q[T] {
	return &Q[T]{}
}

// Push adds an item to the tail
func (q *Q[T]) Push(item T) {
	q.items = append(q.items, item)
}

// Pop removes and returns the tail item
func (q *Q[T]) Pop() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	item := q.items[len(q.items)-1]
	q.items = q.items[:len(q.items)-1]

	return item, true
}

// Peek returns the tail item without removing it
func (q *Q[T]) Peek() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}

	return q.items[len(q.items)-1], true
}

// Len returns the number of items in the Q
func (q *Q[T]) Len() int {
	return len(q.items)
}

// At returns the item at a specific index
func (q *Q[T]) At(index int) (T, bool) {
	if index < 0 || index >= len(q.items) {
		var zero T
		return zero, false
	}

	return q.items[index], true
}

// IterationCallback receives each item with its index; returning false stops the iteration
type IterationCallback[T any] func(item T, index int) (keepGoing bool)

// ForEach iterates over the items from front to back
func (q *Q[T]) ForEach(callback IterationCallback[T]) {
	for i := 0; i < len(q.items); i++ {
		if !callback(q.items[i], i) {
			break
		}
	}
}

// Slice returns a copy of the items from front to back
func (q *Q[T]) Slice() []T {
	out := make([]T, len(q.items))
	copy(out, q.items)

	return out
}

// Clear removes all items
func (q *Q[T]) Clear() {
	q.items = q.items[:0]
}
