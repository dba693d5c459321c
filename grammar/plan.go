package grammar

import (
	"github.com/google/uuid"
	"github.com/napalu/comandante/executor"
	"github.com/napalu/comandante/registry"
	"github.com/napalu/comandante/types/queue"
)

// AnalyzedExecutor is one executor selected by analysis together with the
// arguments bound to it. A non-nil PipeSource runs first and its result is
// handed to Executor as piped input.
type AnalyzedExecutor struct {
	ID         uuid.UUID
	Executor   *executor.Executor
	Item       *registry.Item
	Path       string
	Arguments  executor.Arguments
	PipeSource *AnalyzedExecutor
}

// Plan is the ordered list of top-level executors produced for one line. Pipe
// sources are reachable only through the entry consuming them.
type Plan struct {
	ID   uuid.UUID
	Line string
	q    *queue.Q[*AnalyzedExecutor]
}

func newPlan(line string) *Plan {
	return &Plan{
		ID:   uuid.New(),
		Line: line,
		q:    queue.New[*AnalyzedExecutor](),
	}
}

// Entries returns the top-level executors in execution order
func (p *Plan) Entries() []*AnalyzedExecutor {
	return p.q.Slice()
}

func (p *Plan) Len() int {
	return p.q.Len()
}

// ForEach calls fn for each top-level entry until fn returns false
func (p *Plan) ForEach(fn func(entry *AnalyzedExecutor, i int) bool) {
	p.q.ForEach(fn)
}

func (p *Plan) push(entry *AnalyzedExecutor) {
	p.q.Push(entry)
}

// takeLast removes the most recent top-level entry if it is entry
func (p *Plan) takeLast(entry *AnalyzedExecutor) {
	if last, ok := p.q.Peek(); ok && last == entry {
		p.q.Pop()
	}
}
