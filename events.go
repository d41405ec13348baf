package sweep

import (
	"fmt"
	"io"
	"strings"
)

// EventKind is either StartEvent or EndEvent.
type EventKind int

const (
	StartEvent EventKind = iota // segment enters the active set
	EndEvent                    // segment leaves the active set
)

func (k EventKind) String() string {
	switch k {
	case StartEvent:
		return "start"
	case EndEvent:
		return "end"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a scheduled update of the active set at sweep position Key.
type Event[T Number] struct {
	Key    T
	Kind   EventKind
	Handle int
}

func (e Event[T]) String() string {
	return fmt.Sprintf("%v %v %d", e.Key, e.Kind, e.Handle)
}

// Events is a priority queue of sweep events that pops the smallest key first. Events with equal keys pop start events before end events, or the other way around when EndsFirst is set. Remaining ties pop the lowest handle first.
type Events[T Number] struct {
	q         []Event[T]
	EndsFirst bool
}

// NewEvents returns an empty queue with capacity for n events.
func NewEvents[T Number](n int, endsFirst bool) *Events[T] {
	return &Events[T]{
		q:         make([]Event[T], 0, n),
		EndsFirst: endsFirst,
	}
}

func (q *Events[T]) Len() int {
	return len(q.q)
}

func (q *Events[T]) Less(i, j int) bool {
	a, b := q.q[i], q.q[j]
	if a.Key != b.Key {
		return a.Key < b.Key // sort left to right
	} else if a.Kind != b.Kind {
		return (a.Kind == StartEvent) != q.EndsFirst
	}
	return a.Handle < b.Handle
}

func (q *Events[T]) Swap(i, j int) {
	q.q[i], q.q[j] = q.q[j], q.q[i]
}

// Add appends an event without maintaining the heap, call Init afterwards.
func (q *Events[T]) Add(e Event[T]) {
	q.q = append(q.q, e)
}

// Init establishes the heap order after calls to Add.
func (q *Events[T]) Init() {
	n := len(q.q)
	for i := n/2 - 1; 0 <= i; i-- {
		q.down(i, n)
	}
}

// Push adds an event.
func (q *Events[T]) Push(e Event[T]) {
	q.q = append(q.q, e)
	q.up(len(q.q) - 1)
}

// Pop removes and returns the first event. The queue must not be empty.
func (q *Events[T]) Pop() Event[T] {
	n := len(q.q) - 1
	q.Swap(0, n)
	q.down(0, n)

	e := q.q[n]
	q.q = q.q[:n]
	return e
}

// from container/heap
func (q *Events[T]) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !q.Less(j, i) {
			break
		}
		q.Swap(i, j)
		j = i
	}
}

func (q *Events[T]) down(i0, n int) {
	i := i0
	for {
		j1 := 2*i + 1
		if n <= j1 || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && q.Less(j2, j1) {
			j = j2 // = 2*i + 2  // right child
		}
		if !q.Less(j, i) {
			break
		}
		q.Swap(i, j)
		i = j
	}
}

// Print writes the events in the order they will be popped.
func (q *Events[T]) Print(w io.Writer) {
	q2 := &Events[T]{q: make([]Event[T], len(q.q)), EndsFirst: q.EndsFirst}
	copy(q2.q, q.q)
	for k := 0; 0 < q2.Len(); k++ {
		fmt.Fprintln(w, k, q2.Pop())
	}
}

func (q *Events[T]) String() string {
	sb := strings.Builder{}
	q.Print(&sb)
	str := sb.String()
	if 0 < len(str) {
		str = str[:len(str)-1]
	}
	return str
}
