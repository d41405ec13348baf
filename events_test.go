package sweep

import (
	"math/rand/v2"
	"testing"

	"github.com/tdewolff/test"
)

func testEvents(endsFirst bool) *Events[int] {
	q := NewEvents[int](5, endsFirst)
	q.Add(Event[int]{1, EndEvent, 0})
	q.Add(Event[int]{1, StartEvent, 2})
	q.Add(Event[int]{0, StartEvent, 0})
	q.Add(Event[int]{2, EndEvent, 1})
	q.Add(Event[int]{1, StartEvent, 1})
	q.Init()
	return q
}

func TestEvents(t *testing.T) {
	q := testEvents(false)
	test.String(t, q.String(), "0 0 start 0\n1 1 start 1\n2 1 start 2\n3 1 end 0\n4 2 end 1")
	test.T(t, q.Len(), 5)
	test.T(t, q.Pop(), Event[int]{0, StartEvent, 0})
	test.T(t, q.Pop(), Event[int]{1, StartEvent, 1})
	q.Push(Event[int]{0, EndEvent, 3})
	test.T(t, q.Pop(), Event[int]{0, EndEvent, 3})
	test.T(t, q.Len(), 3)

	q = testEvents(true)
	test.String(t, q.String(), "0 0 start 0\n1 1 end 0\n2 1 start 1\n3 1 start 2\n4 2 end 1")

	test.String(t, NewEvents[int](0, false).String(), "")
	test.String(t, EndEvent.String(), "end")
	test.String(t, EventKind(2).String(), "EventKind(2)")
}

func TestEventsOrder(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	q := NewEvents[float64](0, false)
	for i := 0; i < 500; i++ {
		e := Event[float64]{float64(r.IntN(50)) / 4.0, EventKind(r.IntN(2)), r.IntN(100)}
		if i%2 == 0 {
			q.Push(e)
		} else {
			q.Add(e)
			q.Init()
		}
	}

	prev := q.Pop()
	for 0 < q.Len() {
		e := q.Pop()
		test.That(t, prev.Key <= e.Key, prev, "before", e)
		if prev.Key == e.Key {
			test.That(t, prev.Kind <= e.Kind, prev, "before", e)
		}
		prev = e
	}
}
