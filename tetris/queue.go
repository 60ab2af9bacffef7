package tetris

import (
	"iter"
	"slices"
)

// Source supplies random piece kinds. *rand.Rand from math/rand/v2
// satisfies it.
type Source interface {
	IntN(n int) int
}

// RandomKind draws a kind from src.
func RandomKind(src Source) Kind {
	return Kind(src.IntN(NumKinds))
}

// Queue is the fixed-length preview of upcoming kinds.
type Queue struct {
	kinds []Kind
	src   Source
}

// NewQueue fills a queue of length n from src.
func NewQueue(n int, src Source) *Queue {
	q := &Queue{
		kinds: make([]Kind, n),
		src:   src,
	}
	for i := range q.kinds {
		q.kinds[i] = RandomKind(src)
	}
	return q
}

// Next pops the front kind and appends a fresh one at the back.
func (q *Queue) Next() Kind {
	front := q.kinds[0]
	copy(q.kinds, q.kinds[1:])
	q.kinds[len(q.kinds)-1] = RandomKind(q.src)
	return front
}

func (q *Queue) Len() int { return len(q.kinds) }

// Peek returns a copy of the queue, front first.
func (q *Queue) Peek() []Kind {
	return slices.Clone(q.kinds)
}

// All iterates the queue front first.
func (q *Queue) All() iter.Seq2[int, Kind] {
	return slices.All(q.kinds)
}
