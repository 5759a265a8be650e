package util

import (
	"container/heap"
	"iter"
)

type Comparable interface {
	Compare(t Comparable) int
}

type queueItem[T Comparable] struct {
	next func() (T, bool)
	stop func()
	last T
}

type iteratorQueue[T Comparable] []queueItem[T]

func (iq iteratorQueue[T]) Len() int {
	return len(iq)
}

func (iq iteratorQueue[T]) Less(i, j int) bool {
	return iq[i].last.Compare(iq[j].last) == -1
}

func (iq iteratorQueue[T]) Swap(i, j int) {
	iq[i], iq[j] = iq[j], iq[i]
}

func (iq *iteratorQueue[T]) Push(x any) {
	*iq = append(*iq, x.(queueItem[T]))
}

func (iq *iteratorQueue[T]) Pop() any {
	lastIndex := len(*iq) - 1
	top := (*iq)[lastIndex]
	*iq = (*iq)[:lastIndex]
	return top
}

// MultiIterator merges already sorted sequences into one sorted sequence.
// Equal values from different sequences are all yielded.
func MultiIterator[T Comparable](iterators []iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		iq := &iteratorQueue[T]{}
		defer func() {
			for _, itm := range *iq {
				itm.stop()
			}
		}()

		for _, it := range iterators {
			next, stop := iter.Pull(it)
			last, ok := next()
			if !ok {
				stop()
				continue
			}
			*iq = append(*iq, queueItem[T]{next: next, stop: stop, last: last})
		}

		heap.Init(iq)

		for iq.Len() > 0 {
			itm := heap.Pop(iq).(queueItem[T])
			last := itm.last

			next, ok := itm.next()
			if ok {
				itm.last = next
				heap.Push(iq, itm)
			} else {
				itm.stop()
			}

			if !yield(last) {
				return
			}
		}
	}
}
