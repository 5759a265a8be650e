package arena

import "fmt"

type Integer interface {
	~int   | ~uint   |
	~uint8 | ~uint16 | ~uint32 | ~uint64 |
	~int8  | ~int16  | ~int32  | ~int64
}

// Arena is a dense in-memory slab of T addressed by integer slots.
// Slots are assigned in push order and stay stable until Pop/Popn.
// Pointers returned by Get/Last are valid only until the next Push.
type Arena[I Integer, T any] struct {
	items []T
}

func New[I Integer, T any](capacity int) *Arena[I, T] {
	return &Arena[I, T]{items: make([]T, 0, capacity)}
}

func (a *Arena[I, T]) Get(index I) *T {
	a.checkBounds(index)
	return &a.items[index]
}

func (a *Arena[I, T]) Last() *T {
	return a.Get(a.Len() - 1)
}

func (a *Arena[I, T]) Set(index I, val *T) {
	a.checkBounds(index)
	a.items[index] = *val
}

func (a *Arena[I, T]) Push(val *T) I {
	a.items = append(a.items, *val)
	return I(len(a.items)) - 1
}

func (a *Arena[I, T]) Popn() {
	a.checkBounds(a.Len() - 1)
	a.items = a.items[:len(a.items)-1]
}

func (a *Arena[I, T]) Pop() T {
	val := *a.Last()
	a.items = a.items[:len(a.items)-1]
	return val
}

func (a *Arena[I, T]) Swap(i, j I) {
	a.checkBounds(i)
	a.checkBounds(j)
	a.items[i], a.items[j] = a.items[j], a.items[i]
}

func (a *Arena[I, T]) Len() I {
	return I(len(a.items))
}

func (a *Arena[I, T]) checkBounds(index I) {
	if index < 0 || index >= a.Len() {
		panic(fmt.Errorf("out of bounds: %d", index))
	}
}
