// Package rbtree implements an ordered in-memory key/value index
// backed by a red-black tree. Nodes live in a dense arena and link to
// each other through integer slots; slot 0 is a shared sentinel that
// stands for every absent child and is always black. Parent links are
// plain slots used for upward navigation during repair, never for
// ownership.
//
// The tree is not safe for concurrent mutation. Callers must
// serialize Put/Delete and may only read concurrently while no
// mutation is in flight.
package rbtree

import (
	"iter"
	"math"

	"ordered_index/pkg/arena"
	"ordered_index/pkg/stack"
)

type Entry[K Key[K], V any] struct {
	Key K
	Val V
}

type Tree[I arena.Integer, K Key[K], V any] struct {
	arr  *arena.Arena[I, node[I, K, V]]
	meta *Metadata[I]
}

func New[I arena.Integer, K Key[K], V any]() *Tree[I, K, V] {
	arr := arena.New[I, node[I, K, V]](1)

	nullNode := &node[I, K, V]{}
	nullNode.setBlack()
	nullPtr := arr.Push(nullNode)

	return &Tree[I, K, V]{
		arr: arr,
		meta: &Metadata[I]{
			Root:  nullPtr,
			Null:  nullPtr,
			Count: 0,
		},
	}
}

func (tree *Tree[I, K, V]) Meta() *Metadata[I] {
	return tree.meta
}

func (tree *Tree[I, K, V]) Count() int {
	return int(tree.meta.Count)
}

// Get returns the value stored under key, if any.
func (tree *Tree[I, K, V]) Get(key K) (V, bool) {
	ptr := tree.search(key)
	if ptr == tree.meta.Null {
		var zero V
		return zero, false
	}
	return tree.arr.Get(ptr).val, true
}

func (tree *Tree[I, K, V]) Min() (K, bool) {
	if tree.meta.Root == tree.meta.Null {
		var zero K
		return zero, false
	}
	return tree.arr.Get(tree.edge(tree.meta.Root, Left)).key, true
}

func (tree *Tree[I, K, V]) Max() (K, bool) {
	if tree.meta.Root == tree.meta.Null {
		var zero K
		return zero, false
	}
	return tree.arr.Get(tree.edge(tree.meta.Root, Right)).key, true
}

// Scan walks entries in ascending key order, starting at from when
// given (first key >= from). scanFn stops the walk by returning true.
func (tree *Tree[I, K, V]) Scan(from *K, scanFn func(key K, val V) (stop bool, err error)) error {
	s := stack.New[I](tree.height())

	curr := tree.meta.Root
	for curr != tree.meta.Null {
		if from != nil && (*from).Compare(tree.arr.Get(curr).key) == 1 {
			curr = tree.arr.Get(curr).right
			continue
		}
		s.Push(curr)
		curr = tree.arr.Get(curr).left
	}

	for !s.Empty() {
		curr = s.Pop()
		n := tree.arr.Get(curr)
		stop, err := scanFn(n.key, n.val)
		if stop || err != nil {
			return err
		}

		next := tree.arr.Get(curr).right
		for next != tree.meta.Null {
			s.Push(next)
			next = tree.arr.Get(next).left
		}
	}

	return nil
}

// Iterator yields all entries in ascending key order.
func (tree *Tree[I, K, V]) Iterator() iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		_ = tree.Scan(nil, func(key K, val V) (bool, error) {
			return !yield(Entry[K, V]{Key: key, Val: val}), nil
		})
	}
}

func (tree *Tree[I, K, V]) search(key K) I {
	ptr := tree.meta.Root
	for ptr != tree.meta.Null {
		switch key.Compare(tree.arr.Get(ptr).key) {
		case -1:
			ptr = tree.arr.Get(ptr).left
		case 1:
			ptr = tree.arr.Get(ptr).right
		default:
			return ptr
		}
	}
	return tree.meta.Null
}

// edge walks from a node to its extreme descendant on side d.
func (tree *Tree[I, K, V]) edge(from I, d Dir) I {
	for tree.arr.Get(from).child(d) != tree.meta.Null {
		from = tree.arr.Get(from).child(d)
	}
	return from
}

// height is an upper bound on the path length from root to leaf,
// used to size traversal stacks.
func (tree *Tree[I, K, V]) height() int {
	if tree.meta.Count == 0 {
		return 1
	}
	return 2*int(math.Ceil(math.Log2(float64(tree.meta.Count+1)))) + 1
}
