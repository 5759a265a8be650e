package rbtree

// Key is the ordering contract for tree keys.
// Compare must return -1, 0 or 1 and define a total order.
type Key[K any] interface {
	Compare(k2 K) int
}
