package rbtree

import (
	"errors"
)

// ErrRotateMissingChild reports a rotation around a node that lacks
// the child the rotation would promote. Callers must rule this out;
// reaching it means the repair logic itself is broken.
var ErrRotateMissingChild = errors.New("rotate: no child on the rotation side")

// rotate performs a single rotation of x in direction d: the child of
// x opposite to d is promoted into x's place and x becomes that
// child's d-side child. Search order is preserved, no colors change.
func (tree *Tree[I, K, V]) rotate(x I, d Dir) {
	y := tree.arr.Get(x).child(d.Other())
	if y == tree.meta.Null {
		panic(ErrRotateMissingChild)
	}

	// y's subtree on side d switches over to x
	inner := tree.arr.Get(y).child(d)
	tree.arr.Get(x).setChild(d.Other(), inner)
	if inner != tree.meta.Null {
		tree.arr.Get(inner).parent = x
	}

	p := tree.arr.Get(x).parent
	tree.arr.Get(y).parent = p
	if p == tree.meta.Null { // x is root
		tree.meta.Root = y
	} else if tree.arr.Get(p).left == x { // x is left child
		tree.arr.Get(p).left = y
	} else { // x is right child
		tree.arr.Get(p).right = y
	}

	tree.arr.Get(y).setChild(d, x)
	tree.arr.Get(x).parent = y
}

// dirOf reports which child slot x occupies in its parent.
func (tree *Tree[I, K, V]) dirOf(x I) Dir {
	if tree.arr.Get(tree.arr.Get(x).parent).left == x {
		return Left
	}
	return Right
}
