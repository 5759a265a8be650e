package rbtree

import (
	"errors"
)

var (
	ErrRedViolation    = errors.New("validate: red node with red child")
	ErrBlackViolation  = errors.New("validate: unequal black-heights")
	ErrRootViolation   = errors.New("validate: red root")
	ErrOrderViolation  = errors.New("validate: broken search order")
	ErrParentViolation = errors.New("validate: broken parent link")
)

// Validate checks every red-black invariant plus search order and
// parent-link consistency over the whole tree. It is a correctness
// oracle for tests and debugging, it never mutates.
func (tree *Tree[I, K, V]) Validate() error {
	root := tree.meta.Root
	if root == tree.meta.Null {
		return nil
	}

	if tree.arr.Get(root).isRed() {
		return ErrRootViolation
	}
	if tree.arr.Get(root).parent != tree.meta.Null {
		return ErrParentViolation
	}
	if _, err := tree.blackHeight(root); err != nil {
		return err
	}
	return tree.validateOrder(root)
}

// BlackHeight computes the count of black nodes on any root-to-nil
// path, the nil itself included. Panics if two paths disagree.
func (tree *Tree[I, K, V]) BlackHeight() int {
	h, err := tree.blackHeight(tree.meta.Root)
	if err != nil {
		panic(err)
	}
	return h
}

// Height is the count of nodes on the longest root-to-leaf path.
func (tree *Tree[I, K, V]) Height() int {
	return tree.heightOf(tree.meta.Root)
}

func (tree *Tree[I, K, V]) blackHeight(x I) (int, error) {
	if x == tree.meta.Null {
		return 1, nil
	}

	n := tree.arr.Get(x)
	if n.isRed() && (tree.arr.Get(n.left).isRed() || tree.arr.Get(n.right).isRed()) {
		return 0, ErrRedViolation
	}

	lh, err := tree.blackHeight(n.left)
	if err != nil {
		return 0, err
	}
	rh, err := tree.blackHeight(n.right)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, ErrBlackViolation
	}

	if n.isBlack() {
		lh++
	}
	return lh, nil
}

func (tree *Tree[I, K, V]) validateOrder(x I) error {
	n := tree.arr.Get(x)

	if n.left != tree.meta.Null {
		if tree.arr.Get(n.left).parent != x {
			return ErrParentViolation
		}
		if tree.arr.Get(n.left).key.Compare(n.key) != -1 {
			return ErrOrderViolation
		}
		if err := tree.validateOrder(n.left); err != nil {
			return err
		}
	}

	if n.right != tree.meta.Null {
		if tree.arr.Get(n.right).parent != x {
			return ErrParentViolation
		}
		if tree.arr.Get(n.right).key.Compare(n.key) != 1 {
			return ErrOrderViolation
		}
		if err := tree.validateOrder(n.right); err != nil {
			return err
		}
	}

	return nil
}

func (tree *Tree[I, K, V]) heightOf(x I) int {
	if x == tree.meta.Null {
		return 0
	}
	return 1 + max(tree.heightOf(tree.arr.Get(x).left), tree.heightOf(tree.arr.Get(x).right))
}
