package rbtree

// Delete removes key and returns the value it held. Absent keys are
// no-ops reported through the bool.
//
// Two-child nodes substitute the minimum of the right subtree (the
// in-order successor); substituting the left subtree's maximum would
// be just as valid, this implementation sticks with the successor
// throughout.
func (tree *Tree[I, K, V]) Delete(key K) (removed V, ok bool) {
	z := tree.search(key)
	if z == tree.meta.Null {
		return removed, false
	}
	removed = tree.arr.Get(z).val

	if tree.arr.Get(z).left != tree.meta.Null && tree.arr.Get(z).right != tree.meta.Null {
		// move the successor's entry into z and delete the successor
		// node instead; it has no left child by construction
		y := tree.edge(tree.arr.Get(z).right, Left)
		zNode, yNode := tree.arr.Get(z), tree.arr.Get(y)
		zNode.key, zNode.val = yNode.key, yNode.val
		z = y
	}

	switch {
	case tree.arr.Get(z).left != tree.meta.Null || tree.arr.Get(z).right != tree.meta.Null:
		// a single child is always a red child of a black node:
		// splice it in and repaint it, black-heights are unchanged
		c := tree.arr.Get(z).left
		if c == tree.meta.Null {
			c = tree.arr.Get(z).right
		}
		tree.replaceChild(z, c)
		tree.arr.Get(c).setBlack()

	case tree.arr.Get(z).isRed() || z == tree.meta.Root:
		tree.replaceChild(z, tree.meta.Null)

	default:
		// removing a black leaf leaves its path one black unit
		// short; repair first, then unlink
		tree.fixDelete(z)
		tree.replaceChild(z, tree.meta.Null)
	}

	tree.free(z)
	tree.meta.Count--
	return removed, true
}

// fixDelete rebalances around n, a black leaf about to be removed.
// Naming follows the usual scheme: p parent, s sibling, c near
// nephew, d far nephew (relative to n's side).
func (tree *Tree[I, K, V]) fixDelete(n I) {
	for tree.arr.Get(n).parent != tree.meta.Null {
		p := tree.arr.Get(n).parent
		dir := tree.dirOf(n)
		s := tree.arr.Get(p).child(dir.Other())
		c := tree.arr.Get(s).child(dir)
		d := tree.arr.Get(s).child(dir.Other())

		if tree.arr.Get(s).isRed() { // case 1
			// red sibling: rotate it above p; the near nephew is a
			// real black node and becomes the new sibling
			tree.rotate(p, dir)
			tree.arr.Get(p).setRed()
			tree.arr.Get(s).setBlack()

			s = c
			c = tree.arr.Get(s).child(dir)
			d = tree.arr.Get(s).child(dir.Other())
		}

		if tree.arr.Get(c).isRed() { // case 2
			// red near nephew: rotate the sibling away from n so the
			// red ends up as the far nephew
			tree.rotate(s, dir.Other())
			tree.arr.Get(s).setRed()
			tree.arr.Get(c).setBlack()

			d = s
			s = c
		}

		if tree.arr.Get(d).isRed() { // case 3
			// red far nephew: one rotation of p pays the missing
			// black unit back on n's side
			tree.rotate(p, dir)
			tree.arr.Get(s).setFlag(FT_COLOR, tree.arr.Get(p).getFlag(FT_COLOR))
			tree.arr.Get(p).setBlack()
			tree.arr.Get(d).setBlack()
			return
		}

		if tree.arr.Get(p).isRed() { // case 4
			tree.arr.Get(p).setBlack()
			tree.arr.Get(s).setRed()
			return
		}

		// case 5: p, s and both nephews black; push the deficiency
		// one level up
		tree.arr.Get(s).setRed()
		n = p
	}
}

// replaceChild points u's parent slot (or the root) at v and hooks
// v's parent link up, detaching u from the tree.
func (tree *Tree[I, K, V]) replaceChild(u, v I) {
	p := tree.arr.Get(u).parent
	if p == tree.meta.Null { // u is root
		tree.meta.Root = v
	} else if tree.arr.Get(p).left == u { // u is left child
		tree.arr.Get(p).left = v
	} else { // u is right child
		tree.arr.Get(p).right = v
	}

	if v != tree.meta.Null {
		tree.arr.Get(v).parent = p
	}
}

// free returns a detached node's slot to the arena, relocating the
// last node into the hole so the arena stays dense.
func (tree *Tree[I, K, V]) free(ptr I) {
	lastPtr := tree.arr.Len() - 1
	if ptr == lastPtr {
		tree.arr.Popn()
		return
	}

	last := tree.arr.Pop()
	tree.arr.Set(ptr, &last)

	if last.parent != tree.meta.Null {
		if tree.arr.Get(last.parent).left == lastPtr {
			tree.arr.Get(last.parent).left = ptr
		} else {
			tree.arr.Get(last.parent).right = ptr
		}
	}

	if last.left != tree.meta.Null {
		tree.arr.Get(last.left).parent = ptr
	}
	if last.right != tree.meta.Null {
		tree.arr.Get(last.right).parent = ptr
	}

	if lastPtr == tree.meta.Root {
		tree.meta.Root = ptr
	}
}
