package rbtree

// Put inserts key with val. If the key is already present its value
// is replaced in place, the previous value is returned and the tree
// structure stays untouched.
func (tree *Tree[I, K, V]) Put(key K, val V) (old V, replaced bool) {
	y := tree.meta.Null
	curr := tree.meta.Root

	for curr != tree.meta.Null {
		y = curr
		switch key.Compare(tree.arr.Get(curr).key) {
		case -1:
			curr = tree.arr.Get(curr).left
		case 1:
			curr = tree.arr.Get(curr).right
		default:
			n := tree.arr.Get(curr)
			old, n.val = n.val, val
			return old, true
		}
	}

	zNode := &node[I, K, V]{
		left:   tree.meta.Null,
		right:  tree.meta.Null,
		parent: y,
		key:    key,
		val:    val,
	}
	zNode.setRed()

	// the node is allocated before any link is touched, so a failed
	// allocation leaves no partial insert behind
	z := tree.arr.Push(zNode)
	if y == tree.meta.Null {
		tree.meta.Root = z
	} else if key.Compare(tree.arr.Get(y).key) == -1 {
		tree.arr.Get(y).left = z
	} else {
		tree.arr.Get(y).right = z
	}

	tree.fixInsert(z)

	tree.meta.Count++
	return old, false
}

// fixInsert restores the red-black invariants after attaching the red
// leaf z. Each red-uncle step ascends two levels; the terminal step
// does at most two rotations.
func (tree *Tree[I, K, V]) fixInsert(z I) {
	for tree.arr.Get(tree.arr.Get(z).parent).isRed() {
		p := tree.arr.Get(z).parent
		g := tree.arr.Get(p).parent
		d := tree.dirOf(p)
		u := tree.arr.Get(g).child(d.Other()) // z uncle

		// red uncle: recolor and ascend
		if tree.arr.Get(u).isRed() {
			tree.arr.Get(p).setBlack()
			tree.arr.Get(u).setBlack()
			tree.arr.Get(g).setRed()
			z = g
			continue
		}

		// z and p on opposite sides: rotate them onto the same side
		if tree.dirOf(z) != d {
			z = p
			tree.rotate(z, d)
			p = tree.arr.Get(z).parent
		}

		tree.arr.Get(p).setBlack()
		tree.arr.Get(g).setRed()
		tree.rotate(g, d.Other())
	}

	tree.arr.Get(tree.meta.Root).setBlack()
}
