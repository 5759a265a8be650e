package rbtree

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	redPaint   = color.New(color.FgRed)
	blackPaint = color.New(color.FgHiBlack)
)

// Print dumps the tree level by level, node colors rendered as
// terminal colors. Debug helper only.
func (tree *Tree[I, K, V]) Print(w io.Writer) {
	if tree.meta.Root == tree.meta.Null {
		fmt.Fprintln(w, "NIL")
		return
	}

	queue := []I{tree.meta.Root}
	for len(queue) > 0 {
		var next []I
		for i, ptr := range queue {
			n := tree.arr.Get(ptr)
			if n.left != tree.meta.Null {
				next = append(next, n.left)
			}
			if n.right != tree.meta.Null {
				next = append(next, n.right)
			}

			if i > 0 {
				fmt.Fprint(w, " -> ")
			}
			paint := blackPaint
			if n.isRed() {
				paint = redPaint
			}
			paint.Fprintf(w, "%v", n.key)
		}
		fmt.Fprintln(w)
		queue = next
	}
}
