package rbtree

import (
	"bytes"
	"cmp"
	"testing"

	"github.com/stretchr/testify/require"
)

type ik int

func (k ik) Compare(k2 ik) int {
	return cmp.Compare(k, k2)
}

func TestRotateMissingChildPanics(t *testing.T) {
	tree := New[uint32, ik, int]()
	tree.Put(1, 1)

	require.PanicsWithError(t, ErrRotateMissingChild.Error(), func() {
		tree.rotate(tree.meta.Root, Left)
	})
	require.PanicsWithError(t, ErrRotateMissingChild.Error(), func() {
		tree.rotate(tree.meta.Root, Right)
	})
}

func TestRotatePreservesOrder(t *testing.T) {
	tree := New[uint32, ik, int]()
	for _, k := range []ik{4, 2, 6, 1, 3, 5, 7} {
		tree.Put(k, int(k))
	}

	// structural only: order must survive arbitrary rotations even
	// though colors are left alone
	tree.rotate(tree.meta.Root, Left)
	require.NoError(t, tree.validateOrder(tree.meta.Root))
	tree.rotate(tree.meta.Root, Right)
	require.NoError(t, tree.validateOrder(tree.meta.Root))
	require.NoError(t, tree.Validate())
}

func TestDirOther(t *testing.T) {
	require.Equal(t, Right, Left.Other())
	require.Equal(t, Left, Right.Other())
	require.Equal(t, "left", Left.String())
	require.Equal(t, "right", Right.String())
}

func TestFreeCompaction(t *testing.T) {
	tree := New[uint32, ik, int]()
	for k := ik(1); k <= 100; k++ {
		tree.Put(k, int(k))
	}

	// arena stays dense across deletions: one sentinel slot plus one
	// slot per live node
	for k := ik(1); k <= 50; k++ {
		_, ok := tree.Delete(k)
		require.True(t, ok)
		require.Equal(t, uint32(tree.Count()+1), tree.arr.Len())
		require.NoError(t, tree.Validate())
	}
}

func TestNodeFlags(t *testing.T) {
	n := &node[uint32, ik, int]{}
	require.True(t, n.isBlack())

	n.setRed()
	require.True(t, n.isRed())
	require.False(t, n.isBlack())

	n.setBlack()
	require.True(t, n.isBlack())
}

func TestPrint(t *testing.T) {
	tree := New[uint32, ik, int]()

	buf := &bytes.Buffer{}
	tree.Print(buf)
	require.Equal(t, "NIL\n", buf.String())

	for k := ik(1); k <= 3; k++ {
		tree.Put(k, int(k))
	}
	buf.Reset()
	tree.Print(buf)
	require.Contains(t, buf.String(), "2")
	require.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n")))
}
