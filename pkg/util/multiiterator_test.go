package util_test

import (
	"cmp"
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"ordered_index/pkg/util"
)

type ci int

func (c ci) Compare(c2 util.Comparable) int {
	return cmp.Compare(c, c2.(ci))
}

func seqOf(vals ...ci) iter.Seq[ci] {
	return func(yield func(ci) bool) {
		for _, v := range vals {
			if !yield(v) {
				return
			}
		}
	}
}

func TestMergesSorted(t *testing.T) {
	merged := util.MultiIterator([]iter.Seq[ci]{
		seqOf(1, 4, 7),
		seqOf(2, 4, 9),
		seqOf(3, 5, 6, 8),
	})

	var got []ci
	for v := range merged {
		got = append(got, v)
	}

	require.Len(t, got, 10)
	require.True(t, slices.IsSortedFunc(got, func(a, b ci) int { return cmp.Compare(a, b) }))
	require.Equal(t, []ci{1, 2, 3, 4, 4, 5, 6, 7, 8, 9}, got)
}

func TestEmptyInputs(t *testing.T) {
	var got []ci
	for v := range util.MultiIterator([]iter.Seq[ci]{}) {
		got = append(got, v)
	}
	require.Empty(t, got)

	for v := range util.MultiIterator([]iter.Seq[ci]{seqOf(), seqOf(5)}) {
		got = append(got, v)
	}
	require.Equal(t, []ci{5}, got)
}

func TestEarlyBreak(t *testing.T) {
	merged := util.MultiIterator([]iter.Seq[ci]{
		seqOf(1, 3, 5),
		seqOf(2, 4, 6),
	})

	var got []ci
	for v := range merged {
		got = append(got, v)
		if len(got) == 3 {
			break
		}
	}
	require.Equal(t, []ci{1, 2, 3}, got)
}
