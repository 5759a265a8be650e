package components

import (
	"cmp"

	"ordered_index/pkg/rbtree"
	"ordered_index/pkg/util"
)

// index key. Implements rbtree.Key.
type Key uint64

func (k Key) Compare(k2 Key) int {
	return cmp.Compare(k, k2)
}

type Tree = rbtree.Tree[uint32, Key, uint64]

type Entry = rbtree.Entry[Key, uint64]

// entry wrapper for the ordered merge. Implements util.Comparable.
type mergeEntry struct {
	Entry
}

func (e mergeEntry) Compare(e2 util.Comparable) int {
	return e.Key.Compare(e2.(mergeEntry).Key)
}

type LoadConfig struct {
	Total      int
	ShardCount int
	Keyspace   uint64
	Seed       uint64

	// every DeleteEvery-th inserted key is deleted right back,
	// keeping the trees exercised on both mutation paths. 0 disables.
	DeleteEvery int
}

type QueryConfig struct {
	Shards      []*Tree
	LookupCount int
	CacheSize   int
	Keyspace    uint64
	Seed        uint64
}
