package rbtree

import (
	"ordered_index/pkg/arena"
)

type Metadata[I arena.Integer] struct {
	Root  I
	Null  I
	Count uint64
}
