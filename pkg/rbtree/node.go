package rbtree

import (
	"ordered_index/pkg/arena"
)

type flagValue byte

const (
	FV_COLOR_BLACK flagValue = 0b00000000
	FV_COLOR_RED   flagValue = 0b00000001
)

type flagType byte

const (
	FT_COLOR flagType = 0
)

type node[I arena.Integer, K Key[K], V any] struct {
	left   I
	right  I
	parent I
	flags  flagValue
	key    K
	val    V
}

func (n *node[I, K, V]) isBlack() bool {
	return n.getFlag(FT_COLOR) == FV_COLOR_BLACK
}

func (n *node[I, K, V]) isRed() bool {
	return n.getFlag(FT_COLOR) == FV_COLOR_RED
}

func (n *node[I, K, V]) setBlack() {
	n.setFlag(FT_COLOR, FV_COLOR_BLACK)
}

func (n *node[I, K, V]) setRed() {
	n.setFlag(FT_COLOR, FV_COLOR_RED)
}

func (n *node[I, K, V]) setFlag(ft flagType, fv flagValue) {
	mask := ^(byte(1) << ft)
	mask &= byte(n.flags)
	n.flags = flagValue(mask) | fv
}

func (n *node[I, K, V]) getFlag(ft flagType) flagValue {
	return n.flags & flagValue(byte(1)<<byte(ft))
}

func (n *node[I, K, V]) child(d Dir) I {
	if d == Left {
		return n.left
	}
	return n.right
}

func (n *node[I, K, V]) setChild(d Dir, c I) {
	if d == Left {
		n.left = c
	} else {
		n.right = c
	}
}
