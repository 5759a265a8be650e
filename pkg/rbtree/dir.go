package rbtree

// Dir names a child slot. Rotations and the delete repair are
// parameterized by it instead of being written twice mirrored.
type Dir byte

const (
	Left Dir = iota
	Right
)

func (d Dir) Other() Dir {
	if d == Left {
		return Right
	}
	return Left
}

func (d Dir) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}
