package arbor

// NodeValue is a node payload which is either a branch payload of type
// B or a leaf payload of type L. The zero value is a leaf with a zero
// payload.
type NodeValue[B, L any] struct {
	branch   B
	leaf     L
	isBranch bool
}

// BranchValue wraps a branch payload.
func BranchValue[B, L any](payload B) NodeValue[B, L] {
	return NodeValue[B, L]{branch: payload, isBranch: true}
}

// LeafValue wraps a leaf payload.
func LeafValue[B, L any](payload L) NodeValue[B, L] {
	return NodeValue[B, L]{leaf: payload}
}

// IsBranch reports whether the value holds a branch payload.
func (v NodeValue[B, L]) IsBranch() bool {
	return v.isBranch
}

// IsLeaf reports whether the value holds a leaf payload.
func (v NodeValue[B, L]) IsLeaf() bool {
	return !v.isBranch
}

// Branch returns the branch payload, if present.
func (v NodeValue[B, L]) Branch() (B, bool) {
	return v.branch, v.isBranch
}

// Leaf returns the leaf payload, if present.
func (v NodeValue[B, L]) Leaf() (L, bool) {
	return v.leaf, !v.isBranch
}

// Payload unwraps a NodeValue whose branch and leaf payloads share a
// type, without the caller having to distinguish the variants.
func Payload[T any](v NodeValue[T, T]) T {
	if v.isBranch {
		return v.branch
	}
	return v.leaf
}

// Identity is the conversion to use with the mutating tree operations
// when branch and leaf payloads share a type and convert into each
// other unchanged.
func Identity[T any](payload T) T {
	return payload
}
