package arbor

import (
	"errors"
	"fmt"
)

var (
	// ErrWasRootNode signals an attempt to remove the root node.
	ErrWasRootNode = errors.New("arbor: node is the root node")
	// ErrWasBranchNode signals a leaf operation on a branch node.
	ErrWasBranchNode = errors.New("arbor: node is a branch node")
	// ErrWasLeafNode signals a branch operation on a leaf node.
	ErrWasLeafNode = errors.New("arbor: node is a leaf node")
	// ErrWasFullBranch signals an attempt to complete a branch which
	// already has all of its children.
	ErrWasFullBranch = errors.New("arbor: branch already has all children")
	// ErrCannotRemoveIndividualChildren signals a single-node removal on
	// a tree shape which only supports removing all children at once.
	ErrCannotRemoveIndividualChildren = errors.New("arbor: tree shape cannot remove individual children")
	// ErrNoChildren signals a branch creation without any children.
	ErrNoChildren = errors.New("arbor: branch needs at least one child")
	// ErrTooFewChildren signals a branch creation with fewer children
	// than the tree shape's fixed arity.
	ErrTooFewChildren = errors.New("arbor: too few children for tree shape")
	// ErrTooManyChildren signals a branch creation with more children
	// than the tree shape supports.
	ErrTooManyChildren = errors.New("arbor: too many children for tree shape")
)

// BranchChildError reports that a removal found a branch node among the
// children, at child position Child. The tree is left unmodified.
type BranchChildError struct {
	Child int
}

func (e *BranchChildError) Error() string {
	return fmt.Sprintf("arbor: child %d is a branch node", e.Child)
}

// MakeBranchError reports a failed branch creation and hands the
// payloads which were meant to become children back to the caller.
type MakeBranchError[L any] struct {
	PackedChildren []L
	err            error
}

// NewMakeBranchError wraps err, handing children back to the caller.
func NewMakeBranchError[L any](err error, children []L) *MakeBranchError[L] {
	return &MakeBranchError[L]{PackedChildren: children, err: err}
}

func (e *MakeBranchError[L]) Error() string {
	return fmt.Sprintf("%v (carrying %d children)", e.err, len(e.PackedChildren))
}

func (e *MakeBranchError[L]) Unwrap() error {
	return e.err
}

// CursorError reports a failed cursor movement. PreviousCursor is the
// last valid cursor position, from which a visitor may recover.
type CursorError[C comparable] struct {
	PreviousCursor C
	reason         string
}

// NewCursorError records a failed movement away from prev.
func NewCursorError[C comparable](prev C, reason string) *CursorError[C] {
	return &CursorError[C]{PreviousCursor: prev, reason: reason}
}

func (e *CursorError[C]) Error() string {
	return fmt.Sprintf("arbor: cannot advance cursor: %s", e.reason)
}
