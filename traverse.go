package arbor

import "errors"

// Direction tells the traversal engine where to move a cursor next.
type Direction int8

const (
	// DirParent moves the cursor to the parent of the visited node.
	DirParent Direction = iota
	// DirNextSibling moves the cursor to the next sibling of the
	// visited node.
	DirNextSibling
	// DirChild moves the cursor to the n-th child of the visited node.
	DirChild
	// DirSet places the cursor onto an arbitrary node. This is also the
	// only direction which recovers a cursor from a failed movement.
	DirSet
)

// Command is a cursor movement requested by a visitor. Child is the
// child index for DirChild, Target the destination for DirSet; both are
// ignored for the other directions.
type Command[C comparable] struct {
	Direction Direction
	Child     int
	Target    C
}

// ToParent moves the cursor up.
func ToParent[C comparable]() Command[C] {
	return Command[C]{Direction: DirParent}
}

// ToNextSibling moves the cursor to the next sibling.
func ToNextSibling[C comparable]() Command[C] {
	return Command[C]{Direction: DirNextSibling}
}

// ToChild moves the cursor down to child n.
func ToChild[C comparable](n int) Command[C] {
	return Command[C]{Direction: DirChild, Child: n}
}

// ToCursor places the cursor onto target.
func ToCursor[C comparable](target C) Command[C] {
	return Command[C]{Direction: DirSet, Target: target}
}

// Traversable is a tree which can be walked with a cursor. All arbor
// tree shapes implement it with int cursors; the engine is written
// against the interface so foreign trees can participate.
//
// AdvanceCursor moves a cursor one step. On failure it returns a
// *CursorError carrying cursor, which stays valid. DirSet targets are
// checked for presence, so a visitor can never park the cursor on a
// node which is not in the tree.
type Traversable[B, L any, C comparable] interface {
	// CursorToRoot returns a cursor pointing at the root node.
	CursorToRoot() C
	// AdvanceCursor moves cursor along cmd.
	AdvanceCursor(cursor C, cmd Command[C]) (C, error)
	// ValueAt returns the payload of the node at cursor.
	ValueAt(cursor C) NodeValue[B, L]
	// ParentOf returns the cursor of the parent, or false for the root.
	ParentOf(cursor C) (C, bool)
	// NumChildrenOf returns the number of children of the node at
	// cursor; 0 for leaves.
	NumChildrenOf(cursor C) int
	// ChildOf returns the cursor of the n-th child, if present.
	ChildOf(cursor C, n int) (C, bool)
}

// TraversableMut is a Traversable whose nodes can be modified and
// removed through the cursor.
//
// The removal methods mirror the per-shape NodeRefMut operations: they
// are non-recursive, fail with *BranchChildError when a child in the
// way is a branch, and leave the tree unmodified on failure.
type TraversableMut[B, L any, C comparable] interface {
	Traversable[B, L, C]
	// CanRemoveIndividualChildren reports whether the tree shape
	// supports removing single nodes. Fixed-arity shapes do not.
	CanRemoveIndividualChildren() bool
	// ValueMutAt returns the payload of the node at cursor for in-place
	// modification.
	ValueMutAt(cursor C) NodeValue[*B, *L]
	// RemoveLeafAt removes the leaf node at cursor.
	RemoveLeafAt(cursor C, branchToLeaf func(B) L) (L, error)
	// RemoveBranchAt removes the branch node at cursor together with
	// its leaf children, returning the branch payload and the children.
	RemoveBranchAt(cursor C, branchToLeaf func(B) L) (B, []L, error)
	// RemoveChildrenAt removes the leaf children of the branch node at
	// cursor and turns the node itself into a leaf.
	RemoveChildrenAt(cursor C, branchToLeaf func(B) L) ([]L, error)
}

// Visitor reads a tree while the engine drives its cursor. Visit
// inspects the node at cursor and returns the next movement, the
// current output and whether traversal is finished. When done is true
// the engine stops and hands out the returned output.
//
// prev is non-nil when the previous movement failed; the cursor then
// still points at the last valid node, and only a DirSet command (or
// stopping) will move it.
type Visitor[B, L any, C comparable, O any] interface {
	Visit(t Traversable[B, L, C], cursor C, prev error) (cmd Command[C], out O, done bool)
}

// VisitorMut is a Visitor with mutable access to the tree.
type VisitorMut[B, L any, C comparable, O any] interface {
	VisitMut(t TraversableMut[B, L, C], cursor C, prev error) (cmd Command[C], out O, done bool)
}

// VisitorFunc adapts a plain function to the Visitor interface.
type VisitorFunc[B, L any, C comparable, O any] func(t Traversable[B, L, C], cursor C, prev error) (Command[C], O, bool)

// Visit calls f.
func (f VisitorFunc[B, L, C, O]) Visit(t Traversable[B, L, C], cursor C, prev error) (Command[C], O, bool) {
	return f(t, cursor, prev)
}

// VisitorMutFunc adapts a plain function to the VisitorMut interface.
type VisitorMutFunc[B, L any, C comparable, O any] func(t TraversableMut[B, L, C], cursor C, prev error) (Command[C], O, bool)

// VisitMut calls f.
func (f VisitorMutFunc[B, L, C, O]) VisitMut(t TraversableMut[B, L, C], cursor C, prev error) (Command[C], O, bool) {
	return f(t, cursor, prev)
}

// advance handles the error protocol of a single step: a failed cursor
// keeps its error until the visitor recovers with DirSet or stops.
func advance[B, L any, C comparable](t Traversable[B, L, C], cursor C, prev error, cmd Command[C]) (C, error) {
	if prev != nil && cmd.Direction != DirSet {
		return cursor, prev
	}
	next, err := t.AdvanceCursor(cursor, cmd)
	if err != nil {
		return cursor, err
	}
	return next, nil
}

// Step performs a single visit-and-advance step: the visitor inspects
// the node at cursor and the engine moves the cursor along the returned
// command. It returns the new cursor, the error state for the next
// step, the visitor's output and whether the visitor stopped.
func Step[B, L any, C comparable, O any](t Traversable[B, L, C], cursor C, prev error, v Visitor[B, L, C, O]) (C, error, O, bool) {
	cmd, out, done := v.Visit(t, cursor, prev)
	if done {
		return cursor, prev, out, true
	}
	next, err := advance(t, cursor, prev, cmd)
	return next, err, out, false
}

// StepMut performs a single visit-and-advance step with a mutating
// visitor.
func StepMut[B, L any, C comparable, O any](t TraversableMut[B, L, C], cursor C, prev error, v VisitorMut[B, L, C, O]) (C, error, O, bool) {
	cmd, out, done := v.VisitMut(t, cursor, prev)
	if done {
		return cursor, prev, out, true
	}
	next, err := advance(t, cursor, prev, cmd)
	return next, err, out, false
}

// Traverse walks t from the root until the visitor stops, returning the
// visitor's final output.
func Traverse[B, L any, C comparable, O any](t Traversable[B, L, C], v Visitor[B, L, C, O]) O {
	return TraverseFrom(t, t.CursorToRoot(), v)
}

// TraverseFrom walks t from start until the visitor stops.
func TraverseFrom[B, L any, C comparable, O any](t Traversable[B, L, C], start C, v Visitor[B, L, C, O]) O {
	cursor, prev := start, error(nil)
	for {
		cmd, out, done := v.Visit(t, cursor, prev)
		if done {
			return out
		}
		cursor, prev = advance(t, cursor, prev, cmd)
	}
}

// TraverseMut walks t from the root with a mutating visitor.
func TraverseMut[B, L any, C comparable, O any](t TraversableMut[B, L, C], v VisitorMut[B, L, C, O]) O {
	return TraverseFromMut(t, t.CursorToRoot(), v)
}

// TraverseFromMut walks t from start with a mutating visitor.
func TraverseFromMut[B, L any, C comparable, O any](t TraversableMut[B, L, C], start C, v VisitorMut[B, L, C, O]) O {
	cursor, prev := start, error(nil)
	for {
		cmd, out, done := v.VisitMut(t, cursor, prev)
		if done {
			return out
		}
		cursor, prev = advance(t, cursor, prev, cmd)
	}
}

// Stepper drives a visitor one step at a time, so callers can bound the
// amount of work done per call. Next performs a single visit-and-move
// step and returns the visitor's output for it; the second return value
// turns false when the visitor has stopped (the final output is still
// returned with it).
type Stepper[B, L any, C comparable, O any] struct {
	t      Traversable[B, L, C]
	v      Visitor[B, L, C, O]
	cursor C
	prev   error
	done   bool
}

// NewStepper starts a stepwise traversal of t at the root.
func NewStepper[B, L any, C comparable, O any](t Traversable[B, L, C], v Visitor[B, L, C, O]) *Stepper[B, L, C, O] {
	return NewStepperFrom(t, t.CursorToRoot(), v)
}

// NewStepperFrom starts a stepwise traversal of t at start.
func NewStepperFrom[B, L any, C comparable, O any](t Traversable[B, L, C], start C, v Visitor[B, L, C, O]) *Stepper[B, L, C, O] {
	return &Stepper[B, L, C, O]{t: t, v: v, cursor: start}
}

// Next performs one traversal step.
func (s *Stepper[B, L, C, O]) Next() (O, bool) {
	if s.done {
		var zero O
		return zero, false
	}
	cmd, out, done := s.v.Visit(s.t, s.cursor, s.prev)
	if done {
		s.done = true
		return out, false
	}
	s.cursor, s.prev = advance(s.t, s.cursor, s.prev, cmd)
	return out, true
}

// Cursor returns the stepper's current cursor.
func (s *Stepper[B, L, C, O]) Cursor() C {
	return s.cursor
}

// Restart places the stepper onto start and clears any stop or error
// state, so the same visitor can walk again.
func (s *Stepper[B, L, C, O]) Restart(start C) {
	s.cursor, s.prev, s.done = start, nil, false
}

// StepperMut drives a mutating visitor one step at a time.
type StepperMut[B, L any, C comparable, O any] struct {
	t      TraversableMut[B, L, C]
	v      VisitorMut[B, L, C, O]
	cursor C
	prev   error
	done   bool
}

// NewStepperMut starts a stepwise mutating traversal of t at the root.
func NewStepperMut[B, L any, C comparable, O any](t TraversableMut[B, L, C], v VisitorMut[B, L, C, O]) *StepperMut[B, L, C, O] {
	return &StepperMut[B, L, C, O]{t: t, v: v, cursor: t.CursorToRoot()}
}

// Next performs one traversal step.
func (s *StepperMut[B, L, C, O]) Next() (O, bool) {
	if s.done {
		var zero O
		return zero, false
	}
	cmd, out, done := s.v.VisitMut(s.t, s.cursor, s.prev)
	if done {
		s.done = true
		return out, false
	}
	s.cursor, s.prev = advance(s.t, s.cursor, s.prev, cmd)
	return out, true
}

// Restart places the stepper onto start and clears any stop or error
// state.
func (s *StepperMut[B, L, C, O]) Restart(start C) {
	s.cursor, s.prev, s.done = start, nil, false
}

// IsBranchChild extracts the child position from a *BranchChildError,
// if err is one.
func IsBranchChild(err error) (int, bool) {
	var bce *BranchChildError
	if errors.As(err, &bce) {
		return bce.Child, true
	}
	return 0, false
}
