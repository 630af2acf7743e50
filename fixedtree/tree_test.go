package fixedtree

import (
	"errors"
	"testing"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/arbor/storage"
)

func leafPayload(t *testing.T, ref NodeRef[int, int]) int {
	t.Helper()
	payload, ok := ref.Value().Leaf()
	if !ok {
		t.Fatalf("node %d is not a leaf", ref.Key())
	}
	return payload
}

func childPayloads(t *testing.T, ref NodeRef[int, int]) []int {
	t.Helper()
	payloads := make([]int, ref.NumChildren())
	for i := range payloads {
		child, ok := ref.Child(i)
		if !ok {
			t.Fatalf("child %d of node %d missing", i, ref.Key())
		}
		payloads[i] = leafPayload(t, child)
	}
	return payloads
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewTree(t *testing.T) {
	tree := New[int, int](4, 1987)
	if tree.Arity() != 4 {
		t.Errorf("arity = %d, should be 4", tree.Arity())
	}
	if !tree.Root().IsLeaf() {
		t.Errorf("fresh tree root should be a leaf, is not")
	}
	if payload := leafPayload(t, tree.Root()); payload != 1987 {
		t.Errorf("root payload = %d, should be 1987", payload)
	}
	if tree.Len() != 1 {
		t.Errorf("fresh tree should have 1 node, has %d", tree.Len())
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestMakeBranchEnforcesArity(t *testing.T) {
	tree := New[int, int](4, 7)
	err := tree.RootMut().MakeBranch(arbor.Identity[int])
	if !errors.Is(err, arbor.ErrNoChildren) {
		t.Errorf("MakeBranch without children should fail with ErrNoChildren, got %v", err)
	}
	err = tree.RootMut().MakeBranch(arbor.Identity[int], 1, 2)
	if !errors.Is(err, arbor.ErrTooFewChildren) {
		t.Errorf("MakeBranch with 2 of 4 children should fail with ErrTooFewChildren, got %v", err)
	}
	err = tree.RootMut().MakeBranch(arbor.Identity[int], 1, 2, 3, 4, 5)
	if !errors.Is(err, arbor.ErrTooManyChildren) {
		t.Errorf("MakeBranch with 5 of 4 children should fail with ErrTooManyChildren, got %v", err)
	}
	var mberr *arbor.MakeBranchError[int]
	if !errors.As(err, &mberr) || len(mberr.PackedChildren) != 5 {
		t.Errorf("error should carry the 5 children back, got %v", err)
	}
	if tree.Len() != 1 {
		t.Errorf("failed MakeBranch should not have modified the tree")
	}
	if err := tree.RootMut().MakeBranch(arbor.Identity[int], 1, 2, 3, 4); err != nil {
		t.Fatal(err)
	}
	if got := childPayloads(t, tree.Root()); !equalInts(got, []int{1, 2, 3, 4}) {
		t.Errorf("children = %v, should be [1 2 3 4]", got)
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestRemoveChildrenRoundTrip(t *testing.T) {
	tree := New[int, int](3, 7)
	toBranch := func(l int) int { return l * 10 }
	toLeaf := func(b int) int { return b + 1 }
	if err := tree.RootMut().MakeBranch(toBranch, 1, 2, 3); err != nil {
		t.Fatal(err)
	}
	children, err := tree.RootMut().RemoveChildren(toLeaf)
	if err != nil {
		t.Fatal(err)
	}
	if !equalInts(children, []int{1, 2, 3}) {
		t.Errorf("children = %v, should be [1 2 3]", children)
	}
	// 7 became branch 70, collapsing made it leaf 71
	if !tree.Root().IsLeaf() || leafPayload(t, tree.Root()) != 71 {
		t.Errorf("root should be a leaf with payload 71")
	}
	if tree.Len() != 1 {
		t.Errorf("tree should have 1 node, has %d", tree.Len())
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestRemoveChildrenWithBranchChildFails(t *testing.T) {
	tree := New[int, int](2, 7)
	root := tree.RootMut()
	if err := root.MakeBranch(arbor.Identity[int], 1, 2); err != nil {
		t.Fatal(err)
	}
	second, _ := root.Child(1)
	if err := second.MakeBranch(arbor.Identity[int], 3, 4); err != nil {
		t.Fatal(err)
	}
	sizeBefore := tree.Len()
	_, err := root.RemoveChildren(arbor.Identity[int])
	var bcerr *arbor.BranchChildError
	if !errors.As(err, &bcerr) {
		t.Fatalf("RemoveChildren should fail with a BranchChildError, got %v", err)
	}
	if bcerr.Child != 1 {
		t.Errorf("blocking child = %d, should be 1", bcerr.Child)
	}
	if tree.Len() != sizeBefore {
		t.Errorf("failed RemoveChildren should not have modified the tree")
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestNoIndividualRemoval(t *testing.T) {
	tree := New[int, int](2, 7)
	if err := tree.RootMut().MakeBranch(arbor.Identity[int], 1, 2); err != nil {
		t.Fatal(err)
	}
	if tree.CanRemoveIndividualChildren() {
		t.Errorf("fixed-arity trees must not allow individual removal")
	}
	child, _ := tree.Root().Child(0)
	if _, err := tree.RemoveLeafAt(child.Key(), arbor.Identity[int]); !errors.Is(err, arbor.ErrCannotRemoveIndividualChildren) {
		t.Errorf("RemoveLeafAt should fail with ErrCannotRemoveIndividualChildren, got %v", err)
	}
	if _, _, err := tree.RemoveBranchAt(tree.Root().Key(), arbor.Identity[int]); !errors.Is(err, arbor.ErrCannotRemoveIndividualChildren) {
		t.Errorf("RemoveBranchAt should fail with ErrCannotRemoveIndividualChildren, got %v", err)
	}
	if tree.Len() != 3 {
		t.Errorf("tree should be unmodified with 3 nodes, has %d", tree.Len())
	}
}

func TestRecursivelyRemoveCollapses(t *testing.T) {
	tree := New[int, int](2, 7)
	root := tree.RootMut()
	if err := root.MakeBranch(arbor.Identity[int], 1, 2); err != nil {
		t.Fatal(err)
	}
	first, _ := root.Child(0)
	if err := first.MakeBranch(arbor.Identity[int], 3, 4); err != nil {
		t.Fatal(err)
	}
	second, _ := root.Child(1)
	if err := second.MakeBranch(arbor.Identity[int], 5, 6); err != nil {
		t.Fatal(err)
	}
	value := tree.RootMut().RecursivelyRemove(arbor.Identity[int])
	if payload, ok := value.Leaf(); !ok || payload != 7 {
		t.Errorf("collapsed root value = %v, should be leaf 7", value)
	}
	if tree.Len() != 1 {
		t.Errorf("tree should have 1 node, has %d", tree.Len())
	}
	if !tree.Root().IsLeaf() {
		t.Errorf("root should be a leaf again")
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestNextSiblingTraversal(t *testing.T) {
	tree := New[int, int](3, 7)
	if err := tree.RootMut().MakeBranch(arbor.Identity[int], 1, 2, 3); err != nil {
		t.Fatal(err)
	}
	cursor, err := tree.AdvanceCursor(tree.CursorToRoot(), arbor.ToChild[int](0))
	if err != nil {
		t.Fatal(err)
	}
	var visited []int
	for {
		payload, _ := tree.ValueAt(cursor).Leaf()
		visited = append(visited, payload)
		cursor, err = tree.AdvanceCursor(cursor, arbor.ToNextSibling[int]())
		if err != nil {
			break
		}
	}
	if !equalInts(visited, []int{1, 2, 3}) {
		t.Errorf("sibling walk = %v, should be [1 2 3]", visited)
	}
	var cerr *arbor.CursorError[int]
	if !errors.As(err, &cerr) {
		t.Fatalf("walk should end with a CursorError, got %v", err)
	}
	if last, _ := tree.ValueAt(cerr.PreviousCursor).Leaf(); last != 3 {
		t.Errorf("error should point back at the last child, points at %d", last)
	}
}

func TestTreeInListArena(t *testing.T) {
	arena := storage.NewListArena[Node[int, int]](storage.NewSlice[Node[int, int]](8), NodeFix[int, int]{})
	tree := NewIn[int, int](2, arena, 7)
	root := tree.RootMut()
	if err := root.MakeBranch(arbor.Identity[int], 1, 2); err != nil {
		t.Fatal(err)
	}
	first, _ := root.Child(0)
	if err := first.MakeBranch(arbor.Identity[int], 3, 4); err != nil {
		t.Fatal(err)
	}
	// removal shifts keys; the move-fix must keep all links intact
	if _, err := first.RemoveChildren(arbor.Identity[int]); err != nil {
		t.Fatal(err)
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
	if tree.Len() != 3 {
		t.Errorf("tree should have 3 nodes, has %d", tree.Len())
	}
	if got := childPayloads(t, tree.Root()); !equalInts(got, []int{1, 2}) {
		t.Errorf("root children = %v, should be [1 2]", got)
	}
}

func TestDefragment(t *testing.T) {
	tree := New[int, int](2, 7)
	root := tree.RootMut()
	if err := root.MakeBranch(arbor.Identity[int], 1, 2); err != nil {
		t.Fatal(err)
	}
	first, _ := root.Child(0)
	if err := first.MakeBranch(arbor.Identity[int], 3, 4); err != nil {
		t.Fatal(err)
	}
	second, _ := root.Child(1)
	if err := second.MakeBranch(arbor.Identity[int], 5, 6); err != nil {
		t.Fatal(err)
	}
	if _, err := first.RemoveChildren(arbor.Identity[int]); err != nil {
		t.Fatal(err)
	}
	if tree.NumHoles() != 2 {
		t.Fatalf("tree should have 2 holes, has %d", tree.NumHoles())
	}
	tree.Defragment()
	if !tree.IsDense() {
		t.Errorf("tree should be dense after defragmentation")
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}
