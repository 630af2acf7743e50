package freeform

import (
	"errors"
	"testing"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/arbor/storage"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func leafPayload(t *testing.T, ref NodeRef[int, int]) int {
	t.Helper()
	payload, ok := ref.Value().Leaf()
	if !ok {
		t.Fatalf("node %d is not a leaf", ref.Key())
	}
	return payload
}

// childPayloads walks the sibling list front to back.
func childPayloads(t *testing.T, ref NodeRef[int, int]) []int {
	t.Helper()
	var payloads []int
	child, ok := ref.FirstChild()
	for ok {
		payloads = append(payloads, leafPayload(t, child))
		child, ok = child.NextSibling()
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
	tree := New[int, int](1987)
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

func TestMakeBranchBuildsSiblingList(t *testing.T) {
	tree := New[int, int](7)
	if err := tree.RootMut().MakeBranch(arbor.Identity[int], 1, 2, 3); err != nil {
		t.Fatal(err)
	}
	if tree.Len() != 4 {
		t.Fatalf("tree should have 4 nodes, has %d", tree.Len())
	}
	if got := childPayloads(t, tree.Root()); !equalInts(got, []int{1, 2, 3}) {
		t.Errorf("children = %v, should be [1 2 3]", got)
	}
	// and back to front
	var backwards []int
	child, ok := tree.Root().LastChild()
	for ok {
		backwards = append(backwards, leafPayload(t, child))
		child, ok = child.PrevSibling()
	}
	if !equalInts(backwards, []int{3, 2, 1}) {
		t.Errorf("children backwards = %v, should be [3 2 1]", backwards)
	}
	if n := tree.Root().NumChildren(); n != 3 {
		t.Errorf("NumChildren = %d, should be 3", n)
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestMakeBranchErrors(t *testing.T) {
	tree := New[int, int](7)
	if err := tree.RootMut().MakeBranch(arbor.Identity[int]); !errors.Is(err, arbor.ErrNoChildren) {
		t.Errorf("MakeBranch without children should fail with ErrNoChildren, got %v", err)
	}
	if err := tree.RootMut().MakeBranch(arbor.Identity[int], 1); err != nil {
		t.Fatal(err)
	}
	err := tree.RootMut().MakeBranch(arbor.Identity[int], 2, 3)
	if !errors.Is(err, arbor.ErrWasBranchNode) {
		t.Errorf("MakeBranch on a branch should fail with ErrWasBranchNode, got %v", err)
	}
	var mberr *arbor.MakeBranchError[int]
	if !errors.As(err, &mberr) {
		t.Fatalf("error should carry the children back")
	}
	if !equalInts(mberr.PackedChildren, []int{2, 3}) {
		t.Errorf("carried children = %v, should be [2 3]", mberr.PackedChildren)
	}
	if tree.Len() != 2 {
		t.Errorf("failed MakeBranch should not have modified the tree")
	}
}

func TestPushBackAndPushFront(t *testing.T) {
	tree := New[int, int](7)
	root := tree.RootMut()
	if err := root.PushBack(1); !errors.Is(err, arbor.ErrWasLeafNode) {
		t.Errorf("PushBack on a leaf should fail with ErrWasLeafNode, got %v", err)
	}
	if err := root.MakeBranch(arbor.Identity[int], 1, 2); err != nil {
		t.Fatal(err)
	}
	if err := root.PushBack(3); err != nil {
		t.Fatal(err)
	}
	if err := root.PushFront(0); err != nil {
		t.Fatal(err)
	}
	if got := childPayloads(t, tree.Root()); !equalInts(got, []int{0, 1, 2, 3}) {
		t.Errorf("children = %v, should be [0 1 2 3]", got)
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestRemoveLeafStitchesSiblings(t *testing.T) {
	tree := New[int, int](7)
	if err := tree.RootMut().MakeBranch(arbor.Identity[int], 1, 2, 3); err != nil {
		t.Fatal(err)
	}
	first, _ := tree.RootMut().FirstChild()
	middle, _ := first.NextSibling()
	payload, err := middle.RemoveLeaf(arbor.Identity[int])
	if err != nil {
		t.Fatal(err)
	}
	if payload != 2 {
		t.Errorf("removed payload = %d, should be 2", payload)
	}
	if got := childPayloads(t, tree.Root()); !equalInts(got, []int{1, 3}) {
		t.Errorf("children = %v, should be [1 3]", got)
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestRemoveLeafCollapsesParent(t *testing.T) {
	tree := New[int, int](7)
	toBranch := func(l int) int { return l * 10 }
	toLeaf := func(b int) int { return b + 1 }
	if err := tree.RootMut().MakeBranch(toBranch, 5); err != nil {
		t.Fatal(err)
	}
	only, _ := tree.RootMut().FirstChild()
	payload, err := only.RemoveLeaf(toLeaf)
	if err != nil {
		t.Fatal(err)
	}
	if payload != 5 {
		t.Errorf("removed payload = %d, should be 5", payload)
	}
	if !tree.Root().IsLeaf() {
		t.Fatalf("root should have collapsed back into a leaf")
	}
	// 7 became branch 70, collapsing made it leaf 71
	if got := leafPayload(t, tree.Root()); got != 71 {
		t.Errorf("collapsed root payload = %d, should be 71", got)
	}
	if tree.Len() != 1 {
		t.Errorf("tree should have 1 node, has %d", tree.Len())
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestRemoveLeafErrors(t *testing.T) {
	tree := New[int, int](7)
	if _, err := tree.RootMut().RemoveLeaf(arbor.Identity[int]); !errors.Is(err, arbor.ErrWasRootNode) {
		t.Errorf("RemoveLeaf on the root should fail with ErrWasRootNode, got %v", err)
	}
	if err := tree.RootMut().MakeBranch(arbor.Identity[int], 1); err != nil {
		t.Fatal(err)
	}
	if _, err := tree.RootMut().RemoveLeaf(arbor.Identity[int]); !errors.Is(err, arbor.ErrWasBranchNode) {
		t.Errorf("RemoveLeaf on a branch should fail with ErrWasBranchNode, got %v", err)
	}
}

func TestRemoveBranch(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := New[int, int](7)
	root := tree.RootMut()
	if err := root.MakeBranch(arbor.Identity[int], 1, 2, 3); err != nil {
		t.Fatal(err)
	}
	middle, _ := root.FirstChild()
	middle, _ = middle.NextSibling()
	if err := middle.MakeBranch(arbor.Identity[int], 4, 5); err != nil {
		t.Fatal(err)
	}
	payload, children, err := middle.RemoveBranch(arbor.Identity[int])
	if err != nil {
		t.Fatal(err)
	}
	if payload != 2 {
		t.Errorf("branch payload = %d, should be 2", payload)
	}
	if !equalInts(children, []int{4, 5}) {
		t.Errorf("children = %v, should be [4 5]", children)
	}
	if got := childPayloads(t, tree.Root()); !equalInts(got, []int{1, 3}) {
		t.Errorf("root children = %v, should be [1 3]", got)
	}
	if tree.Len() != 3 {
		t.Errorf("tree should have 3 nodes, has %d", tree.Len())
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestRemoveBranchWithBranchChildFails(t *testing.T) {
	tree := New[int, int](7)
	root := tree.RootMut()
	if err := root.MakeBranch(arbor.Identity[int], 1, 2); err != nil {
		t.Fatal(err)
	}
	second, _ := root.FirstChild()
	second, _ = second.NextSibling()
	if err := second.MakeBranch(arbor.Identity[int], 3); err != nil {
		t.Fatal(err)
	}
	sizeBefore := tree.Len()
	_, _, err := root.RemoveBranch(arbor.Identity[int])
	var bcerr *arbor.BranchChildError
	if !errors.As(err, &bcerr) {
		t.Fatalf("RemoveBranch should fail with a BranchChildError, got %v", err)
	}
	if bcerr.Child != 1 {
		t.Errorf("blocking child = %d, should be 1", bcerr.Child)
	}
	if tree.Len() != sizeBefore {
		t.Errorf("failed RemoveBranch should not have modified the tree")
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestRemoveChildrenOnRoot(t *testing.T) {
	tree := New[int, int](7)
	if err := tree.RootMut().MakeBranch(arbor.Identity[int], 1, 2, 3); err != nil {
		t.Fatal(err)
	}
	children, err := tree.RootMut().RemoveChildren(arbor.Identity[int])
	if err != nil {
		t.Fatal(err)
	}
	if !equalInts(children, []int{1, 2, 3}) {
		t.Errorf("children = %v, should be [1 2 3]", children)
	}
	if !tree.Root().IsLeaf() || leafPayload(t, tree.Root()) != 7 {
		t.Errorf("root should be a leaf with payload 7 again")
	}
	if tree.Len() != 1 {
		t.Errorf("tree should have 1 node, has %d", tree.Len())
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestRecursivelyRemoveSubtree(t *testing.T) {
	tree := New[int, int](7)
	root := tree.RootMut()
	if err := root.MakeBranch(arbor.Identity[int], 1, 2); err != nil {
		t.Fatal(err)
	}
	first, _ := root.FirstChild()
	if err := first.MakeBranch(arbor.Identity[int], 3, 4); err != nil {
		t.Fatal(err)
	}
	grandchild, _ := first.FirstChild()
	if err := grandchild.MakeBranch(arbor.Identity[int], 5); err != nil {
		t.Fatal(err)
	}
	first.RecursivelyRemove(arbor.Identity[int])
	if got := childPayloads(t, tree.Root()); !equalInts(got, []int{2}) {
		t.Errorf("root children = %v, should be [2]", got)
	}
	if tree.Len() != 2 {
		t.Errorf("tree should have 2 nodes, has %d", tree.Len())
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestTreeInListArena(t *testing.T) {
	arena := storage.NewListArena[Node[int, int]](storage.NewSlice[Node[int, int]](8), NodeFix[int, int]{})
	tree := NewIn[int, int](arena, 7)
	root := tree.RootMut()
	if err := root.MakeBranch(arbor.Identity[int], 1, 2, 3); err != nil {
		t.Fatal(err)
	}
	first, _ := root.FirstChild()
	if err := first.MakeBranch(arbor.Identity[int], 4, 5); err != nil {
		t.Fatal(err)
	}
	// removal shifts keys; the move-fix must keep all links intact
	if _, _, err := first.RemoveBranch(arbor.Identity[int]); err != nil {
		t.Fatal(err)
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
	if got := childPayloads(t, tree.Root()); !equalInts(got, []int{2, 3}) {
		t.Errorf("root children = %v, should be [2 3]", got)
	}
}

func TestDefragmentKeepsSiblingLists(t *testing.T) {
	tree := New[int, int](7)
	root := tree.RootMut()
	if err := root.MakeBranch(arbor.Identity[int], 1, 2, 3); err != nil {
		t.Fatal(err)
	}
	second, _ := root.FirstChild()
	second, _ = second.NextSibling()
	if err := second.MakeBranch(arbor.Identity[int], 4, 5, 6); err != nil {
		t.Fatal(err)
	}
	if _, err := second.RemoveChildren(arbor.Identity[int]); err != nil {
		t.Fatal(err)
	}
	if tree.NumHoles() != 3 {
		t.Fatalf("tree should have 3 holes, has %d", tree.NumHoles())
	}
	tree.Defragment()
	if !tree.IsDense() {
		t.Errorf("tree should be dense after defragmentation")
	}
	if got := childPayloads(t, tree.Root()); !equalInts(got, []int{1, 2, 3}) {
		t.Errorf("root children = %v, should be [1 2 3]", got)
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}
