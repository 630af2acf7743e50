package bintree

import (
	"testing"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/arbor/storage"
)

func newListNodeArena[B, L any]() *storage.ListArena[Node[B, L]] {
	return storage.NewListArena[Node[B, L]](storage.NewSlice[Node[B, L]](8), NodeFix[B, L]{})
}

func TestSparseArenaReusesHoles(t *testing.T) {
	tree := New[int, int](0)
	root := tree.RootMut()
	if err := root.MakeBranch(arbor.Identity[int], 1, 2); err != nil {
		t.Fatal(err)
	}
	left, _ := root.LeftChild()
	leftKey := left.Key()
	if _, err := left.RemoveLeaf(arbor.Identity[int]); err != nil {
		t.Fatal(err)
	}
	if tree.NumHoles() != 1 || tree.IsDense() {
		t.Fatalf("removal should have punched exactly one hole")
	}
	// the promoted sibling kept its key, the hole is where the old
	// left child was
	if err := root.MakeFullBranch(3); err != nil {
		t.Fatal(err)
	}
	right, _ := tree.Root().RightChild()
	if right.Key() != leftKey {
		t.Errorf("new node at key %d, should reuse hole %d", right.Key(), leftKey)
	}
	if !tree.IsDense() {
		t.Errorf("hole should have been reused")
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestDefragmentKeepsLinksAndRoot(t *testing.T) {
	tree := New[int, int](0)
	root := tree.RootMut()
	if err := root.MakeBranch(arbor.Identity[int], 1, 2); err != nil {
		t.Fatal(err)
	}
	left, _ := root.LeftChild()
	if err := left.MakeBranch(arbor.Identity[int], 3, 4); err != nil {
		t.Fatal(err)
	}
	// punch holes in the middle of the arena
	if _, _, err := left.RemoveBranch(arbor.Identity[int]); err != nil {
		t.Fatal(err)
	}
	if tree.NumHoles() == 0 {
		t.Fatalf("expected holes before defragmentation")
	}
	tree.Defragment()
	if !tree.IsDense() {
		t.Fatalf("arena should be dense after defragmentation")
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
	if payload, _ := tree.Root().Value().Branch(); payload != 0 {
		t.Errorf("root payload = %d, should be 0", payload)
	}
	newLeft, _ := tree.Root().LeftChild()
	if payload, _ := newLeft.Value().Leaf(); payload != 2 {
		t.Errorf("left child payload = %d, should be 2", payload)
	}
}

func TestDefragmentRelocatesTailNodes(t *testing.T) {
	// remove a low-keyed node so compaction has to relocate nodes from
	// the tail of the arena into the hole
	tree := New[int, int](0)
	root := tree.RootMut()
	if err := root.MakeBranch(arbor.Identity[int], 1, 2); err != nil {
		t.Fatal(err)
	}
	right, _ := root.RightChild()
	if err := right.MakeBranch(arbor.Identity[int], 3, 4); err != nil {
		t.Fatal(err)
	}
	left, _ := root.LeftChild()
	if _, err := left.RemoveLeaf(arbor.Identity[int]); err != nil {
		t.Fatal(err)
	}
	tree.Defragment()
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
	if !tree.IsDense() {
		t.Errorf("arena should be dense after defragmentation")
	}
	if tree.Len() != 4 {
		t.Errorf("tree should have 4 nodes, has %d", tree.Len())
	}
}
