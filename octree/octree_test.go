package octree

import (
	"errors"
	"testing"

	"github.com/npillmayer/arbor"
)

func TestOctreeArity(t *testing.T) {
	tree := New[int, int](7)
	if tree.Arity() != 8 {
		t.Errorf("arity = %d, should be 8", tree.Arity())
	}
	if err := tree.RootMut().MakeBranch(arbor.Identity[int], 1, 2, 3, 4); !errors.Is(err, arbor.ErrTooFewChildren) {
		t.Errorf("4 children should not make an octree branch, got %v", err)
	}
	if err := tree.RootMut().MakeBranch(arbor.Identity[int], 1, 2, 3, 4, 5, 6, 7, 8); err != nil {
		t.Fatal(err)
	}
	if tree.Len() != 9 {
		t.Errorf("tree should have 9 nodes, has %d", tree.Len())
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}
