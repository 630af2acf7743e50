package storage

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSparseAddRemove(t *testing.T) {
	s := NewSparseSlice[string](4)
	a := s.Add("a")
	b := s.Add("b")
	c := s.Add("c")
	if s.Len() != 3 || !s.IsDense() {
		t.Fatalf("expected dense storage with 3 elements")
	}
	if x := s.Remove(b); x != "b" {
		t.Errorf("removed element = %q, should be \"b\"", x)
	}
	if s.Len() != 2 || s.NumHoles() != 1 || s.IsDense() {
		t.Errorf("expected 2 elements and 1 hole, have %d/%d", s.Len(), s.NumHoles())
	}
	if s.Contains(b) {
		t.Errorf("hole key should read as absent")
	}
	if *s.At(a) != "a" || *s.At(c) != "c" {
		t.Errorf("keys of live elements must not move")
	}
}

func TestSparseFreeListReuse(t *testing.T) {
	s := NewSparseSlice[int](8)
	keys := make([]int, 5)
	for i := range keys {
		keys[i] = s.Add(i)
	}
	// punch three holes; reuse order must match punch order
	s.Remove(keys[3])
	s.Remove(keys[1])
	s.Remove(keys[4])
	if s.NumHoles() != 3 {
		t.Fatalf("expected 3 holes, have %d", s.NumHoles())
	}
	if k := s.Add(100); k != keys[3] {
		t.Errorf("first reuse at key %d, should be %d", k, keys[3])
	}
	if k := s.Add(101); k != keys[1] {
		t.Errorf("second reuse at key %d, should be %d", k, keys[1])
	}
	if k := s.Add(102); k != keys[4] {
		t.Errorf("third reuse at key %d, should be %d", k, keys[4])
	}
	if !s.IsDense() {
		t.Errorf("all holes reused, storage should be dense again")
	}
	if k := s.Add(103); k != 5 {
		t.Errorf("dense storage should append at key 5, appended at %d", k)
	}
}

func TestSparseHoleAccessPanics(t *testing.T) {
	s := NewSparseSlice[int](2)
	k := s.Add(42)
	s.Remove(k)
	if _, ok := s.Get(k); ok {
		t.Errorf("Get on a hole should report absence")
	}
	defer func() {
		if recover() == nil {
			t.Errorf("At on a hole should panic")
		}
	}()
	_ = s.At(k)
}

func TestSparseRawOpsRejectedWithHoles(t *testing.T) {
	s := NewSparseSlice[int](4)
	s.Add(1)
	k := s.Add(2)
	s.Add(3)
	s.Remove(k)
	defer func() {
		if recover() == nil {
			t.Errorf("raw positional removal with holes present should panic")
		}
	}()
	_ = s.RemoveAt(0)
}

func TestSparseDefragment(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := NewSparseSlice[int](8)
	keys := make([]int, 6)
	for i := range keys {
		keys[i] = s.Add(i * 10)
	}
	s.Remove(keys[0])
	s.Remove(keys[2])
	s.Remove(keys[5])
	s.Defragment()
	if !s.IsDense() || s.NumHoles() != 0 {
		t.Fatalf("storage should be dense after defragmentation")
	}
	if s.Len() != 3 {
		t.Fatalf("expected 3 live elements, have %d", s.Len())
	}
	seen := map[int]bool{}
	for i := 0; i < s.Len(); i++ {
		seen[*s.At(i)] = true
	}
	for _, want := range []int{10, 30, 40} {
		if !seen[want] {
			t.Errorf("element %d lost during defragmentation", want)
		}
	}
}

func TestSparseDefragmentAndFix(t *testing.T) {
	fx := &selfrefFix{}
	s := NewSparseSlice[selfref](8)
	keys := make([]int, 5)
	for i := range keys {
		keys[i] = s.Add(selfref{self: i})
	}
	s.Remove(keys[0])
	s.Remove(keys[2])
	s.DefragmentAndFix(fx)
	if !s.IsDense() || s.Len() != 3 {
		t.Fatalf("expected dense storage with 3 elements")
	}
	for i := 0; i < s.Len(); i++ {
		if s.At(i).self != i {
			t.Errorf("element at key %d believes it is at %d", i, s.At(i).self)
		}
	}
	if fx.moves == 0 {
		t.Errorf("compaction with holes in front must relocate elements")
	}
}

func TestSparseDefragmentDenseNoop(t *testing.T) {
	fx := &selfrefFix{}
	s := NewSparseSlice[selfref](4)
	s.Add(selfref{self: 0})
	s.Add(selfref{self: 1})
	s.DefragmentAndFix(fx)
	if fx.moves != 0 {
		t.Errorf("defragmenting a dense storage must not move anything")
	}
	if s.Len() != 2 {
		t.Errorf("dense defragmentation changed the length")
	}
}

func TestSparseRemoveAllThenReuse(t *testing.T) {
	s := NewSparseSlice[int](4)
	a := s.Add(1)
	b := s.Add(2)
	s.Remove(a)
	s.Remove(b)
	if s.Len() != 0 || s.NumHoles() != 2 {
		t.Fatalf("expected empty storage with 2 holes")
	}
	if k := s.Add(3); k != a {
		t.Errorf("oldest hole should be reused first, got key %d", k)
	}
}

func TestSparseDefragmentWithNoFix(t *testing.T) {
	// plain ints carry no cross-references, so compaction needs no
	// fixing beyond NoFix
	s := NewSparseSlice[int](8)
	keys := make([]int, 5)
	for i := range keys {
		keys[i] = s.Add(10 * i)
	}
	s.Remove(keys[1])
	s.Remove(keys[3])
	s.DefragmentAndFix(NoFix[int]{})
	if !s.IsDense() || s.Len() != 3 {
		t.Fatalf("expected dense storage with 3 elements")
	}
	want := map[int]bool{0: true, 20: true, 40: true}
	for i := 0; i < s.Len(); i++ {
		if !want[*s.At(i)] {
			t.Errorf("unexpected element %d after compaction", *s.At(i))
		}
		delete(want, *s.At(i))
	}
}
