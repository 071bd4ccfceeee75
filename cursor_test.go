package jdoc

import (
	"testing"

	"github.com/frametools/jdoc/dom"
)

func loadDoc(t *testing.T, in string) *Document {
	t.Helper()
	doc := New()
	if err := doc.Load([]byte(in)); err != nil {
		t.Fatalf("error loading %q: %v", in, err)
	}
	return doc
}

func mustPanic(t *testing.T, what string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", what)
		}
	}()
	f()
}

func TestFind(t *testing.T) {
	doc := loadDoc(t, `{"a": 1, "b": "x"}`)
	cur := NewCursor(doc)
	if !cur.Find("a") {
		t.Fatalf("Find(a) = false")
	}
	if cur.Kind() != dom.NumberKind {
		t.Errorf("current kind %s", cur.Kind())
	}
	if cur.Find("missing") {
		t.Errorf("Find(missing) = true")
	}
	// a miss leaves the current value unchanged
	if cur.Kind() != dom.NumberKind {
		t.Errorf("current value moved on a miss")
	}
}

func TestNextExhaustion(t *testing.T) {
	doc := loadDoc(t, `{"xs": [10, 20, 30]}`)
	cur := NewCursor(doc)
	if !cur.Find("xs") || !cur.EnterArray() {
		t.Fatalf("setup failed")
	}
	for i := 0; i < 3; i++ {
		if !cur.Next() {
			t.Fatalf("Next %d = false", i)
		}
		if got := Get[int32](cur); got != int32(10*(i+1)) {
			t.Errorf("element %d = %d", i, got)
		}
	}
	if cur.Next() {
		t.Errorf("Next past the end = true")
	}
	if cur.Next() {
		t.Errorf("Next after exhaustion = true")
	}
}

func TestNextOverObjectMembers(t *testing.T) {
	doc := loadDoc(t, `{"z": 1, "a": 2}`)
	cur := NewCursor(doc)
	if !cur.EnterObject() {
		t.Fatalf("EnterObject root = false")
	}
	var got []int64
	for cur.Next() {
		got = append(got, Get[int64](cur))
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("values in order: %v", got)
	}
}

func TestEnterLeave(t *testing.T) {
	doc := loadDoc(t, `{"o": {"k": 1}, "xs": []}`)
	cur := NewCursor(doc)

	cur.Find("o")
	if cur.EnterArray() {
		t.Errorf("EnterArray on an object = true")
	}
	if cur.Depth() != 0 {
		t.Errorf("failed enter grew the stack")
	}
	if !cur.EnterObject() {
		t.Fatalf("EnterObject = false")
	}
	if cur.Depth() != 1 {
		t.Errorf("depth %d", cur.Depth())
	}
	cur.LeaveObject()
	if cur.Kind() != dom.ObjectKind {
		t.Errorf("leave did not restore the container as current value")
	}

	cur.Find("xs")
	cur.EnterArray()
	mustPanic(t, "LeaveObject on array frame", cur.LeaveObject)
}

func TestLeaveEmptyStack(t *testing.T) {
	doc := loadDoc(t, `{}`)
	cur := NewCursor(doc)
	mustPanic(t, "LeaveObject with empty stack", cur.LeaveObject)
}

func TestFindOnNonObject(t *testing.T) {
	doc := loadDoc(t, `{"xs": [1]}`)
	cur := NewCursor(doc)
	cur.Find("xs")
	cur.EnterArray()
	mustPanic(t, "Find inside array", func() { cur.Find("k") })
}

func TestNextOnScalar(t *testing.T) {
	doc := loadDoc(t, `3`)
	cur := NewCursor(doc)
	mustPanic(t, "Next on scalar root", func() { cur.Next() })
}

func TestArrayLen(t *testing.T) {
	doc := loadDoc(t, `{"xs": [1, 2, 3]}`)
	cur := NewCursor(doc)
	if got := cur.ArrayLen(); got != -1 {
		t.Errorf("ArrayLen outside array = %d, expected -1", got)
	}
	cur.Find("xs")
	cur.EnterArray()
	if got := cur.ArrayLen(); got != 3 {
		t.Errorf("ArrayLen = %d", got)
	}
}

// the root is treated as present even when it is not an object, so a
// scalar document can still be inspected
func TestScalarRoot(t *testing.T) {
	doc := loadDoc(t, `"solo"`)
	cur := NewCursor(doc)
	if cur.Kind() != dom.StringKind {
		t.Errorf("kind %s", cur.Kind())
	}
	if got := Get[string](cur); got != "solo" {
		t.Errorf("value %q", got)
	}
}
