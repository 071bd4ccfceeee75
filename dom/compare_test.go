package dom

import "testing"

func TestEqual(t *testing.T) {
	type eqTest struct {
		a, b *Node
		eq   bool
	}
	mkObj := func(keys ...string) *Node {
		o := NewObject()
		for i, k := range keys {
			o.SetMember(k, FromInt(int64(i)))
		}
		return o
	}
	tests := []eqTest{
		{Null(), Null(), true},
		{FromBool(true), FromBool(true), true},
		{FromBool(true), FromBool(false), false},
		{FromInt(1), FromInt(1), true},
		{FromInt(1), FromFloat(1), false}, // representation matters
		{FromUint(7), FromInt(7), false},
		{FromString("a"), FromString("a"), true},
		{mkObj("a", "b"), mkObj("a", "b"), true},
		{mkObj("a", "b"), mkObj("b", "a"), false}, // order matters
		{FromInt(1), FromString("1"), false},
	}
	for i, tc := range tests {
		if got := Equal(tc.a, tc.b); got != tc.eq {
			t.Errorf("case %d: Equal = %v, expected %v", i, got, tc.eq)
		}
	}

	arrA := NewArray()
	arrA.Append(FromInt(1))
	arrB := NewArray()
	arrB.Append(FromInt(1))
	arrB.Append(FromInt(2))
	if Equal(arrA, arrB) {
		t.Errorf("arrays of different length compare equal")
	}
}
