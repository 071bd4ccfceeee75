package dom

import (
	"testing"
)

func TestObjectMembers(t *testing.T) {
	obj := NewObject()
	obj.SetMember("b", FromInt(1))
	obj.SetMember("a", FromInt(2))
	obj.SetMember("c", FromString("x"))

	if obj.Len() != 3 {
		t.Fatalf("expected 3 members, got %d", obj.Len())
	}
	for i, want := range []string{"b", "a", "c"} {
		if obj.Fields[i].Str != want {
			t.Errorf("member %d: expected key %q, got %q", i, want, obj.Fields[i].Str)
		}
	}
	if got := obj.Get("a"); got == nil || *got.Int64 != 2 {
		t.Errorf("Get(a): %v", got)
	}
	if obj.Get("missing") != nil {
		t.Errorf("Get(missing): expected nil")
	}
}

func TestSetMemberOverwritesInPlace(t *testing.T) {
	obj := NewObject()
	obj.SetMember("k", FromInt(1))
	before := obj.Get("k")
	obj.SetMember("k", FromString("now a string"))
	after := obj.Get("k")
	if before != after {
		t.Errorf("overwrite allocated a new node")
	}
	if after.Kind != StringKind || after.Str != "now a string" {
		t.Errorf("overwrite: got %s %q", after.Kind, after.Str)
	}
	if obj.Len() != 1 {
		t.Errorf("overwrite duplicated the member")
	}
}

func TestNumberReaders(t *testing.T) {
	if got := FromFloat(3.9).AsInt64(); got != 3 {
		t.Errorf("AsInt64(3.9) = %d", got)
	}
	if got := FromInt(-2).AsFloat64(); got != -2.0 {
		t.Errorf("AsFloat64(-2) = %v", got)
	}
	if got := FromUint(1 << 63).AsUint64(); got != 1<<63 {
		t.Errorf("AsUint64 = %d", got)
	}
}

func TestClone(t *testing.T) {
	obj := NewObject()
	arr := NewArray()
	arr.Append(FromInt(1))
	obj.SetMember("xs", arr)

	cp := obj.Clone()
	if !Equal(obj, cp) {
		t.Fatalf("clone differs from original")
	}
	cp.Get("xs").Append(FromInt(2))
	if Equal(obj, cp) {
		t.Errorf("clone shares storage with original")
	}
}

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatalf("marshal %s: %v", k, err)
		}
		var back Kind
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("unmarshal %q: %v", d, err)
		}
		if back != k {
			t.Errorf("round trip %s != %s", back, k)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("Junk")); err == nil {
		t.Errorf("expected error for unknown kind")
	}
}
