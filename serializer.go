package jdoc

import (
	"bytes"
	"fmt"

	"github.com/frametools/jdoc/dom"
)

// Mode is the direction of a Serializer.
type Mode int

const (
	ModeRead Mode = iota
	ModeWrite
)

func (m Mode) String() string {
	switch m {
	case ModeRead:
		return "Read"
	case ModeWrite:
		return "Write"
	default:
		return "<unknown mode>"
	}
}

// Serializer is a direction-aware facade over a Cursor and the typed
// accessors: one traversal function drives both parsing and building a
// document. Every composite call has a named form (object member) and
// an item form (next array element); the item form requires the
// serializer to currently be inside an array, the named form requires
// it not to be.
//
// In Read mode entering a scope or reading a value can fail: the call
// returns false when the member is absent, of the wrong container
// kind, or the array is exhausted, which gives callers graceful
// degradation on missing fields. In Write mode calls always succeed;
// there is no equivalent signal while authoring.
type Serializer struct {
	cur  *Cursor
	mode Mode
}

func NewSerializer(doc *Document, mode Mode) *Serializer {
	return &Serializer{cur: NewCursor(doc), mode: mode}
}

func (s *Serializer) Mode() Mode {
	return s.mode
}

// Cursor exposes the underlying cursor for callers that need to mix
// raw navigation into a traversal.
func (s *Serializer) Cursor() *Cursor {
	return s.cur
}

// InsideArray reports whether the container at the top of the stack is
// an array. It is derived state, not a flag.
func (s *Serializer) InsideArray() bool {
	top, _ := s.cur.container()
	return top.Kind == dom.ArrayKind
}

// BeginObject enters the object member named name, creating it first
// in Write mode. The matching EndObject pops it.
func (s *Serializer) BeginObject(name string) bool {
	s.mustBeNamed("BeginObject")
	if s.mode == ModeRead {
		if !s.cur.Find(name) {
			return false
		}
		return s.cur.EnterObject()
	}
	s.cur.BeginObject(name)
	return true
}

// BeginObjectItem enters the next array element, which must be an
// object; in Write mode a new element is appended.
func (s *Serializer) BeginObjectItem() bool {
	s.mustBeItem("BeginObjectItem")
	if s.mode == ModeRead {
		if !s.cur.Next() {
			return false
		}
		return s.cur.EnterObject()
	}
	s.cur.BeginObject("")
	return true
}

func (s *Serializer) EndObject() {
	s.cur.LeaveObject()
}

// BeginArray enters the array member named name, creating it first in
// Write mode. The matching EndArray pops it.
func (s *Serializer) BeginArray(name string) bool {
	s.mustBeNamed("BeginArray")
	if s.mode == ModeRead {
		if !s.cur.Find(name) {
			return false
		}
		return s.cur.EnterArray()
	}
	s.cur.BeginArray(name)
	return true
}

func (s *Serializer) BeginArrayItem() bool {
	s.mustBeItem("BeginArrayItem")
	if s.mode == ModeRead {
		if !s.cur.Next() {
			return false
		}
		return s.cur.EnterArray()
	}
	s.cur.BeginArray("")
	return true
}

func (s *Serializer) EndArray() {
	s.cur.LeaveArray()
}

// ArrayLen returns the length of the enclosing array, -1 outside one.
func (s *Serializer) ArrayLen() int {
	return s.cur.ArrayLen()
}

func (s *Serializer) mustBeNamed(op string) {
	if s.InsideArray() {
		panic(fmt.Sprintf("jdoc: %s: named form called inside an array", op))
	}
}

func (s *Serializer) mustBeItem(op string) {
	if !s.InsideArray() {
		panic(fmt.Sprintf("jdoc: %s: item form called outside an array", op))
	}
}

// Field serializes the object member named name through v. Read mode:
// when the member exists its value is read into v and Field returns
// true; otherwise v is untouched and Field returns false. Write mode:
// the member is written from v and Field returns true.
func Field[T Value](s *Serializer, name string, v *T) bool {
	s.mustBeNamed("Field")
	if s.mode == ModeRead {
		if !s.cur.Find(name) {
			return false
		}
		*v = Get[T](s.cur)
		return true
	}
	Set(s.cur, name, *v)
	return true
}

// Item serializes the next array element through v. Read mode: false
// once the array is exhausted, v untouched. Write mode: v is pushed.
func Item[T Value](s *Serializer, v *T) bool {
	s.mustBeItem("Item")
	if s.mode == ModeRead {
		if !s.cur.Next() {
			return false
		}
		*v = Get[T](s.cur)
		return true
	}
	Push(s.cur, *v)
	return true
}

// String is the two-pass size-probe protocol for the member named
// name. Read mode with a nil buf returns the required length without
// copying (0 when absent); with a buffer it copies the bytes plus a
// terminating NUL, so callers allocate length+1 between the calls.
// Write mode requires a buffer (NUL-terminated or full) and writes it
// as the member's value. The return is the string length, 0 on a
// missed read.
func (s *Serializer) String(name string, buf []byte) int {
	s.mustBeNamed("String")
	if s.mode == ModeRead {
		if !s.cur.Find(name) {
			return 0
		}
		return fillString(Get[string](s.cur), buf)
	}
	if buf == nil {
		panic("jdoc: String: nil buffer in Write mode")
	}
	str := bufToString(buf)
	Set(s.cur, name, str)
	return len(str)
}

// StringItem is String for array elements. The probing call (nil buf)
// advances to the next element; the copying call reads the element the
// probe stopped on.
func (s *Serializer) StringItem(buf []byte) int {
	s.mustBeItem("StringItem")
	if s.mode == ModeRead {
		if buf == nil {
			if !s.cur.Next() {
				return 0
			}
			return len(Get[string](s.cur))
		}
		return fillString(Get[string](s.cur), buf)
	}
	if buf == nil {
		panic("jdoc: StringItem: nil buffer in Write mode")
	}
	str := bufToString(buf)
	Push(s.cur, str)
	return len(str)
}

// StringField is the convenience form of the probe protocol: in Read
// mode it sizes and fills v in one call, performing the two passes
// internally. It reports whether a non-empty string moved.
func StringField(s *Serializer, name string, v *string) bool {
	s.mustBeNamed("StringField")
	if s.mode == ModeRead {
		n := s.String(name, nil)
		if n == 0 {
			return false
		}
		buf := make([]byte, n+1)
		s.String(name, buf)
		*v = string(buf[:n])
		return true
	}
	return s.String(name, append([]byte(*v), 0)) != 0
}

// StringItemField is StringField for array elements.
func StringItemField(s *Serializer, v *string) bool {
	s.mustBeItem("StringItemField")
	if s.mode == ModeRead {
		n := s.StringItem(nil)
		if n == 0 {
			return false
		}
		buf := make([]byte, n+1)
		s.StringItem(buf)
		*v = string(buf[:n])
		return true
	}
	return s.StringItem(append([]byte(*v), 0)) != 0
}

func fillString(str string, buf []byte) int {
	if buf == nil {
		return len(str)
	}
	if len(buf) < len(str)+1 {
		panic(fmt.Sprintf("jdoc: string buffer too small (%d/%d)", len(buf), len(str)+1))
	}
	n := copy(buf, str)
	buf[n] = 0
	return len(str)
}

func bufToString(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		return string(buf[:i])
	}
	return string(buf)
}
