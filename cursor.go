package jdoc

import (
	"fmt"

	"github.com/frametools/jdoc/debug"
	"github.com/frametools/jdoc/dom"
)

// frame pairs a container node with a 0-based iteration index into it.
type frame struct {
	node *dom.Node
	iter int
}

// Cursor is navigational state over a Document: a stack of frames
// modelling the path from the root, plus the floating current-value
// reference set by every navigation call. The current value is
// meaningful only between navigation calls and always refers to a node
// reachable from the top frame (or the root when the stack is empty).
// A Cursor owns nothing and must not outlive its Document.
type Cursor struct {
	doc      *Document
	stack    []frame
	rootIter int
	value    *dom.Node
}

func NewCursor(doc *Document) *Cursor {
	return &Cursor{doc: doc, value: doc.root}
}

// Value returns the current value.
func (c *Cursor) Value() *dom.Node {
	return c.value
}

// Kind returns the kind of the current value.
func (c *Cursor) Kind() dom.Kind {
	return c.value.Kind
}

// Depth returns the nesting depth, the number of frames on the stack.
func (c *Cursor) Depth() int {
	return len(c.stack)
}

// container resolves the frame at the top of the stack, or the root
// when the stack is empty.
func (c *Cursor) container() (*dom.Node, *int) {
	if len(c.stack) == 0 {
		return c.doc.root, &c.rootIter
	}
	f := &c.stack[len(c.stack)-1]
	return f.node, &f.iter
}

// Find sets the current value to the member named name and returns
// true, or returns false leaving the current value unchanged. The
// container at the top of the stack must be an object.
func (c *Cursor) Find(name string) bool {
	top, _ := c.container()
	if top.Kind != dom.ObjectKind {
		panic(fmt.Sprintf("jdoc: Find(%q): container is %s, not Object", name, top.Kind))
	}
	if i := top.IndexOf(name); i >= 0 {
		c.value = top.Values[i]
		return true
	}
	return false
}

// Next advances the top frame's iteration index and sets the current
// value to the element (array) or member value (object, insertion
// order) at it. It returns false once the container is exhausted,
// without advancing further.
func (c *Cursor) Next() bool {
	top, iter := c.container()
	switch top.Kind {
	case dom.ArrayKind, dom.ObjectKind:
		if *iter >= len(top.Values) {
			return false
		}
		c.value = top.Values[*iter]
		*iter++
		return true
	default:
		panic(fmt.Sprintf("jdoc: Next: container is %s, not Array or Object", top.Kind))
	}
}

// EnterObject pushes a frame for the current value. It returns false,
// leaving the stack unchanged, when the current value is not an
// object.
func (c *Cursor) EnterObject() bool {
	return c.enter(dom.ObjectKind)
}

// EnterArray pushes a frame for the current value. It returns false,
// leaving the stack unchanged, when the current value is not an array.
func (c *Cursor) EnterArray() bool {
	return c.enter(dom.ArrayKind)
}

func (c *Cursor) enter(kind dom.Kind) bool {
	if c.value.Kind != kind {
		return false
	}
	if n := len(c.stack); n > 0 && c.stack[n-1].node == c.value {
		// probably a mistake, entered the same container twice?
		panic("jdoc: enter: current value is already the top frame")
	}
	c.stack = append(c.stack, frame{node: c.value})
	return true
}

// LeaveObject pops the top frame, which must reference an object, and
// sets the current value back to it.
func (c *Cursor) LeaveObject() {
	c.leave(dom.ObjectKind)
}

// LeaveArray pops the top frame, which must reference an array, and
// sets the current value back to it.
func (c *Cursor) LeaveArray() {
	c.leave(dom.ArrayKind)
}

func (c *Cursor) leave(kind dom.Kind) {
	n := len(c.stack)
	if n == 0 {
		panic("jdoc: leave: empty stack")
	}
	f := c.stack[n-1]
	if f.node.Kind != kind {
		panic(fmt.Sprintf("jdoc: leave: top frame is %s, not %s", f.node.Kind, kind))
	}
	c.stack = c.stack[:n-1]
	c.value = f.node
}

// ArrayLen returns the size of the container at the top of the stack
// when it is an array, else -1.
func (c *Cursor) ArrayLen() int {
	top, _ := c.container()
	if top.Kind == dom.ArrayKind {
		return len(top.Values)
	}
	return -1
}

// BeginObject finds the member named name and enters it, creating an
// empty object member first when absent. Inside an array a new element
// is appended instead and name, which is meaningless there, is
// ignored. The only navigation calls that create are BeginObject and
// BeginArray.
func (c *Cursor) BeginObject(name string) {
	c.begin(name, dom.ObjectKind)
}

// BeginArray is BeginObject for array members.
func (c *Cursor) BeginArray(name string) {
	c.begin(name, dom.ArrayKind)
}

func (c *Cursor) begin(name string, kind dom.Kind) {
	top, _ := c.container()
	if name != "" && top.Kind == dom.ObjectKind && c.Find(name) {
		// already existed, check the kind
		if c.value.Kind != kind {
			panic(fmt.Sprintf("jdoc: begin: %q is %s, not %s", name, c.value.Kind, kind))
		}
	} else {
		n := &dom.Node{Kind: kind}
		switch top.Kind {
		case dom.ArrayKind:
			if name != "" {
				debug.Warnf("calling begin inside an array, name %q will be ignored", name)
			}
			top.Append(n)
		case dom.ObjectKind:
			if name == "" {
				panic("jdoc: begin: empty name in object context")
			}
			top.SetMember(name, n)
		default:
			panic(fmt.Sprintf("jdoc: begin: container is %s, not Array or Object", top.Kind))
		}
		c.value = n
	}
	if !c.enter(kind) {
		panic("jdoc: begin: enter failed")
	}
}
