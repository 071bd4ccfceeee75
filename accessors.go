package jdoc

import (
	"fmt"

	"github.com/frametools/jdoc/dom"
	"github.com/frametools/jdoc/geom"
)

// Value is the closed set of types the accessors and the Serializer
// understand. Scalars map to Bool/Number/String nodes; the geom
// aggregates map to their fixed nested-array form.
type Value interface {
	~bool |
		~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~string |
		geom.Vec2 | geom.Vec3 | geom.Vec4 |
		geom.Mat2 | geom.Mat3 | geom.Mat4
}

// Get reads the current value as T. The node kind must match T:
// Number for numeric T, String for string, Bool for bool, Array of the
// exact expected length for aggregates. Numeric narrowing truncates.
func Get[T Value](c *Cursor) T {
	return fromNode[T](c.value)
}

// GetIndex is Get on the i-th element when the current value is an
// array; the index is ignored otherwise. Out-of-bounds indices are
// contract violations.
func GetIndex[T Value](c *Cursor, i int) T {
	return fromNode[T](elementAt(c.value, i))
}

func elementAt(n *dom.Node, i int) *dom.Node {
	if i >= 0 && n.Kind == dom.ArrayKind {
		if i >= len(n.Values) {
			panic(fmt.Sprintf("jdoc: array index out of bounds (%d/%d)", i, len(n.Values)))
		}
		return n.Values[i]
	}
	return n
}

// Set writes v as the member named name of the current object
// container, overwriting in place when the member exists (its kind may
// change) and appending otherwise. Aggregates expand to a nested
// array. The current value moves to the written member.
func Set[T Value](c *Cursor, name string, v T) {
	switch x := any(v).(type) {
	case geom.Vec2:
		setVec(c, name, x[:])
	case geom.Vec3:
		setVec(c, name, x[:])
	case geom.Vec4:
		setVec(c, name, x[:])
	case geom.Mat2:
		c.BeginArray(name)
		for i := range x {
			Push(c, x[i])
		}
		c.LeaveArray()
	case geom.Mat3:
		c.BeginArray(name)
		for i := range x {
			Push(c, x[i])
		}
		c.LeaveArray()
	case geom.Mat4:
		c.BeginArray(name)
		for i := range x {
			Push(c, x[i])
		}
		c.LeaveArray()
	default:
		top, _ := c.container()
		if top.Kind != dom.ObjectKind {
			panic(fmt.Sprintf("jdoc: Set(%q): container is %s, not Object", name, top.Kind))
		}
		c.value = top.SetMember(name, scalarNode(v))
	}
}

// SetIndex overwrites the i-th element of the current array container
// in place when it exists, else behaves as Push.
func SetIndex[T Value](c *Cursor, i int, v T) {
	top, _ := c.container()
	if top.Kind != dom.ArrayKind {
		panic(fmt.Sprintf("jdoc: SetIndex(%d): container is %s, not Array", i, top.Kind))
	}
	if i < 0 || i >= len(top.Values) {
		Push(c, v)
		return
	}
	switch any(v).(type) {
	case geom.Vec2, geom.Vec3, geom.Vec4, geom.Mat2, geom.Mat3, geom.Mat4:
		*top.Values[i] = *aggregateNode(v)
	default:
		*top.Values[i] = *scalarNode(v)
	}
	c.value = top.Values[i]
}

// Push appends v to the array at the top of the stack and moves the
// current value to the new element.
func Push[T Value](c *Cursor, v T) {
	switch x := any(v).(type) {
	case geom.Vec2:
		pushVec(c, x[:])
	case geom.Vec3:
		pushVec(c, x[:])
	case geom.Vec4:
		pushVec(c, x[:])
	case geom.Mat2:
		c.BeginArray("")
		for i := range x {
			Push(c, x[i])
		}
		c.LeaveArray()
	case geom.Mat3:
		c.BeginArray("")
		for i := range x {
			Push(c, x[i])
		}
		c.LeaveArray()
	case geom.Mat4:
		c.BeginArray("")
		for i := range x {
			Push(c, x[i])
		}
		c.LeaveArray()
	default:
		top, _ := c.container()
		if top.Kind != dom.ArrayKind {
			panic(fmt.Sprintf("jdoc: Push: container is %s, not Array", top.Kind))
		}
		c.value = top.Append(scalarNode(v))
	}
}

func setVec(c *Cursor, name string, comps []float32) {
	c.BeginArray(name)
	for _, f := range comps {
		Push(c, f)
	}
	c.LeaveArray()
}

func pushVec(c *Cursor, comps []float32) {
	c.BeginArray("")
	for _, f := range comps {
		Push(c, f)
	}
	c.LeaveArray()
}

// scalarNode builds the node form of a non-aggregate value.
func scalarNode[T Value](v T) *dom.Node {
	switch x := any(v).(type) {
	case bool:
		return dom.FromBool(x)
	case int8:
		return dom.FromInt(int64(x))
	case int16:
		return dom.FromInt(int64(x))
	case int32:
		return dom.FromInt(int64(x))
	case int64:
		return dom.FromInt(x)
	case uint8:
		return dom.FromUint(uint64(x))
	case uint16:
		return dom.FromUint(uint64(x))
	case uint32:
		return dom.FromUint(uint64(x))
	case uint64:
		return dom.FromUint(x)
	case float32:
		return dom.FromFloat(float64(x))
	case float64:
		return dom.FromFloat(x)
	case string:
		return dom.FromString(x)
	default:
		panic(fmt.Sprintf("jdoc: not a scalar: %T", v))
	}
}

// aggregateNode builds the nested-array node form of a vec or mat
// without touching any cursor.
func aggregateNode[T Value](v T) *dom.Node {
	switch x := any(v).(type) {
	case geom.Vec2:
		return vecNode(x[:])
	case geom.Vec3:
		return vecNode(x[:])
	case geom.Vec4:
		return vecNode(x[:])
	case geom.Mat2:
		arr := dom.NewArray()
		for i := range x {
			arr.Append(vecNode(x[i][:]))
		}
		return arr
	case geom.Mat3:
		arr := dom.NewArray()
		for i := range x {
			arr.Append(vecNode(x[i][:]))
		}
		return arr
	case geom.Mat4:
		arr := dom.NewArray()
		for i := range x {
			arr.Append(vecNode(x[i][:]))
		}
		return arr
	default:
		panic(fmt.Sprintf("jdoc: not an aggregate: %T", v))
	}
}

func vecNode(comps []float32) *dom.Node {
	arr := dom.NewArray()
	for _, f := range comps {
		arr.Append(dom.FromFloat(float64(f)))
	}
	return arr
}

// fromNode is the read side of the closed dispatch.
func fromNode[T Value](n *dom.Node) T {
	var out T
	switch p := any(&out).(type) {
	case *bool:
		requireKind(n, dom.BoolKind, "bool")
		*p = n.Bool
	case *int8:
		requireKind(n, dom.NumberKind, "int8")
		*p = int8(n.AsInt64())
	case *int16:
		requireKind(n, dom.NumberKind, "int16")
		*p = int16(n.AsInt64())
	case *int32:
		requireKind(n, dom.NumberKind, "int32")
		*p = int32(n.AsInt64())
	case *int64:
		requireKind(n, dom.NumberKind, "int64")
		*p = n.AsInt64()
	case *uint8:
		requireKind(n, dom.NumberKind, "uint8")
		*p = uint8(n.AsUint64())
	case *uint16:
		requireKind(n, dom.NumberKind, "uint16")
		*p = uint16(n.AsUint64())
	case *uint32:
		requireKind(n, dom.NumberKind, "uint32")
		*p = uint32(n.AsUint64())
	case *uint64:
		requireKind(n, dom.NumberKind, "uint64")
		*p = n.AsUint64()
	case *float32:
		requireKind(n, dom.NumberKind, "float32")
		*p = float32(n.AsFloat64())
	case *float64:
		requireKind(n, dom.NumberKind, "float64")
		*p = n.AsFloat64()
	case *string:
		requireKind(n, dom.StringKind, "string")
		*p = n.Str
	case *geom.Vec2:
		copy(p[:], vecFromNode(n, 2, "Vec2"))
	case *geom.Vec3:
		copy(p[:], vecFromNode(n, 3, "Vec3"))
	case *geom.Vec4:
		copy(p[:], vecFromNode(n, 4, "Vec4"))
	case *geom.Mat2:
		for i := range p {
			copy(p[i][:], vecFromNode(rowAt(n, i, 2, "Mat2"), 2, "Mat2 row"))
		}
	case *geom.Mat3:
		for i := range p {
			copy(p[i][:], vecFromNode(rowAt(n, i, 3, "Mat3"), 3, "Mat3 row"))
		}
	case *geom.Mat4:
		for i := range p {
			copy(p[i][:], vecFromNode(rowAt(n, i, 4, "Mat4"), 4, "Mat4 row"))
		}
	default:
		panic(fmt.Sprintf("jdoc: unsupported value type %T", out))
	}
	return out
}

func requireKind(n *dom.Node, kind dom.Kind, what string) {
	if n.Kind != kind {
		panic(fmt.Sprintf("jdoc: get %s: node is %s, not %s", what, n.Kind, kind))
	}
}

func vecFromNode(n *dom.Node, size int, what string) []float32 {
	requireKind(n, dom.ArrayKind, what)
	if len(n.Values) != size {
		panic(fmt.Sprintf("jdoc: invalid %s, size = %d", what, len(n.Values)))
	}
	comps := make([]float32, size)
	for i, v := range n.Values {
		requireKind(v, dom.NumberKind, what+" component")
		comps[i] = float32(v.AsFloat64())
	}
	return comps
}

func rowAt(n *dom.Node, i, size int, what string) *dom.Node {
	requireKind(n, dom.ArrayKind, what)
	if len(n.Values) != size {
		panic(fmt.Sprintf("jdoc: invalid %s, size = %d (should be %d rows)", what, len(n.Values), size))
	}
	return n.Values[i]
}
