package dom

// Node is one element of a document tree. Exactly the fields implied by
// Kind are meaningful: Str for StringKind, Bool for BoolKind, one of
// Int64/Uint64/Float64 for NumberKind, Values for ArrayKind, and the
// parallel Fields/Values slices for ObjectKind. Fields holds StringKind
// key nodes; Fields[i] names Values[i] and members stay in insertion
// order.
type Node struct {
	Kind   Kind
	Fields []*Node
	Values []*Node

	Str  string
	Bool bool

	Int64   *int64
	Uint64  *uint64
	Float64 *float64
}

func Null() *Node {
	return &Node{Kind: NullKind}
}

func FromBool(v bool) *Node {
	return &Node{Kind: BoolKind, Bool: v}
}

func FromString(v string) *Node {
	return &Node{Kind: StringKind, Str: v}
}

func FromInt(v int64) *Node {
	return &Node{Kind: NumberKind, Int64: &v}
}

func FromUint(v uint64) *Node {
	return &Node{Kind: NumberKind, Uint64: &v}
}

func FromFloat(v float64) *Node {
	return &Node{Kind: NumberKind, Float64: &v}
}

func NewObject() *Node {
	return &Node{Kind: ObjectKind}
}

func NewArray() *Node {
	return &Node{Kind: ArrayKind}
}

// Len returns the member count for objects and the element count for
// arrays, 0 for leaves.
func (n *Node) Len() int {
	return len(n.Values)
}

// IndexOf returns the position of the member named key, or -1.
func (n *Node) IndexOf(key string) int {
	for i := range n.Fields {
		if n.Fields[i].Str == key {
			return i
		}
	}
	return -1
}

// Get returns the value of the member named key, or nil.
func (n *Node) Get(key string) *Node {
	if i := n.IndexOf(key); i >= 0 {
		return n.Values[i]
	}
	return nil
}

// SetMember overwrites the member named key in place when it exists,
// otherwise appends a new member. It returns the node holding the value.
func (n *Node) SetMember(key string, v *Node) *Node {
	if i := n.IndexOf(key); i >= 0 {
		*n.Values[i] = *v
		return n.Values[i]
	}
	n.Fields = append(n.Fields, FromString(key))
	n.Values = append(n.Values, v)
	return v
}

// Append adds v as the last array element.
func (n *Node) Append(v *Node) *Node {
	n.Values = append(n.Values, v)
	return v
}

// AsInt64 reads a Number node as a signed integer, truncating floats.
func (n *Node) AsInt64() int64 {
	switch {
	case n.Int64 != nil:
		return *n.Int64
	case n.Uint64 != nil:
		return int64(*n.Uint64)
	case n.Float64 != nil:
		return int64(*n.Float64)
	}
	panic("jdoc: not a number: " + n.Kind.String())
}

// AsUint64 reads a Number node as an unsigned integer, truncating floats.
func (n *Node) AsUint64() uint64 {
	switch {
	case n.Uint64 != nil:
		return *n.Uint64
	case n.Int64 != nil:
		return uint64(*n.Int64)
	case n.Float64 != nil:
		return uint64(*n.Float64)
	}
	panic("jdoc: not a number: " + n.Kind.String())
}

// AsFloat64 reads a Number node as a float.
func (n *Node) AsFloat64() float64 {
	switch {
	case n.Float64 != nil:
		return *n.Float64
	case n.Int64 != nil:
		return float64(*n.Int64)
	case n.Uint64 != nil:
		return float64(*n.Uint64)
	}
	panic("jdoc: not a number: " + n.Kind.String())
}

func (n *Node) Clone() *Node {
	res := &Node{}
	n.cloneTo(res)
	return res
}

func (n *Node) cloneTo(dst *Node) {
	dst.Kind = n.Kind
	dst.Str = n.Str
	dst.Bool = n.Bool
	if n.Int64 != nil {
		i := *n.Int64
		dst.Int64 = &i
	}
	if n.Uint64 != nil {
		u := *n.Uint64
		dst.Uint64 = &u
	}
	if n.Float64 != nil {
		f := *n.Float64
		dst.Float64 = &f
	}
	if n.Fields != nil {
		dst.Fields = make([]*Node, len(n.Fields))
		for i, f := range n.Fields {
			dst.Fields[i] = f.Clone()
		}
	}
	if n.Values != nil {
		dst.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			dst.Values[i] = v.Clone()
		}
	}
}

// Visit walks the tree depth first, calling f before and after the
// values of each node. Returning false from the pre call skips the
// node's values.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range n.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
