package dom

// Equal reports deep structural equality of two trees. Object member
// order is significant, as is the numeric representation a Number node
// carries: an int64 1 and a float64 1.0 are not equal.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case NullKind:
		return true
	case BoolKind:
		return a.Bool == b.Bool
	case StringKind:
		return a.Str == b.Str
	case NumberKind:
		return equalNumbers(a, b)
	case ArrayKind:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ObjectKind:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if a.Fields[i].Str != b.Fields[i].Str {
				return false
			}
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func equalNumbers(a, b *Node) bool {
	switch {
	case a.Int64 != nil:
		return b.Int64 != nil && *a.Int64 == *b.Int64
	case a.Uint64 != nil:
		return b.Uint64 != nil && *a.Uint64 == *b.Uint64
	case a.Float64 != nil:
		return b.Float64 != nil && *a.Float64 == *b.Float64
	}
	return false
}
