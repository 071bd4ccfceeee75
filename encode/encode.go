package encode

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/frametools/jdoc/dom"

	json "github.com/goccy/go-json"
)

type encState struct {
	depth  int
	indent string
	inline bool

	Color func(dom.Kind, ColorAttr, string) string
}

// Encode writes the canonical text form of a tree: object members one
// per line indented one tab per nesting level, arrays always on a
// single physical line regardless of what they contain, and a trailing
// newline after the top-level value. Equal trees always encode to
// identical bytes.
func Encode(node *dom.Node, w io.Writer, opts ...Option) error {
	es := &encState{indent: "\t"}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encode(node *dom.Node, w io.Writer, es *encState) error {
	switch node.Kind {
	case dom.ObjectKind:
		return encodeObject(node, w, es)
	case dom.ArrayKind:
		return encodeArray(node, w, es)
	case dom.StringKind:
		return encodeString(node.Str, dom.StringKind, w, es)
	case dom.NumberKind:
		return encodeNumber(node, w, es)
	case dom.BoolKind:
		return writeValue(w, es, dom.BoolKind, strconv.FormatBool(node.Bool))
	case dom.NullKind:
		return writeValue(w, es, dom.NullKind, "null")
	default:
		panic("kind")
	}
}

func encodeObject(node *dom.Node, w io.Writer, es *encState) error {
	n := len(node.Fields)
	if n == 0 {
		return writeValue(w, es, dom.ObjectKind, "{}")
	}
	if es.inline {
		return encodeObjectInline(node, w, es)
	}
	if err := writeValue(w, es, dom.ObjectKind, "{"); err != nil {
		return err
	}
	es.depth++
	for i := range node.Fields {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encodeKey(node.Fields[i].Str, w, es); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
		if i != n-1 {
			if err := writeSep(w, es, dom.ObjectKind, ","); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeValue(w, es, dom.ObjectKind, "}")
}

func encodeObjectInline(node *dom.Node, w io.Writer, es *encState) error {
	if err := writeValue(w, es, dom.ObjectKind, "{"); err != nil {
		return err
	}
	n := len(node.Fields)
	for i := range node.Fields {
		if err := encodeKey(node.Fields[i].Str, w, es); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
		if i != n-1 {
			if err := writeSep(w, es, dom.ObjectKind, ", "); err != nil {
				return err
			}
		}
	}
	return writeValue(w, es, dom.ObjectKind, "}")
}

// encodeArray keeps the whole array on one line, nested containers
// included, so numeric aggregates stay compact.
func encodeArray(node *dom.Node, w io.Writer, es *encState) error {
	if err := writeValue(w, es, dom.ArrayKind, "["); err != nil {
		return err
	}
	inline := es.inline
	es.inline = true
	n := len(node.Values)
	for i, v := range node.Values {
		if err := encode(v, w, es); err != nil {
			return err
		}
		if i != n-1 {
			if err := writeSep(w, es, dom.ArrayKind, ", "); err != nil {
				return err
			}
		}
	}
	es.inline = inline
	return writeValue(w, es, dom.ArrayKind, "]")
}

func encodeKey(key string, w io.Writer, es *encState) error {
	q, err := quote(key)
	if err != nil {
		return err
	}
	if es.Color != nil {
		q = es.Color(dom.ObjectKind, FieldColor, q)
	}
	if err := writeString(w, q); err != nil {
		return err
	}
	return writeString(w, ": ")
}

func encodeString(v string, kind dom.Kind, w io.Writer, es *encState) error {
	q, err := quote(v)
	if err != nil {
		return err
	}
	return writeValue(w, es, kind, q)
}

func encodeNumber(node *dom.Node, w io.Writer, es *encState) error {
	switch {
	case node.Int64 != nil:
		return writeValue(w, es, dom.NumberKind, strconv.FormatInt(*node.Int64, 10))
	case node.Uint64 != nil:
		return writeValue(w, es, dom.NumberKind, strconv.FormatUint(*node.Uint64, 10))
	case node.Float64 != nil:
		return writeFloat(*node.Float64, w, es)
	default:
		panic("number")
	}
}

// writeFloat uses the shortest representation that round-trips the
// value. Integral floats come out without a decimal point and reload
// as integers; the numeric readers accept either representation.
func writeFloat(f float64, w io.Writer, es *encState) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ErrNonFinite
	}
	return writeValue(w, es, dom.NumberKind, strconv.FormatFloat(f, 'g', -1, 64))
}

func quote(v string) (string, error) {
	d, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

func writeValue(w io.Writer, es *encState, kind dom.Kind, v string) error {
	if es.Color != nil {
		v = es.Color(kind, ValueColor, v)
	}
	return writeString(w, v)
}

func writeSep(w io.Writer, es *encState, kind dom.Kind, sep string) error {
	if es.Color != nil {
		sep = es.Color(kind, SepColor, sep)
	}
	return writeString(w, sep)
}

func writeNL(w io.Writer, es *encState) error {
	return writeString(w, "\n"+strings.Repeat(es.indent, es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
