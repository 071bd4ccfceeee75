// Package parse turns document text into a dom tree.
//
// Tokenizing is delegated to goccy/go-json; this package only maps the
// token stream onto dom nodes, preserving object member order and
// deciding how each numeric literal is represented.
package parse

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/frametools/jdoc/dom"

	json "github.com/goccy/go-json"
)

func Parse(d []byte) (*dom.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	tok, err := dec.Token()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty input", ErrParse)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	res, err := parseValue(dec, tok)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after document", ErrParse)
	}
	return res, nil
}

func parseValue(dec *json.Decoder, tok json.Token) (*dom.Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		default:
			return nil, fmt.Errorf("%w: unexpected %q", ErrParse, t.String())
		}
	case string:
		return dom.FromString(t), nil
	case bool:
		return dom.FromBool(t), nil
	case json.Number:
		return numberNode(t.String()), nil
	case nil:
		return dom.Null(), nil
	default:
		return nil, fmt.Errorf("%w: unexpected token %v", ErrParse, tok)
	}
}

func parseObject(dec *json.Decoder) (*dom.Node, error) {
	obj := dom.NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key %v is not a string", ErrParse, keyTok)
		}
		valTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		val, err := parseValue(dec, valTok)
		if err != nil {
			return nil, err
		}
		// duplicate keys overwrite in place, last wins
		obj.SetMember(key, val)
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return obj, nil
}

func parseArray(dec *json.Decoder) (*dom.Node, error) {
	arr := dom.NewArray()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		elt, err := parseValue(dec, tok)
		if err != nil {
			return nil, err
		}
		arr.Append(elt)
	}
	if _, err := dec.Token(); err != nil { // consume ']'
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return arr, nil
}

// numberNode decides whether a numeric literal is an integer or a
// float. The rule is historical and kept for compatibility with
// persisted files: convert the literal both ways, take whichever side
// is nonzero when the other is zero, and otherwise treat the literal
// as a float iff it contains one of ".eEnN". Integer literals beyond
// the int64 range fall back to uint64.
func numberNode(lit string) *dom.Node {
	i, iErr := strconv.ParseInt(lit, 10, 64)
	if iErr != nil {
		if u, uErr := strconv.ParseUint(lit, 10, 64); uErr == nil {
			return dom.FromUint(u)
		}
		i = 0
	}
	f, fErr := strconv.ParseFloat(lit, 64)
	if fErr != nil {
		f = 0
	}
	switch {
	case f == 0 && i != 0:
		return dom.FromInt(i)
	case i == 0 && f != 0:
		return dom.FromFloat(f)
	default:
		if strings.ContainsAny(lit, ".eEnN") {
			return dom.FromFloat(f)
		}
		return dom.FromInt(i)
	}
}
