package parse

import "errors"

var (
	// ErrParse wraps every malformed-input failure reported by Parse.
	ErrParse = errors.New("parse error")
)
