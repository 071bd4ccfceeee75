package encode

import "errors"

var (
	// ErrNonFinite is returned when a tree holds a NaN or infinite
	// float, which the text form cannot represent.
	ErrNonFinite = errors.New("non-finite float")
)
