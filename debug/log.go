package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/frametools/jdoc/dom"
	"github.com/frametools/jdoc/encode"
)

// Logf writes to stderr, rendering any *dom.Node argument through the
// encoder.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *dom.Node:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw *dom.Node] %v", x)
				continue
			}
			args[i] = buf.String()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

// Warnf is Logf with a fixed prefix; warnings are not gated by env
// flags.
func Warnf(msg string, args ...any) {
	Logf("jdoc warning: "+msg+"\n", args...)
}
