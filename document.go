package jdoc

import (
	"bytes"
	"fmt"

	"github.com/frametools/jdoc/debug"
	"github.com/frametools/jdoc/dom"
	"github.com/frametools/jdoc/encode"
	"github.com/frametools/jdoc/fsio"
	"github.com/frametools/jdoc/parse"
)

// Document owns one dom tree. All nodes reachable from Root belong to
// the Document; cursors and serializers over it hold references only
// and must not outlive it.
type Document struct {
	root *dom.Node
}

// New returns a Document whose root is an empty object, ready for
// incremental writing.
func New() *Document {
	return &Document{root: dom.NewObject()}
}

func (d *Document) Root() *dom.Node {
	return d.root
}

// Load replaces the tree with the parse of data. On failure the
// Document is left empty, never half loaded.
func (d *Document) Load(data []byte) error {
	d.root = dom.NewObject()
	n, err := parse.Parse(data)
	if err != nil {
		return err
	}
	d.root = n
	return nil
}

func (d *Document) LoadFile(path string) error {
	data, err := fsio.ReadAll(path)
	if err != nil {
		return err
	}
	if err := d.Load(data); err != nil {
		debug.Warnf("%s: %v", path, err)
		return fmt.Errorf("%s: %w", path, err)
	}
	if debug.Load() {
		debug.Logf("jdoc: loaded %s:\n%v", path, d.root)
	}
	return nil
}

// Dump serializes the tree in the canonical text form. Panics when the
// tree holds a non-finite float, which cannot be represented.
func (d *Document) Dump() []byte {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(d.root, buf); err != nil {
		panic(fmt.Sprintf("jdoc: dump: %v", err))
	}
	return buf.Bytes()
}

func (d *Document) DumpFile(path string) error {
	data := d.Dump()
	if debug.Write() {
		debug.Logf("jdoc: writing %s:\n%s", path, string(data))
	}
	return fsio.WriteAll(path, data)
}
