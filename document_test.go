package jdoc

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/frametools/jdoc/debug"
	"github.com/frametools/jdoc/dom"
	"github.com/frametools/jdoc/fsio"
)

func TestNewRootIsObject(t *testing.T) {
	doc := New()
	if doc.Root().Kind != dom.ObjectKind {
		t.Fatalf("new document root is %s", doc.Root().Kind)
	}
	if doc.Root().Len() != 0 {
		t.Fatalf("new document root is not empty")
	}
}

func TestLoadDumpRoundTrip(t *testing.T) {
	in := "{\n\t\"name\": \"hero\",\n\t\"hp\": 100,\n\t\"speed\": 0.5,\n\t\"tags\": [\"a\", \"b\"],\n\t\"gear\": {\n\t\t\"slots\": [1, 2, 3]\n\t}\n}\n"
	doc := New()
	if err := doc.Load([]byte(in)); err != nil {
		t.Fatalf("error loading: %v", err)
	}
	out := string(doc.Dump())
	if out != in {
		t.Errorf("round trip differs:\n%s", debug.Diff(in, out))
	}
}

// dump -> load -> dump is a fixed point even when the input was not in
// canonical layout.
func TestDumpFixedPoint(t *testing.T) {
	doc := New()
	if err := doc.Load([]byte(`{"a":100.0,"b":[1,{"c":2}],"s":"x"}`)); err != nil {
		t.Fatalf("error loading: %v", err)
	}
	first := doc.Dump()
	if err := doc.Load(first); err != nil {
		t.Fatalf("error reloading: %v", err)
	}
	second := doc.Dump()
	if !bytes.Equal(first, second) {
		t.Errorf("dump not stable:\n%s", debug.Diff(string(first), string(second)))
	}
}

func TestLoadFailureLeavesDocumentEmpty(t *testing.T) {
	doc := New()
	if err := doc.Load([]byte(`{"a": 1}`)); err != nil {
		t.Fatalf("error loading: %v", err)
	}
	if err := doc.Load([]byte(`{"a": `)); err == nil {
		t.Fatalf("expected load error")
	}
	if doc.Root().Len() != 0 {
		t.Errorf("failed load left members behind")
	}
}

func TestLoadFileDumpFile(t *testing.T) {
	dir := t.TempDir()
	// DumpFile creates intermediate directories
	path := filepath.Join(dir, "cfg", "deep", "doc.json")

	doc := New()
	cur := NewCursor(doc)
	Set(cur, "name", "file round trip")
	Set(cur, "n", int32(7))
	if err := doc.DumpFile(path); err != nil {
		t.Fatalf("error writing: %v", err)
	}

	back := New()
	if err := back.LoadFile(path); err != nil {
		t.Fatalf("error reading: %v", err)
	}
	if !dom.Equal(doc.Root(), back.Root()) {
		t.Errorf("file round trip differs:\n%s",
			debug.Diff(string(doc.Dump()), string(back.Dump())))
	}
}

func TestLoadFileNotFound(t *testing.T) {
	doc := New()
	err := doc.LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, fsio.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadFileBadContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"a"`), 0644); err != nil {
		t.Fatal(err)
	}
	doc := New()
	if err := doc.LoadFile(path); err == nil {
		t.Errorf("expected error for malformed file")
	}
}

func TestMergePatch(t *testing.T) {
	doc := New()
	if err := doc.Load([]byte(`{"a": 1, "b": {"c": 2, "d": 3}}`)); err != nil {
		t.Fatalf("error loading: %v", err)
	}
	if err := doc.MergePatch([]byte(`{"a": null, "b": {"c": 9}, "e": "new"}`)); err != nil {
		t.Fatalf("error patching: %v", err)
	}
	root := doc.Root()
	if root.Get("a") != nil {
		t.Errorf("a survived a null patch")
	}
	if got := root.Get("b").Get("c").AsInt64(); got != 9 {
		t.Errorf("b.c = %d, expected 9", got)
	}
	if got := root.Get("b").Get("d").AsInt64(); got != 3 {
		t.Errorf("b.d = %d, expected 3", got)
	}
	if got := root.Get("e"); got == nil || got.Str != "new" {
		t.Errorf("e = %v", got)
	}
}

func TestMergePatchBadPatch(t *testing.T) {
	doc := New()
	if err := doc.MergePatch([]byte(`{`)); !errors.Is(err, ErrPatch) {
		t.Errorf("expected ErrPatch, got %v", err)
	}
}
