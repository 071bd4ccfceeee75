package fsio

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
)

func TestWriteCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "doc.json")
	want := []byte("{}\n")
	if err := WriteAll(path, want); err != nil {
		t.Fatalf("error writing %s: %v", path, err)
	}
	got, err := ReadAll(path)
	if err != nil {
		t.Fatalf("error reading back: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReadNotFound(t *testing.T) {
	_, err := ReadAll(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := WriteAll(path, []byte("first")); err != nil {
		t.Fatalf("error writing: %v", err)
	}
	if err := WriteAll(path, []byte("second")); err != nil {
		t.Fatalf("error rewriting: %v", err)
	}
	got, err := ReadAll(path)
	if err != nil {
		t.Fatalf("error reading back: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("got %q", got)
	}
}
