// Package dom holds the in-memory value tree for jdoc documents.
//
// A tree is made of Nodes tagged with a Kind (Null, Bool, Number, String,
// Array, Object). Object members keep their insertion order so that a
// document re-serializes stably; a Number node remembers whether it was
// built from a signed integer, an unsigned integer or a float.
//
// # Usage
//
//	obj := dom.NewObject()
//	obj.SetMember("name", dom.FromString("alice"))
//	obj.SetMember("age", dom.FromInt(30))
//	age := obj.Get("age") // *dom.Node, nil if absent
//
// # Related Packages
//
//   - github.com/frametools/jdoc/parse - parse text to a tree
//   - github.com/frametools/jdoc/encode - encode a tree to text
package dom
