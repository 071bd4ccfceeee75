// Package encode renders dom trees as document text.
//
// # Usage
//
//	node := dom.NewObject()
//	node.SetMember("name", dom.FromString("alice"))
//	err := encode.Encode(node, os.Stdout)
//
// The output layout is fixed: objects are indented one tab per level,
// arrays stay on a single line. See Encode for details.
//
// # Related Packages
//
//   - github.com/frametools/jdoc/dom - tree representation
//   - github.com/frametools/jdoc/parse - parse text to a tree
package encode
