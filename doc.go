// Package jdoc is a hierarchical document model with a stack-based
// navigation cursor and a bidirectional serialization protocol.
//
// A Document owns one dom tree. A Cursor walks it: a stack of
// (container, iteration index) frames plus a floating "current value"
// reference that every navigation call reassigns; accessors
// deliberately compose through it. Typed accessors (Get/Set/Push and
// friends) read or build values at the cursor; the Serializer wraps a
// cursor with a Read/Write mode so one traversal function can both
// parse and produce a document:
//
//	func serialize(s *jdoc.Serializer, c *Camera) bool {
//		if !s.BeginObject("camera") {
//			return false
//		}
//		jdoc.Field(s, "fov", &c.FOV)
//		jdoc.Field(s, "position", &c.Position)
//		s.EndObject()
//		return true
//	}
//
// In Read mode a missing member makes the call return false and leave
// the destination untouched; in Write mode calls always succeed.
// Kind mismatches are contract violations and panic: the traversal
// schema is fixed by the calling code, not discovered at runtime.
package jdoc
