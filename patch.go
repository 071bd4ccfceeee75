package jdoc

import (
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
)

// ErrPatch wraps merge patch failures.
var ErrPatch = errors.New("patch error")

// MergePatch applies an RFC 7386 merge patch to the document: members
// present in patch overwrite, null members remove. The tree is dumped,
// patched and reloaded, so member order of untouched members follows
// the patch result.
func (d *Document) MergePatch(patch []byte) error {
	merged, err := jsonpatch.MergePatch(d.Dump(), patch)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPatch, err)
	}
	if err := d.Load(merged); err != nil {
		return fmt.Errorf("%w: %v", ErrPatch, err)
	}
	return nil
}
