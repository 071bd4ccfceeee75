package debug

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a human-readable diff of two encoded documents. Used by
// tests and the CLI to report where round trips diverge.
func Diff(from, to string) string {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, true)
	return diffCfg.DiffPrettyText(diffs)
}
