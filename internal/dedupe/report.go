package dedupe

import "fmt"

// KeptIndices returns the ascending page indices whose decision is keep.
// It is a pure filter over the decision sequence: calling it twice on the
// same input yields identical results, and the result is never empty for a
// non-empty document.
func KeptIndices(decisions []Decision) []int {
	kept := make([]int, 0, len(decisions))
	for _, d := range decisions {
		if d.Action == ActionKeep {
			kept = append(kept, d.PageIndex)
		}
	}
	return kept
}

// RemovedIndices returns the ascending page indices whose decision is
// superseded.
func RemovedIndices(decisions []Decision) []int {
	removed := make([]int, 0, len(decisions))
	for _, d := range decisions {
		if d.Action == ActionSuperseded {
			removed = append(removed, d.PageIndex)
		}
	}
	return removed
}

// Trace renders one display line per page, with 1-based page numbers for
// human consumption. Used by verbose and dry-run output.
func Trace(decisions []Decision) []string {
	lines := make([]string, 0, len(decisions))
	for _, d := range decisions {
		switch d.Action {
		case ActionSuperseded:
			lines = append(lines, fmt.Sprintf("page %d: remove, %s", d.PageIndex+1, d.Reason))
		default:
			lines = append(lines, fmt.Sprintf("page %d: keep, %s", d.PageIndex+1, d.Reason))
		}
	}
	return lines
}
