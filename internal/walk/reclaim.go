package walk

import (
	"github.com/nebulous-pages/vmem/internal/memword"
	"github.com/nebulous-pages/vmem/internal/ram"
)

// ReclaimEmptyTable is priority 1: find the first (depth-first, increasing
// row) table frame whose entries are all the unmapped sentinel, excluding
// the root and original, and hand it back to the caller with its old
// parent slot already cleared. original is the frame the caller is about
// to install a new child under; it is never a candidate itself, but the
// walk still descends into its children, so an empty table below it can
// be reclaimed.
func ReclaimEmptyTable(w Writer, cfg memword.Config, original ram.Frame) (ram.Frame, bool) {
	var (
		found       ram.Frame
		foundParent ram.Frame
		foundRow    uint64
		ok          bool
	)

	fromRoot(w, cfg, func(frame, parent ram.Frame, parentRow uint64, depth uint, _ uint64) (descend, stop bool) {
		if depth < cfg.TablesDepth && frame != 0 && frame != original && isEmptyTable(w, cfg, frame) {
			found, foundParent, foundRow = frame, parent, parentRow
			ok = true
			return false, true
		}
		return true, false
	})

	if !ok {
		return 0, false
	}
	w.WriteWord(foundParent, foundRow, 0)
	return found, true
}
