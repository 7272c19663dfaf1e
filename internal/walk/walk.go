// Package walk implements the single depth-first traversal template that
// backs all three frame-acquisition priorities: reclaiming an empty table,
// extending the high-water mark, and evicting by cyclic distance. Each
// priority is a thin policy layered on the same recursive descent.
package walk

import (
	"github.com/nebulous-pages/vmem/internal/memword"
	"github.com/nebulous-pages/vmem/internal/ram"
)

type (
	// Reader is the read-only view of physical memory the walker needs.
	Reader interface {
		ReadWord(frame ram.Frame, row uint64) int64
	}

	// Writer additionally allows the walker to clear a parent slot when a
	// frame is reclaimed or evicted.
	Writer interface {
		Reader
		WriteWord(frame ram.Frame, row uint64, value int64)
	}

	// Evictor additionally allows the walker to page a victim out to the
	// backing store before its parent slot is cleared.
	Evictor interface {
		Writer
		Evict(frame ram.Frame, page uint64) error
	}

	// visitor is called once per reachable frame in depth-first, increasing
	// row order. descend controls whether the walk recurses into this
	// frame's children (ignored once depth reaches cfg.TablesDepth, since
	// a frame at that depth is a data leaf with no child pointers). stop
	// aborts the entire walk immediately once the caller has what it
	// needs.
	visitor func(frame, parent ram.Frame, parentRow uint64, depth uint, partialPage uint64) (descend, stop bool)
)

// walk performs one depth-first descent starting at frame, calling visit at
// every reachable node before descending into its non-zero children.
func walk(r Reader, cfg memword.Config, frame, parent ram.Frame, parentRow uint64, depth uint, partialPage uint64, visit visitor) bool {
	descend, stop := visit(frame, parent, parentRow, depth, partialPage)
	if stop {
		return true
	}
	if !descend || depth >= cfg.TablesDepth {
		return false
	}
	for row := uint64(0); row < cfg.PageSize; row++ {
		child := ram.Frame(r.ReadWord(frame, row))
		if child == 0 {
			continue
		}
		childPage := memword.ExtendPage(cfg, partialPage, row)
		if walk(r, cfg, child, frame, row, depth+1, childPage, visit) {
			return true
		}
	}
	return false
}

// fromRoot starts a walk at the root frame (index 0, depth 0, empty partial
// page).
func fromRoot(r Reader, cfg memword.Config, visit visitor) {
	walk(r, cfg, 0, 0, 0, 0, 0, visit)
}

// isEmptyTable reports whether every slot of frame is the unmapped sentinel.
// Meaningful only for frames at a depth less than cfg.TablesDepth: a
// freshly restored data leaf can legitimately contain any values, so
// callers must gate this on depth before calling it.
func isEmptyTable(r Reader, cfg memword.Config, frame ram.Frame) bool {
	for row := uint64(0); row < cfg.PageSize; row++ {
		if r.ReadWord(frame, row) != 0 {
			return false
		}
	}
	return true
}

// cyclicDistance is min(|p-q|, NumPages-|p-q|).
func cyclicDistance(cfg memword.Config, p, q uint64) uint64 {
	var d uint64
	if p > q {
		d = p - q
	} else {
		d = q - p
	}
	numPages := cfg.NumPages()
	if wrapped := numPages - d; wrapped < d {
		return wrapped
	}
	return d
}
