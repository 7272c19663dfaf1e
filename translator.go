// Package vmem implements a hierarchical paged virtual-memory translator:
// a fixed-depth tree of page tables resident in a fixed pool of physical
// frames, with pages swapped to a pluggable backing store under memory
// pressure.
package vmem

import (
	"fmt"
	"sync"

	"github.com/NebulousLabs/Sia/build"

	"github.com/nebulous-pages/vmem/internal/backing"
	"github.com/nebulous-pages/vmem/internal/memword"
	"github.com/nebulous-pages/vmem/internal/ram"
)

// Translator owns one virtual address space: a Config-shaped tree of page
// tables rooted at physical frame 0, backed by a fixed frame pool and a
// pluggable backing.Store. All public methods are safe for concurrent use;
// a single mutex serializes them, matching the single-threaded model the
// distilled design assumes (there is no read-only public operation here,
// since a Read can still fault and mutate RAM).
type Translator struct {
	mu    sync.Mutex
	cfg   memword.Config
	ram   *ram.RAM
	stats Stats
}

// New validates cfg and wires store as the backing store for pages evicted
// under memory pressure. New calls Initialize, so the returned Translator's
// root table (frame 0) is already zero-filled.
func New(cfg Config, store backing.Store) (*Translator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, build.ExtendErr("invalid vmem config", err)
	}
	t := &Translator{
		cfg: cfg,
		ram: ram.New(cfg, store),
	}
	t.Initialize()
	return t, nil
}

// Initialize zero-fills the root table (frame 0), the only frame assumed
// to start in a known state. All other frames are acquired and zero-filled
// lazily on first use.
func (t *Translator) Initialize() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ram.ZeroFill(ram.Frame(0))
}

// Read returns the word stored at virtual address va, faulting in any
// missing page-table levels and the target page along the way. ok is false
// if va is out of range for this Translator's VirtualMemorySize.
func (t *Translator) Read(va uint64) (int64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if va >= t.cfg.VirtualMemorySize() {
		return 0, false
	}
	leaf, err := t.translate(va)
	if err != nil {
		return 0, false
	}
	t.stats.Reads++
	offset := memword.OffsetOf(t.cfg, va)
	return t.ram.ReadWord(leaf, offset), true
}

// Write stores word at virtual address va, faulting in any missing
// page-table levels and the target page along the way. It reports whether
// va was in range.
func (t *Translator) Write(va uint64, word int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if va >= t.cfg.VirtualMemorySize() {
		return false
	}
	leaf, err := t.translate(va)
	if err != nil {
		return false
	}
	t.stats.Writes++
	offset := memword.OffsetOf(t.cfg, va)
	t.ram.WriteWord(leaf, offset, word)
	return true
}

// Stats returns a snapshot of this Translator's lifetime counters.
func (t *Translator) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}

// translate walks the table tree from the root to the leaf frame holding
// va's page, faulting in any level that is missing. A fault at the last
// level restores the target page's data into the newly installed leaf
// immediately, so every reachable leaf holds its page's data at every
// point after translate returns, not just at the end of the caller's
// operation.
func (t *Translator) translate(va uint64) (ram.Frame, error) {
	pageNumber := memword.PageNumberOf(t.cfg, va)
	current := ram.Frame(0)

	for level := uint(0); level < t.cfg.TablesDepth; level++ {
		idx := memword.PageIndex(t.cfg, va, level)
		next := ram.Frame(t.ram.ReadWord(current, idx))

		if next == 0 {
			acquired, err := t.acquireFrame(current, pageNumber)
			if err != nil {
				return 0, build.ExtendErr(fmt.Sprintf("failed to acquire frame for level %d", level), err)
			}
			next = acquired

			if level < t.cfg.TablesDepth-1 {
				t.ram.ZeroFill(next)
			}
			t.ram.WriteWord(current, idx, int64(next))

			if level == t.cfg.TablesDepth-1 {
				if err := t.ram.Restore(next, pageNumber); err != nil {
					return 0, build.ExtendErr("failed to restore page into newly installed leaf", err)
				}
				t.stats.Restores++
			}
		}
		current = next
	}
	return current, nil
}
