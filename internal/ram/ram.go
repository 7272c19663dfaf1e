// Package ram is the physical-memory gateway: the single place that
// converts a (frame, row) pair into a flat word address and dispatches to
// the backing store on eviction and restore. No other package touches the
// underlying word array directly.
package ram

import (
	"fmt"

	"github.com/nebulous-pages/vmem/internal/backing"
	"github.com/nebulous-pages/vmem/internal/memword"
)

// Frame is a physical frame index. Frame 0 is permanently the root table;
// it is never returned by the frame acquirer and never appears as a child
// pointer, so the sentinel value 0 is safe to reuse for "no child" (see
// pageTableEntry-style designs that instead need a dedicated nullable type).
type Frame int64

// RAM is the physical-memory array backing one translator. It holds
// NumFrames*PageSize words and delegates page-out/page-in to a
// backing.Store.
type RAM struct {
	cfg   memword.Config
	words []int64
	store backing.Store
}

// New allocates a RAM of cfg.NumFrames*cfg.PageSize words backed by store.
func New(cfg memword.Config, store backing.Store) *RAM {
	return &RAM{
		cfg:   cfg,
		words: make([]int64, cfg.NumFrames*cfg.PageSize),
		store: store,
	}
}

func (r *RAM) index(frame Frame, row uint64) int64 {
	idx := int64(frame)*int64(r.cfg.PageSize) + int64(row)
	if idx < 0 || uint64(idx) >= uint64(len(r.words)) {
		panic(fmt.Sprintf("ram: address out of range: frame %d row %d", frame, row))
	}
	return idx
}

// ReadWord reads a single word at (frame, row).
func (r *RAM) ReadWord(frame Frame, row uint64) int64 {
	return r.words[r.index(frame, row)]
}

// WriteWord writes a single word at (frame, row).
func (r *RAM) WriteWord(frame Frame, row uint64, value int64) {
	r.words[r.index(frame, row)] = value
}

// ZeroFill zeroes every row of frame, used when a newly acquired frame is
// about to serve as an intermediate table.
func (r *RAM) ZeroFill(frame Frame) {
	start := r.index(frame, 0)
	for i := uint64(0); i < r.cfg.PageSize; i++ {
		r.words[start+int64(i)] = 0
	}
}

// Evict persists frame's contents under page and leaves the frame's words
// untouched (the caller is responsible for zeroing the parent slot that
// pointed to it).
func (r *RAM) Evict(frame Frame, page uint64) error {
	start := r.index(frame, 0)
	words := r.words[start : start+int64(r.cfg.PageSize)]
	return r.store.Evict(page, words)
}

// Restore loads page's contents into frame from the backing store.
func (r *RAM) Restore(frame Frame, page uint64) error {
	start := r.index(frame, 0)
	words := r.words[start : start+int64(r.cfg.PageSize)]
	return r.store.Restore(page, words)
}

// ExportWords returns a copy of the entire frame pool, in frame-major
// order, for snapshotting to a durable store.
func (r *RAM) ExportWords() []int64 {
	out := make([]int64, len(r.words))
	copy(out, r.words)
	return out
}

// ImportWords replaces the entire frame pool with words, which must have
// exactly NumFrames*PageSize entries in the same frame-major order
// ExportWords produces.
func (r *RAM) ImportWords(words []int64) error {
	if len(words) != len(r.words) {
		return fmt.Errorf("ram: snapshot has %d words, want %d", len(words), len(r.words))
	}
	copy(r.words, words)
	return nil
}
