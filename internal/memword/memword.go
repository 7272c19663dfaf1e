// Package memword implements the pure bit arithmetic used to decompose a
// virtual address into a page number, a per-level table index and a byte
// offset, and to recompose a page number while descending the page-table
// tree.
package memword

import "fmt"

// Config describes the host-environment parameters that would, in the
// original design, be compile-time constants. A Go port turns them into
// runtime fields validated once at construction time.
type Config struct {
	// OffsetWidth is the number of bits used both for the byte offset
	// within a page and for the per-level index into a page table.
	OffsetWidth uint

	// PageSize is the number of words per frame. Must equal 1<<OffsetWidth.
	PageSize uint64

	// NumFrames is the number of physical frames available.
	NumFrames uint64

	// TablesDepth is the number of levels in the page-table tree.
	TablesDepth uint

	// VirtualAddressWidth is the number of bits in a virtual address.
	VirtualAddressWidth uint
}

// NumPages returns PAGE_SIZE·NUM_PAGES space's page count, i.e. the number of
// distinct pages in the virtual address space.
func (c Config) NumPages() uint64 {
	return uint64(1) << (c.VirtualAddressWidth - c.OffsetWidth)
}

// VirtualMemorySize returns PageSize * NumPages.
func (c Config) VirtualMemorySize() uint64 {
	return c.PageSize * c.NumPages()
}

// Validate checks the constraints from the external-interfaces table: the
// page size must match the offset width, the frame pool must be large enough
// that priority 3 always has a candidate to evict, and the address width
// must not underflow the offset width.
func (c Config) Validate() error {
	if c.OffsetWidth == 0 {
		return fmt.Errorf("memword: OffsetWidth must be >= 1")
	}
	if c.PageSize != uint64(1)<<c.OffsetWidth {
		return fmt.Errorf("memword: PageSize (%d) must equal 1<<OffsetWidth (%d)",
			c.PageSize, uint64(1)<<c.OffsetWidth)
	}
	if c.TablesDepth == 0 {
		return fmt.Errorf("memword: TablesDepth must be >= 1")
	}
	if c.NumFrames < uint64(c.TablesDepth)+1 {
		return fmt.Errorf("memword: NumFrames (%d) must be >= TablesDepth+1 (%d)",
			c.NumFrames, c.TablesDepth+1)
	}
	if c.VirtualAddressWidth <= c.OffsetWidth {
		return fmt.Errorf("memword: VirtualAddressWidth (%d) must be > OffsetWidth (%d)",
			c.VirtualAddressWidth, c.OffsetWidth)
	}
	if c.VirtualAddressWidth > 63 {
		return fmt.Errorf("memword: VirtualAddressWidth (%d) would overflow a uint64 address", c.VirtualAddressWidth)
	}
	// The tree's path covers exactly OffsetWidth*TablesDepth bits of the
	// page number (PageIndex slices that many bits, one OffsetWidth chunk
	// per level). A wider page number than that aliases distinct pages
	// onto the same leaf, which would make a reachable leaf correspond to
	// more than one page number.
	if maxWidth := c.OffsetWidth * (c.TablesDepth + 1); c.VirtualAddressWidth > maxWidth {
		return fmt.Errorf("memword: VirtualAddressWidth (%d) exceeds OffsetWidth*(TablesDepth+1) (%d); page numbers would alias onto the same leaf",
			c.VirtualAddressWidth, maxWidth)
	}
	return nil
}

// offsetMask returns the low OffsetWidth bits set to 1.
func (c Config) offsetMask() uint64 {
	return (uint64(1) << c.OffsetWidth) - 1
}

// PageNumberOf returns va >> OffsetWidth.
func PageNumberOf(cfg Config, va uint64) uint64 {
	return va >> cfg.OffsetWidth
}

// OffsetOf returns the low OffsetWidth bits of va.
func OffsetOf(cfg Config, va uint64) uint64 {
	return va & cfg.offsetMask()
}

// PageIndex returns the OffsetWidth-bit slice of va that selects a row at
// tree depth level, where level is in [0, TablesDepth).
func PageIndex(cfg Config, va uint64, level uint) uint64 {
	shift := uint64(cfg.OffsetWidth) * uint64(uint(cfg.TablesDepth)-level)
	return (va >> shift) & cfg.offsetMask()
}

// ExtendPage folds a row selected at some tree depth into a partially
// reconstructed page number, used while descending the tree to recover the
// page number of the leaf currently under inspection.
func ExtendPage(cfg Config, partial uint64, row uint64) uint64 {
	return (partial << cfg.OffsetWidth) | row
}
