package vmem

// Stats counts the lifetime activity of a Translator, the same role the
// teacher's PageManager.allocatedPages plays for its own allocator: a
// coarse-grained view of what the allocator has been doing, not a
// substitute for tracing individual operations.
type Stats struct {
	Reads      uint64
	Writes     uint64
	Reclaims   uint64 // frames acquired via priority 1
	Extensions uint64 // frames acquired via priority 2
	Evictions  uint64 // frames acquired via priority 3
	Restores   uint64
}
