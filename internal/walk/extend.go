package walk

import (
	"github.com/nebulous-pages/vmem/internal/memword"
	"github.com/nebulous-pages/vmem/internal/ram"
)

// ExtendHighWaterMark is priority 2: find the largest reachable frame index
// M and hand back M+1, provided it still fits within NumFrames. The root
// itself (frame 0) seeds the maximum, so a tree with only the root gives
// M=0 and a first extension to frame 1.
func ExtendHighWaterMark(r Reader, cfg memword.Config) (ram.Frame, bool) {
	max := ram.Frame(0)
	fromRoot(r, cfg, func(frame, _ ram.Frame, _ uint64, _ uint, _ uint64) (descend, stop bool) {
		if frame > max {
			max = frame
		}
		return true, false
	})

	next := max + 1
	if uint64(next) >= cfg.NumFrames {
		return 0, false
	}
	return next, true
}
