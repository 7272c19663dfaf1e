package vmem

import (
	"errors"

	"github.com/nebulous-pages/vmem/internal/ram"
	"github.com/nebulous-pages/vmem/internal/walk"
)

// acquireFrame obtains a frame to install as a new child of original while
// translating targetPage, trying the three priorities in order. original
// is excluded from priority 1's reclaim search so a translation can never
// reclaim the very table it is about to extend.
func (t *Translator) acquireFrame(original ram.Frame, targetPage uint64) (ram.Frame, error) {
	if frame, ok := walk.ReclaimEmptyTable(t.ram, t.cfg, original); ok {
		t.stats.Reclaims++
		return frame, nil
	}
	if frame, ok := walk.ExtendHighWaterMark(t.ram, t.cfg); ok {
		t.stats.Extensions++
		return frame, nil
	}

	frame, err := walk.EvictByCyclicDistance(t.ram, t.cfg, targetPage)
	if err != nil {
		if errors.Is(err, walk.ErrNoVictim) {
			invariantViolation("priority 3 found no reachable leaf to evict under a validated config")
		}
		return 0, err
	}
	t.stats.Evictions++
	return frame, nil
}
