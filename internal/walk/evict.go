package walk

import (
	"errors"

	"github.com/nebulous-pages/vmem/internal/memword"
	"github.com/nebulous-pages/vmem/internal/ram"
)

// ErrNoVictim is returned when no data leaf is reachable to evict. Under a
// validated Config this can't happen: NumFrames >= TablesDepth+1 guarantees
// at least one leaf exists once priorities 1 and 2 have both failed.
var ErrNoVictim = errors.New("walk: no reachable leaf available for eviction")

// EvictByCyclicDistance is priority 3: among all reachable data leaves,
// page out the one whose resident page number has the greatest cyclic
// distance from swapInPage, breaking ties by depth-first, increasing-row
// discovery order (the first maximum found wins, so later equal distances
// never replace it).
func EvictByCyclicDistance(e Evictor, cfg memword.Config, swapInPage uint64) (ram.Frame, error) {
	var (
		victim       ram.Frame
		victimParent ram.Frame
		victimRow    uint64
		victimPage   uint64
		bestDistance uint64
		found        bool
	)

	fromRoot(e, cfg, func(frame, parent ram.Frame, parentRow uint64, depth uint, partialPage uint64) (descend, stop bool) {
		if depth != cfg.TablesDepth {
			return true, false
		}
		d := cyclicDistance(cfg, swapInPage, partialPage)
		if !found || d > bestDistance {
			found = true
			bestDistance = d
			victim, victimParent, victimRow, victimPage = frame, parent, parentRow, partialPage
		}
		return false, false
	})

	if !found {
		return 0, ErrNoVictim
	}
	if err := e.Evict(victim, victimPage); err != nil {
		return 0, err
	}
	e.WriteWord(victimParent, victimRow, 0)
	return victim, nil
}
