package vmem

import (
	"github.com/NebulousLabs/Sia/build"

	"github.com/nebulous-pages/vmem/internal/snapshot"
)

// SaveSnapshot persists the entire frame pool to path, so a future
// process can resume with physical memory exactly as this one left it
// via LoadSnapshot, instead of rebuilding the tree fault by fault.
func (t *Translator) SaveSnapshot(path string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	mgr, err := snapshot.Open(path, t.cfg.NumFrames*t.cfg.PageSize)
	if err != nil {
		return build.ExtendErr("failed to open snapshot for saving", err)
	}
	defer mgr.Close()

	if err := mgr.Save(t.ram.ExportWords()); err != nil {
		return build.ExtendErr("failed to save snapshot", err)
	}
	return nil
}

// LoadSnapshot replaces this Translator's frame pool with the one stored
// at path. It is a no-op if path holds no prior snapshot.
func (t *Translator) LoadSnapshot(path string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	mgr, err := snapshot.Open(path, t.cfg.NumFrames*t.cfg.PageSize)
	if err != nil {
		return build.ExtendErr("failed to open snapshot for loading", err)
	}
	defer mgr.Close()

	words, ok, err := mgr.Load()
	if err != nil {
		return build.ExtendErr("failed to load snapshot", err)
	}
	if !ok {
		return nil
	}
	return t.ram.ImportWords(words)
}
