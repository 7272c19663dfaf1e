package vmem

import (
	"path/filepath"
	"testing"

	"github.com/nebulous-pages/vmem/internal/backing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	tr := newTranslator(t)
	tr.Write(0, 100)
	tr.Write(2, 200)

	path := filepath.Join(t.TempDir(), "snap.dat")
	if err := tr.SaveSnapshot(path); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}

	tr2, err := New(testConfig(), backing.NewMemStore())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := tr2.LoadSnapshot(path); err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}

	if got, ok := tr2.Read(0); !ok || got != 100 {
		t.Errorf("Read(0) after LoadSnapshot = (%v, %v), want (100, true)", got, ok)
	}
	if got, ok := tr2.Read(2); !ok || got != 200 {
		t.Errorf("Read(2) after LoadSnapshot = (%v, %v), want (200, true)", got, ok)
	}
}

func TestLoadSnapshotOfFreshPathIsNoop(t *testing.T) {
	tr := newTranslator(t)
	path := filepath.Join(t.TempDir(), "never-saved.dat")
	if err := tr.LoadSnapshot(path); err != nil {
		t.Fatalf("LoadSnapshot of a fresh path should not error: %v", err)
	}
	if got, ok := tr.Read(0); !ok || got != 0 {
		t.Errorf("Read(0) after no-op LoadSnapshot = (%v, %v), want (0, true)", got, ok)
	}
}
