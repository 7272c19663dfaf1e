package snapshot

import (
	"path/filepath"
	"testing"
)

func TestLoadOfFreshFileIsNotOK(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.dat")
	m, err := Open(path, 4)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer m.Close()

	_, ok, err := m.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if ok {
		t.Error("Load of a never-saved file should report ok=false")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.dat")
	m, err := Open(path, 4)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer m.Close()

	want := []int64{1, -2, 3, 4}
	if err := m.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, ok, err := m.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !ok {
		t.Fatal("Load should report ok=true after Save")
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("words[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReopenSeesPriorSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.dat")
	m1, err := Open(path, 2)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := m1.Save([]int64{42, 7}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := m1.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	m2, err := Open(path, 2)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer m2.Close()

	got, ok, err := m2.Load()
	if err != nil || !ok {
		t.Fatalf("Load after reopen: ok=%v err=%v", ok, err)
	}
	if got[0] != 42 || got[1] != 7 {
		t.Errorf("got = %v, want [42 7]", got)
	}
}

func TestLoadRejectsMismatchedWordCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.dat")
	m1, err := Open(path, 4)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := m1.Save([]int64{1, 2, 3, 4}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	m1.Close()

	m2, err := Open(path, 8)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer m2.Close()

	if _, _, err := m2.Load(); err == nil {
		t.Error("Load should reject a snapshot saved for a different word count")
	}
}
