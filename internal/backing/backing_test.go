package backing

import (
	"path/filepath"
	"testing"

	"github.com/NebulousLabs/fastrand"
)

func wordsFromSeed(n int, seed int64) []int64 {
	words := make([]int64, n)
	for i := range words {
		words[i] = seed + int64(i)
	}
	return words
}

// TestMemStoreFirstTouchIsZero checks that restoring a page that was never
// evicted returns zeros, matching the "first touch" contract.
func TestMemStoreFirstTouchIsZero(t *testing.T) {
	s := NewMemStore()
	words := []int64{1, 2, 3}
	if err := s.Restore(7, words); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	for i, w := range words {
		if w != 0 {
			t.Errorf("words[%d] = %v, want 0", i, w)
		}
	}
}

// TestMemStoreRoundTrip checks that an evicted page restores the same data.
func TestMemStoreRoundTrip(t *testing.T) {
	s := NewMemStore()
	written := wordsFromSeed(4, 100)
	if err := s.Evict(3, written); err != nil {
		t.Fatalf("Evict failed: %v", err)
	}

	read := make([]int64, len(written))
	if err := s.Restore(3, read); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	for i := range written {
		if read[i] != written[i] {
			t.Errorf("read[%d] = %v, want %v", i, read[i], written[i])
		}
	}
}

// TestFileStoreRoundTrip exercises the disk-backed store the same way
// TestPPWriteAt/TestPPReadAt exercise the teacher's physicalPage.
func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backing.dat")
	s, err := NewFileStore(path, 4)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	defer s.Close()

	// Page 5 was never written; restoring it should be all zeros.
	fresh := make([]int64, 4)
	if err := s.Restore(5, fresh); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	for i, w := range fresh {
		if w != 0 {
			t.Errorf("fresh[%d] = %v, want 0", i, w)
		}
	}

	written := wordsFromSeed(4, -17)
	if err := s.Evict(5, written); err != nil {
		t.Fatalf("Evict failed: %v", err)
	}

	read := make([]int64, 4)
	if err := s.Restore(5, read); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	for i := range written {
		if read[i] != written[i] {
			t.Errorf("read[%d] = %v, want %v", i, read[i], written[i])
		}
	}

	// A distinct page's slot is independent.
	other := make([]int64, 4)
	if err := s.Restore(6, other); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	for i, w := range other {
		if w != 0 {
			t.Errorf("other[%d] = %v, want 0", i, w)
		}
	}
}

// TestFileStoreRecovery checks that data survives closing and reopening the
// underlying file, mirroring the teacher's TestRecovery for PageManager.
func TestFileStoreRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backing.dat")
	s, err := NewFileStore(path, 2)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	data := []int64{int64(fastrand.Intn(1 << 30)), int64(fastrand.Intn(1 << 30))}
	if err := s.Evict(0, data); err != nil {
		t.Fatalf("Evict failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	s2, err := NewFileStore(path, 2)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s2.Close()

	readBack := make([]int64, 2)
	if err := s2.Restore(0, readBack); err != nil {
		t.Fatalf("Restore after reopen failed: %v", err)
	}
	for i := range data {
		if readBack[i] != data[i] {
			t.Errorf("readBack[%d] = %v, want %v", i, readBack[i], data[i])
		}
	}
}
