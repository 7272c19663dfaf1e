package backing

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sync"
)

// FileStore is a disk-backed Store. Each page occupies a fixed-size slot at
// offset page*pageSize*8 in the file, storing pageSize little-endian int64
// words, the same slot-per-page layout the teacher's physicalPage uses for a
// fixed-size region of a *os.File.
type FileStore struct {
	mu       sync.Mutex
	file     *os.File
	pageSize uint64
}

// NewFileStore opens (or creates) path as the backing file for pages of
// pageSize words each.
func NewFileStore(path string, pageSize uint64) (*FileStore, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return nil, fmt.Errorf("backing: failed to open file store %q: %w", path, err)
	}
	return &FileStore{
		file:     f,
		pageSize: pageSize,
	}, nil
}

// Close closes the underlying file.
func (f *FileStore) Close() error {
	return f.file.Close()
}

func (f *FileStore) slotOffset(page uint64) int64 {
	return int64(page * f.pageSize * 8)
}

// Evict implements Store.
func (f *FileStore) Evict(page uint64, words []int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	buf := make([]byte, len(words)*8)
	for i, w := range words {
		binary.LittleEndian.PutUint64(buf[i*8:(i+1)*8], uint64(w))
	}
	if _, err := f.file.WriteAt(buf, f.slotOffset(page)); err != nil {
		return fmt.Errorf("backing: failed to evict page %d: %w", page, err)
	}
	return nil
}

// Restore implements Store. A page whose slot lies beyond the current file
// size was never evicted; ReadAt reports that as io.EOF (or a short read),
// which Restore treats as "first touch" and zero-fills instead of erroring.
func (f *FileStore) Restore(page uint64, words []int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	buf := make([]byte, len(words)*8)
	n, err := f.file.ReadAt(buf, f.slotOffset(page))
	if err != nil && err != io.EOF {
		return fmt.Errorf("backing: failed to restore page %d: %w", page, err)
	}
	for i := n; i < len(buf); i++ {
		buf[i] = 0
	}
	for i := range words {
		words[i] = int64(binary.LittleEndian.Uint64(buf[i*8 : (i+1)*8]))
	}
	return nil
}
