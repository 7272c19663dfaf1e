// Package snapshot persists a Translator's entire frame pool to a single
// file, so a process can resume with physical memory exactly as it left
// it instead of rebuilding the tree fault by fault. It is a whole-pool
// analogue of internal/backing's per-page persistence.
package snapshot

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/NebulousLabs/Sia/build"
)

// headerSize is the fixed-size leading region holding the word count the
// snapshot was written for, so a mismatched Config is rejected instead of
// silently importing a truncated or oversized frame pool.
const headerSize = 8

// Manager owns the snapshot file for one frame pool of wordCount words.
type Manager struct {
	file      *os.File
	wordCount uint64
}

// Open creates or reopens path as the snapshot file for a frame pool of
// wordCount words, mirroring the teacher's PageManager.New: open for
// recovery if the file exists, create it otherwise.
func Open(path string, wordCount uint64) (*Manager, error) {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return nil, build.ExtendErr("failed to open snapshot file", err)
	}
	return &Manager{file: file, wordCount: wordCount}, nil
}

// Close closes the underlying file.
func (m *Manager) Close() error {
	return m.file.Close()
}

// Save overwrites the snapshot with words, which must have exactly
// wordCount entries.
func (m *Manager) Save(words []int64) error {
	if uint64(len(words)) != m.wordCount {
		panic(fmt.Sprintf("Sanity check failed. Snapshot word count %d does not match configured %d", len(words), m.wordCount))
	}

	buf := bytes.NewBuffer(make([]byte, 0, headerSize+len(words)*8))
	if err := binary.Write(buf, binary.LittleEndian, m.wordCount); err != nil {
		return build.ExtendErr("failed to encode snapshot header", err)
	}
	if err := binary.Write(buf, binary.LittleEndian, words); err != nil {
		return build.ExtendErr("failed to encode snapshot payload", err)
	}
	if _, err := m.file.WriteAt(buf.Bytes(), 0); err != nil {
		return build.ExtendErr("failed to write snapshot to disk", err)
	}
	return nil
}

// Load reads a previously saved frame pool back. ok is false if the
// snapshot file is empty (a fresh file that was never Saved), in which
// case the caller should keep whatever frame pool it already has.
func (m *Manager) Load() (words []int64, ok bool, err error) {
	header := make([]byte, headerSize)
	if _, err := m.file.ReadAt(header, 0); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, false, nil
		}
		return nil, false, build.ExtendErr("failed to read snapshot header", err)
	}
	storedCount := binary.LittleEndian.Uint64(header)
	if storedCount != m.wordCount {
		return nil, false, fmt.Errorf("snapshot: file holds %d words, expected %d for this config", storedCount, m.wordCount)
	}

	payload := make([]byte, m.wordCount*8)
	if _, err := m.file.ReadAt(payload, headerSize); err != nil {
		return nil, false, build.ExtendErr("failed to read snapshot payload", err)
	}

	words = make([]int64, m.wordCount)
	if err := binary.Read(bytes.NewReader(payload), binary.LittleEndian, words); err != nil {
		return nil, false, build.ExtendErr("failed to decode snapshot payload", err)
	}
	return words, true, nil
}
