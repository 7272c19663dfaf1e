// Command vmemctl runs a scripted sequence of reads and writes against a
// Translator and prints the resulting stats. It exists to exercise the
// package from the outside during bring-up, the same role imageconvert
// plays for its own kernel-embedding format: a small, flag-driven driver
// binary, not a production server.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/nebulous-pages/vmem"
	"github.com/nebulous-pages/vmem/internal/backing"
)

func main() {
	var (
		offsetWidth = flag.Uint("offset-width", 1, "bits per per-level table index and page offset")
		tablesDepth = flag.Uint("tables-depth", 2, "number of levels in the page table")
		numFrames   = flag.Uint64("num-frames", 8, "physical frames available")
		vaWidth     = flag.Uint("va-width", 3, "bits in a virtual address; must be <= offset-width*(tables-depth+1)")
		diskPath    = flag.String("disk", "", "path to a disk-backed store; empty keeps everything in memory")
		script      = flag.String("script", "", `comma-separated ops, e.g. "w0=10,w2=20,r0,r2"`)
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vmemctl [flags]\n")
		fmt.Fprintf(os.Stderr, "Runs a scripted sequence of reads/writes against a translator and prints stats.\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := vmem.Config{
		OffsetWidth:         *offsetWidth,
		PageSize:            uint64(1) << *offsetWidth,
		NumFrames:           *numFrames,
		TablesDepth:         *tablesDepth,
		VirtualAddressWidth: *vaWidth,
	}

	store, closeStore, err := openStore(cfg, *diskPath)
	if err != nil {
		log.Fatalf("vmemctl: failed to open backing store: %v", err)
	}
	defer closeStore()

	tr, err := vmem.New(cfg, store)
	if err != nil {
		log.Fatalf("vmemctl: failed to construct translator: %v", err)
	}

	for _, op := range strings.Split(*script, ",") {
		op = strings.TrimSpace(op)
		if op == "" {
			continue
		}
		if err := runOp(tr, op); err != nil {
			log.Fatalf("vmemctl: op %q failed: %v", op, err)
		}
	}

	stats := tr.Stats()
	fmt.Printf("reads=%d writes=%d reclaims=%d extensions=%d evictions=%d restores=%d\n",
		stats.Reads, stats.Writes, stats.Reclaims, stats.Extensions, stats.Evictions, stats.Restores)
}

func openStore(cfg vmem.Config, diskPath string) (backing.Store, func(), error) {
	if diskPath == "" {
		return backing.NewMemStore(), func() {}, nil
	}
	store, err := backing.NewFileStore(diskPath, cfg.PageSize)
	if err != nil {
		return nil, nil, err
	}
	return store, func() { store.Close() }, nil
}

// runOp interprets one scripted operation: "r<va>" reads, "w<va>=<value>"
// writes.
func runOp(tr *vmem.Translator, op string) error {
	if rest, ok := trimPrefix(op, "w"); ok {
		parts := strings.SplitN(rest, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("malformed write %q, want w<va>=<value>", op)
		}
		va, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad virtual address: %w", err)
		}
		value, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return fmt.Errorf("bad value: %w", err)
		}
		if ok := tr.Write(va, value); !ok {
			return fmt.Errorf("write to va=%d out of range", va)
		}
		return nil
	}
	if rest, ok := trimPrefix(op, "r"); ok {
		va, err := strconv.ParseUint(rest, 10, 64)
		if err != nil {
			return fmt.Errorf("bad virtual address: %w", err)
		}
		value, ok := tr.Read(va)
		if !ok {
			return fmt.Errorf("read from va=%d out of range", va)
		}
		fmt.Printf("read va=%d -> %d\n", va, value)
		return nil
	}
	return fmt.Errorf("unrecognized op %q", op)
}

func trimPrefix(s, prefix string) (string, bool) {
	if !strings.HasPrefix(s, prefix) {
		return "", false
	}
	return s[len(prefix):], true
}
