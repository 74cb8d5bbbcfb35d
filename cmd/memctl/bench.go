package main

import (
	"fmt"
	"time"

	"github.com/joshuapare/memkit/mem"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	benchAllocs   int
	benchSize     uint64
	benchAlign    uint64
	benchStrategy string
	benchBuffer   uint64
)

func init() {
	cmd := newBenchCmd()
	cmd.Flags().IntVar(&benchAllocs, "allocs", 100000, "Number of allocations to perform")
	cmd.Flags().Uint64Var(&benchSize, "size", 64, "Size of each allocation in bytes")
	cmd.Flags().Uint64Var(&benchAlign, "align", 8, "Alignment of each allocation (power of two)")
	cmd.Flags().
		StringVar(&benchStrategy, "strategy", "arena", "Strategy to exercise: fixed, page, or arena")
	cmd.Flags().
		Uint64Var(&benchBuffer, "buffer", 64<<20, "Backing buffer size for the fixed strategy")
	rootCmd.AddCommand(cmd)
}

func newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Run an allocation workload through a strategy",
		Long: `The bench command performs a stream of equally sized, equally aligned
allocations through the chosen strategy and reports the elapsed time.

Example:
  memctl bench --strategy arena --allocs 1000000 --size 64
  memctl bench --strategy fixed --size 16 --align 16
  memctl bench --strategy page --allocs 1000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench()
		},
	}
}

func runBench() error {
	size := uintptr(benchSize)
	align := uintptr(benchAlign)

	printVerbose("strategy=%s allocs=%d size=%d align=%d\n",
		benchStrategy, benchAllocs, size, align)

	var (
		elapsed time.Duration
		stats   mem.ArenaStats
		err     error
	)
	switch benchStrategy {
	case "fixed":
		elapsed, err = benchFixed(size, align)
	case "page":
		elapsed, err = benchPage(size, align)
	case "arena":
		elapsed, stats, err = benchArena(size, align)
	default:
		return fmt.Errorf("unknown strategy %q (want fixed, page, or arena)", benchStrategy)
	}
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	p.Printf("%d allocations of %d bytes (align %d) via %s in %v\n",
		benchAllocs, benchSize, benchAlign, benchStrategy, elapsed)
	if benchAllocs > 0 {
		p.Printf("  %.0f allocs/sec\n", float64(benchAllocs)/elapsed.Seconds())
	}
	if benchStrategy == "arena" {
		p.Printf("  arena owned %d regions, %d bytes before release\n", stats.Allocs, stats.Bytes)
	}
	return nil
}

func benchFixed(size, align uintptr) (time.Duration, error) {
	f := mem.NewFixedBuffer(make([]byte, benchBuffer))
	start := time.Now()
	for i := 0; i < benchAllocs; i++ {
		if _, err := f.AllocBytes(size, align); err != nil {
			// Buffer exhausted mid-run; reuse it like a per-frame slab.
			f.Reset()
			if _, err := f.AllocBytes(size, align); err != nil {
				return 0, err
			}
		}
	}
	return time.Since(start), nil
}

func benchPage(size, align uintptr) (time.Duration, error) {
	var pa mem.PageAllocator
	start := time.Now()
	for i := 0; i < benchAllocs; i++ {
		p, err := pa.AllocBytes(size, align)
		if err != nil {
			return 0, err
		}
		pa.FreeBytes(p, size, align)
	}
	return time.Since(start), nil
}

func benchArena(size, align uintptr) (time.Duration, mem.ArenaStats, error) {
	a := mem.NewArena(mem.PageAllocator{})
	start := time.Now()
	for i := 0; i < benchAllocs; i++ {
		if _, err := a.AllocBytes(size, align); err != nil {
			return 0, mem.ArenaStats{}, err
		}
	}
	stats := a.Stats()
	a.Release()
	return time.Since(start), stats, nil
}
