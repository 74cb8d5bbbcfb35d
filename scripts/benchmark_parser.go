// Command benchmark_parser turns `go test -bench` output for the mem
// package into a markdown table, so strategy comparisons can be pasted into
// PRs and docs.
//
// Usage:
//
//	go test -bench=. -benchmem ./mem | go run scripts/benchmark_parser.go
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
)

// BenchmarkResult represents a parsed benchmark result line.
type BenchmarkResult struct {
	Name        string
	Iterations  int
	NsPerOp     float64
	BytesPerOp  int64
	AllocsPerOp int64
	HasMemStats bool
}

var (
	inputFile = flag.String(
		"input",
		"",
		"Input file with benchmark output (stdin if not specified)",
	)
	outputFile = flag.String("output", "", "Output markdown file (stdout if not specified)")
)

// benchLine matches e.g.
// BenchmarkFixedBuffer_AllocBytes-8   92116498   13.02 ns/op   0 B/op   0 allocs/op
var benchLine = regexp.MustCompile(
	`^(Benchmark\S+?)(?:-\d+)?\s+(\d+)\s+([\d.]+) ns/op(?:\s+(\d+) B/op\s+(\d+) allocs/op)?`,
)

func main() {
	flag.Parse()

	in := os.Stdin
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	out := os.Stdout
	if *outputFile != "" {
		f, err := os.Create(*outputFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	var results []BenchmarkResult
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		m := benchLine.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		r := BenchmarkResult{Name: m[1]}
		r.Iterations, _ = strconv.Atoi(m[2])
		r.NsPerOp, _ = strconv.ParseFloat(m[3], 64)
		if m[4] != "" {
			r.BytesPerOp, _ = strconv.ParseInt(m[4], 10, 64)
			r.AllocsPerOp, _ = strconv.ParseInt(m[5], 10, 64)
			r.HasMemStats = true
		}
		results = append(results, r)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(results) == 0 {
		fmt.Fprintln(os.Stderr, "no benchmark lines found in input")
		os.Exit(1)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })

	fmt.Fprintln(out, "| Benchmark | ns/op | B/op | allocs/op |")
	fmt.Fprintln(out, "|-----------|------:|-----:|----------:|")
	for _, r := range results {
		if r.HasMemStats {
			fmt.Fprintf(out, "| %s | %.2f | %d | %d |\n",
				r.Name, r.NsPerOp, r.BytesPerOp, r.AllocsPerOp)
		} else {
			fmt.Fprintf(out, "| %s | %.2f | - | - |\n", r.Name, r.NsPerOp)
		}
	}
}
