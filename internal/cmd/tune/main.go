// Command tune searches the method orderings of the compression pipeline
// that give the fastest compression for a set of compression ratio slots.
package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"sort"
	"testing"

	"github.com/kr/pretty"

	compress "github.com/0xJonas/skylite-sub000"
	"github.com/0xJonas/skylite-sub000/internal/gflag"
	"github.com/0xJonas/skylite-sub000/internal/tuning"
)

type preset struct {
	present bool
	methods []compress.Method
	result  testing.BenchmarkResult
}

// mbPerSec returns the Megabytes (1 000 000 bytes) per seconds that are
// processed.
func mbPerSec(r testing.BenchmarkResult) float64 {
	if v, ok := r.Extra["MB/s"]; ok {
		return v
	}
	if r.Bytes <= 0 || r.T <= 0 || r.N <= 0 {
		return 0
	}
	return (float64(r.Bytes) * float64(r.N) / 1e6) / r.T.Seconds()
}

func ratio(r testing.BenchmarkResult) float64 {
	if x, ok := r.Extra["c/u"]; ok {
		return x
	}
	return math.NaN()
}

// Returns the slot index the ratio qualifies for. If no slot can be found ok
// will be false.
func slot(slots []float64, ratio float64) (i int, ok bool) {
	for i, r := range slots {
		if ratio > r {
			return i - 1, i > 0
		}
	}
	return len(slots) - 1, true
}

// findPresets evaluates all orderings and benchmarks those qualifying for
// a slot. Per slot the fastest ordering is kept.
func findPresets(slots []float64, files []tuning.File, orderings [][]compress.Method) ([]preset, error) {
	if len(slots) == 0 {
		return nil, fmt.Errorf("no slots defined")
	}
	sort.Slice(slots, func(i, j int) bool {
		return slots[i] > slots[j]
	})
	fmt.Printf("slots %.3f\n", slots)

	e, err := tuning.NewEvaluator(files, 4*len(files)*len(orderings))
	if err != nil {
		return nil, err
	}
	presets := make([]preset, len(slots))
	for i, methods := range orderings {
		r, err := e.Evaluate(methods)
		if err != nil {
			return nil, err
		}
		si, ok := slot(slots, r.Ratio())
		if !ok {
			fmt.Printf("%d-%d %s - no slot\n", i+1, len(orderings), r)
			continue
		}
		result := testing.Benchmark(compressBenchmark(files, methods))
		fmt.Printf("%d-%d %s %s\n", i+1, len(orderings), r, result)
		v := mbPerSec(result)
		p := presets[si]
		if p.present && v <= mbPerSec(p.result) {
			fmt.Printf("slot %d - not faster\n", si+1)
			continue
		}
		presets[si] = preset{
			present: true,
			methods: methods,
			result:  result,
		}
		fmt.Printf("slot %d - update\n", si+1)
	}
	return presets, nil
}

const usageStr = `Usage: tune [OPTION]...
Search the method orderings with the best speed for compression ratio
slots.

`

func main() {
	log.SetPrefix("tune: ")
	log.SetFlags(0)
	testing.Init()

	flags := gflag.NewFlagSet("tune", gflag.ExitOnError)
	flags.Usage = func() {
		fmt.Fprint(os.Stderr, usageStr)
		flags.PrintDefaults()
	}
	var (
		help    = flags.BoolP("help", "h", false, "print this message")
		dir     = flags.StringP("dir", "d", "", "corpus directory; default Silesia")
		pattern = flags.StringP("pattern", "p", "", "doublestar pattern selecting corpus files")
		maxLen  = flags.IntP("len", "n", 3, "maximum number of stages")
		sample  = flags.IntP("sample", "s", sampleSize, "bytes used per file")
	)
	flags.Parse(os.Args[1:])
	if *help {
		flags.SetOutput(os.Stdout)
		fmt.Print(usageStr)
		flags.PrintDefaults()
		os.Exit(0)
	}

	files, err := loadFiles(*dir, *pattern, *sample)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d files, %d bytes\n", len(files), tuning.Size(files))

	baselines, err := tuning.Baselines(files)
	if err != nil {
		log.Fatal(err)
	}
	pretty.Println(baselines)

	slots := []float64{0.7, 0.6, 0.5, 0.45, 0.4, 0.35, 0.3}
	orderings := tuning.Orderings(compress.Methods(), *maxLen)
	presets, err := findPresets(slots, files, orderings)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("\n\n### Result ###\n\n")

	for si, p := range presets {
		if si > 0 {
			fmt.Printf("\n")
		}
		if !p.present {
			fmt.Printf("slot %d - not present\n", si+1)
			continue
		}
		fmt.Printf("slot %d - \t%.3f c/u\t%.2f MB/s\n",
			si+1, ratio(p.result), mbPerSec(p.result))
		pretty.Println(p.methods)
	}
}
