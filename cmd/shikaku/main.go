//go:build !lambda

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/andryr/shikaku"
)

const usage = `Usage: shikaku [flags] <command> [args]

Commands:
  solve <grid-file>                solve one instance
  gen   <size> <depth> <merges>    generate an instance to stdout
  batch <dir> <store.json>         solve every instance in dir, skip solved
  bench <size...>                  sweep generated instances, print aggregates

Flags:
`

func main() {
	method := flag.String("method", "gophersat", "solving method: gophersat, gini or anneal")
	timeout := flag.Duration("timeout", 0, "wall-clock cutoff per exact solve (0 = none)")
	seed := flag.Int64("seed", 1, "random seed for annealing and generation")
	depth := flag.Int("depth", 4, "generator recursion depth (bench)")
	merges := flag.Int("merges", 0, "generator merge iterations (bench)")
	perPoint := flag.Int("n", 20, "instances per parameter combination (bench)")
	jsonOut := flag.Bool("json", false, "output results as JSON")
	verbose := flag.Bool("verbose", false, "print search progress to stderr")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	shikaku.SetVerbose(*verbose)

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	switch args[0] {
	case "solve":
		if len(args) != 2 {
			fatalf("solve needs a grid file")
		}
		runSolve(args[1], pickMethod(*method, *timeout, *seed), *jsonOut)
	case "gen":
		if len(args) != 4 {
			fatalf("gen needs <size> <depth> <merges>")
		}
		size, d, mi := atoi(args[1]), atoi(args[2]), atoi(args[3])
		rng := rand.New(rand.NewSource(*seed))
		fmt.Print(shikaku.Generate(size, size, d, mi, rng).String())
	case "batch":
		if len(args) != 3 {
			fatalf("batch needs <dir> <store.json>")
		}
		ran, err := shikaku.RunBatch(args[1], args[2], pickMethod(*method, *timeout, *seed))
		if err != nil {
			fatalf("batch: %v", err)
		}
		fmt.Fprintf(os.Stderr, "solved %d new instances\n", ran)
	case "bench":
		if len(args) < 2 {
			fatalf("bench needs at least one grid size")
		}
		var points []shikaku.SweepPoint
		for _, a := range args[1:] {
			points = append(points, shikaku.SweepPoint{Size: atoi(a), Depth: *depth, MergeIters: *merges})
		}
		rows := shikaku.Sweep(points, *perPoint, pickMethod(*method, *timeout, *seed),
			*seed, shikaku.BySize, runtime.GOMAXPROCS(0))
		printRows(rows, *jsonOut)
	default:
		fatalf("unknown command %q", args[0])
	}
}

func runSolve(path string, m shikaku.Method, jsonOut bool) {
	g, err := shikaku.LoadGrid(path)
	if err != nil {
		fatalf("%v", err)
	}
	res, err := m.Solve(g)
	if err != nil {
		fatalf("%v", err)
	}
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(res)
		return
	}
	fmt.Print(shikaku.FormatSolution(g, res))
}

// pickMethod maps the -method flag to a Method value; the engine itself only
// ever sees the capability interface.
func pickMethod(name string, timeout time.Duration, seed int64) shikaku.Method {
	switch name {
	case "gophersat":
		return shikaku.ExactMethod(shikaku.GophersatBackend{}, timeout)
	case "gini":
		return shikaku.ExactMethod(shikaku.GiniBackend{}, timeout)
	case "anneal":
		return shikaku.AnnealMethod(seed, shikaku.DefaultConfig())
	default:
		fatalf("unknown method %q", name)
		panic("unreachable")
	}
}

func printRows(rows []shikaku.BenchRow, jsonOut bool) {
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(rows)
		return
	}
	fmt.Printf("%8s %10s %10s %12s\n", "key", "instances", "optimal", "mean time")
	for _, r := range rows {
		fmt.Printf("%8d %10d %9.0f%% %10.1fms\n", r.Key, r.Instances, 100*r.OptimalFrac, r.MeanTimeMs)
	}
}

func atoi(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		fatalf("invalid number %q", s)
	}
	return v
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
