// Command benchmodwt measures transform throughput across signal sizes and
// engine configurations. It prints a ns/op table to stdout and can attach a
// timing observer that forwards per-transform measurements.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"runtime"
	"strings"
	"time"

	algomodwt "github.com/cwbudde/algo-modwt"
	"github.com/cwbudde/algo-modwt/internal/cpu"
)

type benchResult struct {
	variant string
	nsPerOp float64
}

func main() {
	var (
		sizeList = flag.String("sizes", "1024,4096,16384,65536", "comma-separated signal sizes")
		iters    = flag.Int("iters", 50, "benchmark iterations")
		warmup   = flag.Int("warmup", 5, "warmup iterations")
		wavelet  = flag.String("wavelet", "db4", "wavelet name")
		batch    = flag.Int("batch", 16, "batch size for the batch engine variants")
		workers  = flag.Int("workers", runtime.GOMAXPROCS(0), "worker count for parallel variants")
		levels   = flag.Int("levels", 0, "decomposition depth, 0 for the maximum per size")
		observe  = flag.Bool("observe", false, "log per-transform timing observations")
		seed     = flag.Int64("seed", 1, "rng seed")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	w, ok := algomodwt.WaveletByName(*wavelet)
	if !ok {
		logger.Error("unknown wavelet", "name", *wavelet)
		os.Exit(1)
	}

	sizes := parseSizes(*sizeList)
	if len(sizes) == 0 {
		logger.Error("no sizes specified")
		os.Exit(1)
	}

	features := cpu.DetectFeatures()
	logger.Info("benchmark setup",
		"wavelet", w.Name(),
		"arch", features.Architecture,
		"lanes", features.VectorLanes(),
		"iters", *iters,
		"warmup", *warmup,
		"batch", *batch,
		"workers", *workers,
	)

	var obs algomodwt.TimingObserver
	if *observe {
		obs = algomodwt.TimingObserverFunc(func(op string, n, lv int, elapsed time.Duration) {
			logger.Info("transform", "op", op, "n", n, "levels", lv, "elapsed", elapsed)
		})
	}

	rnd := rand.New(rand.NewSource(*seed))

	cascade, err := algomodwt.NewMultiLevel(w, algomodwt.Periodic)
	if err != nil {
		logger.Error("cascade setup failed", "err", err)
		os.Exit(1)
	}

	fmt.Printf("%8s  %8s  %-16s  %12s\n", "size", "levels", "variant", "ns/op")

	for _, n := range sizes {
		depth := *levels
		if depth <= 0 {
			depth = cascade.MaxLevels(n)
		}

		results := benchmarkSize(rnd, w, n, depth, *iters, *warmup, *batch, *workers, obs)
		for _, res := range results {
			fmt.Printf("%8d  %8d  %-16s  %12.1f\n", n, depth, res.variant, res.nsPerOp)
		}
	}
}

func benchmarkSize(rnd *rand.Rand, w *algomodwt.Wavelet, n, depth, iters, warmup, batch, workers int, obs algomodwt.TimingObserver) []benchResult {
	signal := make([]float64, n)
	for i := range signal {
		signal[i] = rnd.Float64()*2 - 1
	}

	signals := make([][]float64, batch)
	for b := range signals {
		signals[b] = make([]float64, n)
		for i := range signals[b] {
			signals[b][i] = rnd.Float64()*2 - 1
		}
	}

	var results []benchResult

	single, err := algomodwt.New(w, algomodwt.Periodic)
	if err == nil {
		results = appendResult(results, "forward", iters, warmup, func() error {
			_, err := single.Forward(signal)
			return err
		})
	}

	seq, err := algomodwt.NewMultiLevel(w, algomodwt.Periodic)
	if err == nil {
		results = appendResult(results, "cascade", iters, warmup, func() error {
			_, err := seq.Decompose(signal, depth)
			return err
		})
	}

	par, err := algomodwt.NewParallelMultiLevel(w, algomodwt.Periodic, workers)
	if err == nil {
		defer par.Close()

		results = appendResult(results, "cascade-parallel", iters, warmup, func() error {
			_, err := par.Decompose(signal, depth)
			return err
		})
	}

	for _, cfg := range []struct {
		name string
		cfg  algomodwt.Config
	}{
		{"batch-scalar", algomodwt.Config{Parallelism: 1, MemoryPool: true}},
		{"batch-soa", algomodwt.Config{Parallelism: 1, MemoryPool: true, SoALayout: true}},
		{"batch-parallel", algomodwt.Config{Parallelism: workers, MemoryPool: true, SoALayout: true}},
	} {
		engine, err := algomodwt.NewBatchEngine(cfg.cfg)
		if err != nil {
			continue
		}

		if obs != nil {
			engine.SetTimingObserver(obs)
		}

		results = appendResult(results, cfg.name, iters, warmup, func() error {
			_, err := engine.TransformBatch(signals, w, algomodwt.Periodic)
			return err
		})

		_ = engine.Close()
	}

	return results
}

func appendResult(results []benchResult, variant string, iters, warmup int, run func() error) []benchResult {
	for w := 0; w < warmup; w++ {
		if err := run(); err != nil {
			return results
		}
	}

	runtime.GC()

	start := time.Now()

	for it := 0; it < iters; it++ {
		if err := run(); err != nil {
			return results
		}
	}

	elapsed := time.Since(start)

	return append(results, benchResult{
		variant: variant,
		nsPerOp: float64(elapsed.Nanoseconds()) / float64(iters),
	})
}

func parseSizes(list string) []int {
	parts := strings.Split(list, ",")

	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var n int

		_, err := fmt.Sscanf(part, "%d", &n)
		if err != nil || n <= 0 {
			continue
		}

		out = append(out, n)
	}

	return out
}
