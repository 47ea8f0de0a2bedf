package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"math-battle/internal/defs"
	"math-battle/internal/replay"
)

func main() {
	var cfg runConfig
	var runs int
	var seedBase int64
	var defsDir string
	var tracePath string
	var kinds string

	flag.IntVar(&runs, "runs", 5, "number of headless sessions")
	flag.Int64Var(&seedBase, "seed-base", 42, "seed of run 1, incremented per run")
	flag.StringVar(&cfg.character, "character", "archer", "character id")
	flag.IntVar(&cfg.tier, "tier", 1, "difficulty tier 1..3")
	flag.StringVar(&kinds, "kinds", "", "comma separated operation kinds (default all)")
	flag.Float64Var(&cfg.accuracy, "accuracy", 0.8, "probability of a correct answer")
	flag.Int64Var(&cfg.answerIntervalMs, "answer-interval-ms", 1500, "logical time between answers")
	flag.Int64Var(&cfg.maxMs, "max-ms", 180000, "session time limit in logical ms")
	flag.IntVar(&cfg.killGoal, "kill-goal", 0, "end with victory after this many kills (0 = off)")
	flag.StringVar(&defsDir, "defs", "", "directory with definition files (default embedded)")
	flag.StringVar(&tracePath, "trace", "", "write a msgpack event trace per run to this path")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if cfg.answerIntervalMs <= 0 || cfg.maxMs <= 0 {
		fmt.Println("error: -answer-interval-ms and -max-ms must be > 0")
		return
	}
	for _, k := range strings.Split(kinds, ",") {
		if k = strings.TrimSpace(k); k == "" {
			continue
		}
		kind, ok := defs.ParseOperationKind(k)
		if !ok {
			fmt.Printf("error: unknown operation kind %q\n", k)
			return
		}
		cfg.kinds = append(cfg.kinds, kind)
	}

	lib, err := loadLibrary(defsDir)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("=== Headless Battle Report ===\n")
	fmt.Printf("character=%s tier=%d runs=%d seed_base=%d accuracy=%.2f answer_interval=%dms\n\n",
		cfg.character, cfg.tier, runs, seedBase, cfg.accuracy, cfg.answerIntervalMs)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)
		stats, rec, err := runSession(lib, cfg, i+1, seed)
		if err != nil {
			log.Fatal(err)
		}
		all = append(all, stats)
		printRun(stats)
		if tracePath != "" {
			if err := writeTrace(traceFile(tracePath, i+1, runs), rec); err != nil {
				log.Fatal(err)
			}
		}
	}
	printAggregate(all)
}

func loadLibrary(dir string) (*defs.Library, error) {
	if dir == "" {
		return defs.LoadDefaults()
	}
	return defs.LoadLibrary(dir)
}

func traceFile(path string, run, runs int) string {
	if runs == 1 {
		return path
	}
	return fmt.Sprintf("%s.%d", path, run)
}

func writeTrace(path string, rec *replay.Recorder) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer f.Close()
	return rec.Encode(f)
}
