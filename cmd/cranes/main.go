// Command cranes builds or loads a crane grid, runs the unloading solvers,
// times them and checks that they agree.
//
//	cranes -rows 8 -cols 8 -seed 3
//	cranes -grid harbor.txt -algo dynprog
//	cranes -sweep 12 -exhaustive-limit 18
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/cranes/grid"
	"github.com/katalvlaran/cranes/internal/config"
	"github.com/katalvlaran/cranes/unload"
	"github.com/sirupsen/logrus"
)

var errScoreMismatch = errors.New("cranes: exhaustive and dynamic programming scores differ")

func main() {
	log := logrus.New()

	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	log.SetLevel(cfg.Level())

	if err := run(cfg, os.Stdout, log); err != nil {
		log.WithError(err).Error("run failed")
		os.Exit(1)
	}
}

// run solves one grid, or performs a timing sweep when cfg.Sweep > 0.
func run(cfg config.Config, out io.Writer, log *logrus.Logger) error {
	entry := log.WithField("run_id", uuid.NewString())
	if cfg.Sweep > 0 {
		return sweep(cfg, entry)
	}

	g, err := loadGrid(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "grid %dx%d:\n%s\n", g.Rows(), g.Columns(), g)

	scores := make(map[unload.Algorithm]int, 2)
	for _, algo := range algorithms(cfg.Algo) {
		if skipExhaustive(cfg, algo, g.Rows()+g.Columns()-2) {
			entry.WithFields(logrus.Fields{
				"rows":  g.Rows(),
				"cols":  g.Columns(),
				"limit": cfg.ExhaustiveLimit,
			}).Warn("grid too large for exhaustive search, skipping")
			continue
		}
		res, elapsed, err := solve(g, algo)
		if err != nil {
			return fmt.Errorf("%s: %w", algo, err)
		}
		scores[algo] = res.Path.TotalCranes()
		entry.WithFields(logrus.Fields{
			"algo":    algo.String(),
			"rows":    g.Rows(),
			"cols":    g.Columns(),
			"cranes":  res.Path.TotalCranes(),
			"steps":   res.Path.Len(),
			"elapsed": elapsed,
		}).Info("solved")
		fmt.Fprintf(out, "%s: %d cranes in %d steps %v\n%s\n",
			algo, res.Path.TotalCranes(), res.Path.Len(), res.Path.Steps(), res.Path.Render())
	}

	return compare(scores, entry)
}

// sweep times the solvers on n×n random grids for n = 1..cfg.Sweep.
// The exhaustive search only runs while 2n-2 ≤ cfg.ExhaustiveLimit.
func sweep(cfg config.Config, entry *logrus.Entry) error {
	opts := grid.RandomOptions{
		BuildingProbability: cfg.BuildingProbability,
		MaxCranes:           cfg.MaxCranes,
	}
	for n := 1; n <= cfg.Sweep; n++ {
		opts.Seed = cfg.Seed + int64(n)
		g, err := grid.Random(n, n, opts)
		if err != nil {
			return err
		}

		scores := make(map[unload.Algorithm]int, 2)
		for _, algo := range algorithms(cfg.Algo) {
			if skipExhaustive(cfg, algo, 2*n-2) {
				continue
			}
			res, elapsed, err := solve(g, algo)
			if err != nil {
				return fmt.Errorf("n=%d %s: %w", n, algo, err)
			}
			scores[algo] = res.Path.TotalCranes()
			entry.WithFields(logrus.Fields{
				"n":       n,
				"algo":    algo.String(),
				"cranes":  res.Path.TotalCranes(),
				"elapsed": elapsed,
			}).Info("sweep")
		}
		if err := compare(scores, entry.WithField("n", n)); err != nil {
			return err
		}
	}
	return nil
}

// skipExhaustive reports whether the exhaustive search should be left out
// when running both solvers, or in a sweep, because maxSteps exceeds the limit.
// An explicit -algo exhaustive always runs.
func skipExhaustive(cfg config.Config, algo unload.Algorithm, maxSteps int) bool {
	if algo != unload.ExhaustiveSearch || maxSteps <= cfg.ExhaustiveLimit {
		return false
	}
	return cfg.Sweep > 0 || cfg.Algo == config.AlgoBoth
}

// loadGrid reads cfg.GridFile or generates a random grid.
func loadGrid(cfg config.Config) (*grid.Grid, error) {
	if cfg.GridFile == "" {
		return grid.Random(cfg.Rows, cfg.Cols, grid.RandomOptions{
			BuildingProbability: cfg.BuildingProbability,
			MaxCranes:           cfg.MaxCranes,
			Seed:                cfg.Seed,
		})
	}
	f, err := os.Open(cfg.GridFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return grid.Parse(f)
}

// algorithms expands the configured selection; "both" runs exhaustive first.
func algorithms(sel string) []unload.Algorithm {
	if sel == config.AlgoBoth {
		return []unload.Algorithm{unload.ExhaustiveSearch, unload.DynProg}
	}
	algo, err := unload.ParseAlgorithm(sel)
	if err != nil {
		return nil
	}
	return []unload.Algorithm{algo}
}

// solve runs one algorithm and measures wall time.
func solve(g *grid.Grid, algo unload.Algorithm) (unload.Result, time.Duration, error) {
	start := time.Now()
	res, err := unload.Solve(g, unload.Options{Algo: algo})
	return res, time.Since(start), err
}

// compare fails when both algorithms ran and disagree on the score.
func compare(scores map[unload.Algorithm]int, entry *logrus.Entry) error {
	ex, okEx := scores[unload.ExhaustiveSearch]
	dp, okDP := scores[unload.DynProg]
	if !okEx || !okDP {
		return nil
	}
	if ex != dp {
		entry.WithFields(logrus.Fields{"exhaustive": ex, "dynprog": dp}).Error("score mismatch")
		return errScoreMismatch
	}
	entry.WithField("cranes", dp).Debug("scores agree")
	return nil
}
