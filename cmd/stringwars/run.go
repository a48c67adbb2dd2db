package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/dustin/go-humanize"

	"github.com/jcalabro/stringwars"
)

var initEngine sync.Once

// setBenchtime forwards the duration or iteration count to the testing
// package, which reads it from its own flag set.
func setBenchtime(v string) error {
	initEngine.Do(testing.Init)
	if err := flag.Set("test.benchtime", v); err != nil {
		return fmt.Errorf("%w: benchtime %q: %w", stringwars.ErrConfig, v, err)
	}
	return nil
}

// run prepares every group before measuring anything, then benchmarks each
// candidate in order. A panicking candidate takes the process down with it.
func run(out io.Writer, opts *options, groups []stringwars.Group) error {
	cfg, err := stringwars.ConfigFromEnv()
	if err != nil {
		return err
	}
	cfg.Logger = opts.logger

	if err := setBenchtime(opts.benchtime); err != nil {
		return err
	}

	workloads, err := stringwars.PrepareAll(cfg, groups)
	if err != nil {
		return err
	}

	for _, w := range workloads {
		for _, id := range w.Group.Candidates {
			fn, err := w.Benchmark(id)
			if err != nil {
				return err
			}

			opts.logger.Debug("measuring", "group", w.Group.Name, "candidate", id.String())
			res := testing.Benchmark(fn)
			if res.N == 0 {
				return fmt.Errorf("%s/%s: benchmark did not complete", w.Group.Name, id)
			}
			fmt.Fprintln(out, formatResult(w, id, res))
		}
	}
	return nil
}

func formatResult(w *stringwars.Workload, id stringwars.CandidateID, res testing.BenchmarkResult) string {
	nsPerOp := float64(res.T.Nanoseconds()) / float64(res.N)

	var rate string
	switch w.Throughput.Kind {
	case stringwars.Bytes:
		if secs := res.T.Seconds(); secs > 0 {
			rate = humanize.Bytes(uint64(float64(res.Bytes)*float64(res.N)/secs)) + "/s"
		}
	case stringwars.Elements:
		rate = humanize.Comma(int64(res.Extra["pairs/s"])) + " pairs/s"
	}

	return fmt.Sprintf("%-16s %-26s %12.1f ns/op  %10d ops  %s",
		w.Group.Name, id, nsPerOp, res.N, rate)
}

func listGroups(out io.Writer, groups []stringwars.Group) error {
	for _, g := range groups {
		modes := make([]string, len(g.Modes))
		for i, m := range g.Modes {
			modes[i] = m.String()
		}
		if _, err := fmt.Fprintf(out, "%s (%s; modes: %s)\n", g.Name, g.Shape, strings.Join(modes, ", ")); err != nil {
			return err
		}
		for _, id := range g.Candidates {
			if _, err := fmt.Fprintf(out, "  %s\n", id); err != nil {
				return err
			}
		}
	}
	return nil
}
