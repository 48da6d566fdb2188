// Command dpllsat solves DIMACS CNF files with a DPLL solver.
package main

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dpllsat/dpllsat/solver"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		timeout time.Duration
		emitCNF bool
	)
	cmd := &cobra.Command{
		Use:   "dpllsat <file.cnf> [<file.cnf> ...]",
		Short: "Decide satisfiability of DIMACS CNF files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.New()
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			return runAll(args, log, timeout, emitCNF, verbose)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging and search statistics")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "per-file search timeout (0 disables)")
	cmd.Flags().BoolVar(&emitCNF, "emit-cnf", false, "print the parsed CNF before solving")
	return cmd
}

// runAll solves every file in args, one goroutine per file —
// embarrassingly parallel across files, never within one file's
// single-threaded search state — and prints results in argument
// order. Any file's I/O or parse error fails the whole invocation.
func runAll(paths []string, log *logrus.Logger, timeout time.Duration, emitCNF, verbose bool) error {
	results := make([]string, len(paths))
	errs := make([]error, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			out, err := solveFile(path, log, timeout, emitCNF, verbose)
			results[i], errs[i] = out, err
		}(i, path)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("%s: %w", paths[i], err)
		}
		fmt.Print(results[i])
	}
	return nil
}

func solveFile(path string, log *logrus.Logger, timeout time.Duration, emitCNF, verbose bool) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("could not open %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	cnf, err := solver.ParseCNF(f)
	if err != nil {
		return "", fmt.Errorf("could not parse %q: %w", path, err)
	}

	var out strings.Builder
	if emitCNF {
		out.WriteString(cnf.String())
	}

	s := solver.New(cnf, solver.WithLogger(log.WithField("file", path)))
	status := solveWithTimeout(s, timeout)

	switch status {
	case solver.Sat:
		out.WriteString("sat\n")
		rendered, valid := solver.FormatModel(cnf, s.Model())
		if valid {
			out.WriteString("model validated\n")
		} else {
			out.WriteString("invalid model\n")
		}
		out.WriteString(rendered)
		out.WriteString("\n")
	case solver.Unsat:
		out.WriteString("unsat\n")
	default:
		return "", fmt.Errorf("timed out after %s solving %q", timeout, path)
	}

	if verbose {
		out.WriteString(fmt.Sprintf("c nb decisions: %d\nc nb conflicts (i.e. backtracks): %d\n",
			s.Stats.NbDecisions, s.Stats.NbBacktracks))
	}
	return out.String(), nil
}

// solveWithTimeout runs s.Solve on its own goroutine and abandons it
// on timeout: no partial state needs to be salvaged, since the
// goroutine is simply left to finish or die on its own. A zero
// timeout disables this and solves inline.
func solveWithTimeout(s *solver.Solver, timeout time.Duration) solver.Status {
	if timeout <= 0 {
		return s.Solve()
	}
	done := make(chan solver.Status, 1)
	go func() { done <- s.Solve() }()
	select {
	case status := <-done:
		return status
	case <-time.After(timeout):
		return solver.Indet
	}
}
