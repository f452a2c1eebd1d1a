// Command valvenet reads a valve network and prints the best total credit
// reachable within the horizon.
//
// Usage:
//
//	valvenet [-horizon N] [-agents K] [-start ID] [-model hop|travel]
//	         [-trace] [-stats] [-timeout D] file|-
//	valvenet -gen SHAPE [-rates SPEC] [-seed S]
//
// -gen prints a seeded synthetic network in the input format and exits;
// pipe it back with "-" as the file to solve it.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/katalvlaran/valvenet/network"
	"github.com/katalvlaran/valvenet/valve"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("valvenet: ")
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

// run parses args, solves and writes the report to w.
func run(args []string, stdin io.Reader, w io.Writer) error {
	fs := flag.NewFlagSet("valvenet", flag.ContinueOnError)
	var (
		horizon = fs.Int("horizon", valve.DefaultHorizon, "number of time steps")
		agents  = fs.Int("agents", valve.DefaultAgents, "number of cooperating agents (1 or 2)")
		start   = fs.String("start", "", "start node (default AA, or the first node)")
		model   = fs.String("model", valve.Hop.String(), "branch generator: hop or travel")
		trace   = fs.Bool("trace", false, "print the winning schedule")
		stats   = fs.Bool("stats", false, "print search statistics")
		timeout = fs.Duration("timeout", 0, "abort the search after this long (0 = no limit)")
		gen     = fs.String("gen", "", "generate a network: path:N, cycle:N, star:N, complete:N, grid:R:C, random:N:P")
		rates   = fs.String("rates", "0.5:1:25", "generated rates: K, LO:HI or PZERO:LO:HI")
		seed    = fs.Int64("seed", 1, "seed for -gen")
	)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Syntax : valvenet [options] (file|-)\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *gen != "" {
		net, err := generate(*gen, *rates, *seed)
		if err != nil {
			return err
		}
		return network.Format(w, net)
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected one input file, got %d", fs.NArg())
	}

	m, err := valve.ParseModel(*model)
	if err != nil {
		return err
	}
	net, err := load(fs.Arg(0), stdin)
	if err != nil {
		return err
	}

	popts := []valve.ProblemOption{valve.WithHorizon(*horizon), valve.WithAgents(*agents)}
	if *start != "" {
		popts = append(popts, valve.WithStart(*start))
	}
	p, err := valve.NewProblem(net, popts...)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	sopts := []valve.Option{valve.WithModel(m)}
	if *trace {
		sopts = append(sopts, valve.WithTrace())
	}
	began := time.Now()
	res, err := valve.Solve(ctx, p, sopts...)
	if err != nil {
		return fmt.Errorf("solve (best so far %d): %w", res.Value, err)
	}

	if *trace {
		for _, st := range res.Steps {
			fmt.Fprintln(w, st)
		}
	}
	if *stats {
		s := res.Stats
		fmt.Fprintf(w, "model %s, %d agent(s), %d steps from %s, %v\n", m, p.Agents(), p.Horizon(), p.StartID(), time.Since(began).Round(time.Microsecond))
		fmt.Fprintf(w, "pushed %d, popped %d, expanded %d\n", s.Pushed, s.Popped, s.Expanded)
		fmt.Fprintf(w, "pruned by bound %d, by dominance %d\n", s.PrunedBound, s.PrunedDominance)
		fmt.Fprintf(w, "improvements %d, peak frontier %d\n", s.Improvements, s.PeakFrontier)
	}
	fmt.Fprintln(w, res.Value)

	return nil
}

// load parses path, or stdin when path is "-".
func load(path string, stdin io.Reader) (*network.Network, error) {
	if path == "-" {
		net, err := network.Parse(stdin)
		if err != nil {
			return nil, fmt.Errorf("could not parse stdin: %w", err)
		}
		return net, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	net, err := network.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("could not parse %q: %w", path, err)
	}

	return net, nil
}
