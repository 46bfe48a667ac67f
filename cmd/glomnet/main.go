// SPDX-License-Identifier: MIT

// Command glomnet builds a connectivity model from a YAML params file and
// prints a per-artifact summary.
//
// Usage:
//
//	glomnet [-config params.yaml] [-seed N] [-artifact NAME] [-v]
//	glomnet -defaults > params.yaml
//
// Without -config the built-in defaults are used. -artifact prints the full
// contents of one artifact after the summary.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/katalvlaran/glomnet/circuit"
	"github.com/katalvlaran/glomnet/config"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "glomnet:", err)
		os.Exit(1)
	}
}

// run is main without the process exit, so it can be tested.
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("glomnet", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		path     = fs.String("config", "", "YAML params file (defaults when empty)")
		seed     = fs.Uint64("seed", circuit.DefaultSeed, "RNG seed")
		artifact = fs.String("artifact", "", "print the full contents of this artifact")
		defaults = fs.Bool("defaults", false, "print the default params as YAML and exit")
		verbose  = fs.Bool("v", false, "log build stages")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *defaults {
		return config.Encode(stdout, circuit.DefaultParams())
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	params := circuit.DefaultParams()
	if *path != "" {
		var err error
		if params, err = config.Load(*path); err != nil {
			return err
		}
		logger.Debug("params loaded", slog.String("path", *path))
	}

	model, err := circuit.Build(params, circuit.WithSeed(*seed), circuit.WithLogger(logger))
	if err != nil {
		return err
	}

	if err = printSummary(stdout, model.Summary()); err != nil {
		return err
	}
	if *artifact == "" {
		return nil
	}

	a, ok := model.Artifact(*artifact)
	if !ok {
		return fmt.Errorf("unknown artifact %q", *artifact)
	}

	return printArtifact(stdout, a)
}

func printSummary(w io.Writer, stats []circuit.Stats) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tSHAPE\tNONZERO\tMEAN\tSTD\tMIN\tMAX")
	for _, s := range stats {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%.4g\t%.4g\t%.4g\t%.4g\n",
			s.Name, s.Kind, s.Shape, s.NonZero, s.Mean, s.Std, s.Min, s.Max)
	}

	return tw.Flush()
}

func printArtifact(w io.Writer, a circuit.Artifact) error {
	fmt.Fprintf(w, "\n%s (%s %s)\n", a.Name, a.Kind, a.Shape)
	var err error
	switch a.Kind {
	case circuit.KindMask:
		_, err = io.WriteString(w, a.Mask.String())
	case circuit.KindWeights:
		_, err = io.WriteString(w, a.Weights.String())
	case circuit.KindVector:
		for _, v := range a.Vector {
			if _, err = fmt.Fprintf(w, "%g\n", v); err != nil {
				break
			}
		}
	}

	return err
}
