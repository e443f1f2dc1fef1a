// Command cpufeat prints the x86 instruction-set extensions detected on the
// executing CPU.
//
// Usage:
//
//	cpufeat [flags] [feature ...]
//
// Without arguments it prints every catalogued feature. With arguments it
// prints only the named features and exits with status 1 if any of them is
// absent, or 2 if a name is unknown.
//
// Examples:
//
//	cpufeat
//	cpufeat avx2 fma
//	cpufeat --format yaml
//	cpufeat --compare
//	cpufeat --list
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-cpufeat/internal/cpuid"
	"github.com/cwbudde/algo-cpufeat/x86"
)

const (
	exitOK      = 0
	exitAbsent  = 1
	exitUsage   = 2
	exitFailure = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	list    bool
	compare bool
	verbose bool
	format  string
}

// report is the machine-readable form of the output.
type report struct {
	Arch           string        `json:"arch" yaml:"arch"`
	Classification string        `json:"classification" yaml:"classification"`
	Vendor         string        `json:"vendor,omitempty" yaml:"vendor,omitempty"`
	Brand          string        `json:"brand,omitempty" yaml:"brand,omitempty"`
	Features       []featureRow  `json:"features" yaml:"features"`
	Mismatches     []mismatchRow `json:"mismatches,omitempty" yaml:"mismatches,omitempty"`
}

type featureRow struct {
	Name     string `json:"name" yaml:"name"`
	Detected bool   `json:"detected" yaml:"detected"`
}

type mismatchRow struct {
	Oracle   string `json:"oracle" yaml:"oracle"`
	Feature  string `json:"feature" yaml:"feature"`
	Reported bool   `json:"reported" yaml:"reported"`
	Detected bool   `json:"detected" yaml:"detected"`
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	flagSet := pflag.NewFlagSet("cpufeat", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.BoolVar(&opts.list, "list", false, "list accepted feature names")
	flagSet.BoolVar(&opts.compare, "compare", false, "cross-check against independent detectors")
	flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "log detection details to stderr")
	flagSet.StringVar(&opts.format, "format", "text", "output format: text, json or yaml")
	flagSet.Usage = func() {
		fmt.Fprintf(stderr, "Usage: cpufeat [flags] [feature ...]\n\n")
		fmt.Fprintf(stderr, "Prints the x86 instruction-set extensions detected on this CPU.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if opts.list {
		for _, name := range x86.Names() {
			fmt.Fprintln(stdout, name)
		}
		return exitOK
	}

	switch opts.format {
	case "text", "json", "yaml":
	default:
		fmt.Fprintf(stderr, "error: unknown format %q\n", opts.format)
		return exitUsage
	}

	logger.Debug("safety classification",
		"arch", runtime.GOARCH,
		"classification", x86.Classification(),
		"probe_compiled", cpuid.ProbeCompiled,
		"assume_safe", cpuid.AssumeSafe)

	rep := report{
		Arch:           runtime.GOARCH,
		Classification: x86.Classification().String(),
	}

	names := flagSet.Args()
	queried := len(names) > 0
	if !queried {
		for _, f := range x86.Features() {
			names = append(names, f.String())
		}
	}

	absent := false
	for _, name := range names {
		ok, err := x86.Detected(name)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			if errors.Is(err, x86.ErrUnknownFeature) && !errors.Is(err, x86.ErrUnsupportedArchitecture) {
				fmt.Fprintf(stderr, "use --list to see accepted names\n")
			}
			return exitUsage
		}
		absent = absent || !ok
		rep.Features = append(rep.Features, featureRow{Name: name, Detected: ok})
	}
	logger.Debug("detection complete", "detected", x86.Host().Len(), "catalogued", len(x86.Features()))

	if opts.compare {
		mismatches, vendor, brand, err := compare(logger)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitFailure
		}
		rep.Vendor, rep.Brand = vendor, brand
		rep.Mismatches = mismatches
	}

	if err := write(stdout, opts.format, rep); err != nil {
		fmt.Fprintf(stderr, "error: failed to write output: %v\n", err)
		return exitFailure
	}

	if len(rep.Mismatches) > 0 {
		return exitFailure
	}
	if queried && absent {
		return exitAbsent
	}
	return exitOK
}

func write(w io.Writer, format string, rep report) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeText(w, rep)
	}
}

func writeText(w io.Writer, rep report) error {
	if _, err := fmt.Fprintf(w, "arch: %s  cpuid: %s\n", rep.Arch, rep.Classification); err != nil {
		return err
	}
	if rep.Vendor != "" {
		if _, err := fmt.Fprintf(w, "cpu: %s %s\n", rep.Vendor, rep.Brand); err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Feature\tDetected\n-------\t--------\n"); err != nil {
		return err
	}
	for _, row := range rep.Features {
		mark := "no"
		if row.Detected {
			mark = "yes"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", row.Name, mark); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, m := range rep.Mismatches {
		if _, err := fmt.Fprintf(w, "mismatch: %s reports %s=%v, detected %v\n", m.Oracle, m.Feature, m.Reported, m.Detected); err != nil {
			return err
		}
	}
	return nil
}
