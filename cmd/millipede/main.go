// Command millipede derives transmitted and reflected waveforms from a
// measured incident waveform with the 1D analytical junction model. All
// waveforms are normalized to the peak incident magnitude.
//
// Usage:
//
//	millipede [flags] [incident-file ...]
//
// Incident files are CSV or XLSX tables whose first two columns are Time and
// Incident signal, with a header row. Several files are evaluated in
// parallel.
//
// Examples:
//
//	millipede -incident shot_07.csv
//	millipede -parameters bar.toml -write shot_07.csv shot_08.csv
//	millipede -write -format xlsx -summary data/*.csv
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/SubhashUFlorida/millipede-bar/internal/paramfile"
	"github.com/SubhashUFlorida/millipede-bar/internal/tableio"
	"github.com/SubhashUFlorida/millipede-bar/junction"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type options struct {
	incidents  []string
	parameters string
	write      bool
	format     string // file extension of written results
	summary    bool
	workers    int
	tolerance  float64
	progress   bool
	verbose    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	logger := log.New(stderr, "millipede: ", 0)

	params, err := paramfile.Load(opts.parameters)
	if err != nil {
		logger.Printf("parameters: %v", err)
		return exitError
	}
	// Reject incomplete parameters before touching any incident file.
	if err := params.Validate(); err != nil {
		logger.Printf("%s: %v", opts.parameters, err)
		return exitError
	}
	if opts.verbose {
		logger.Printf("parameters: E=%g Pa rho=%g kg/m^3 L=%g m gage=%s m",
			params.ElasticModulus, params.Density, params.JunctionLength, params.GageDistance)
	}

	b := &batch{
		params: params,
		opts:   opts,
		logger: logger,
		modelOpts: []junction.Option{
			junction.WithUniformityTolerance(opts.tolerance),
		},
	}

	results, err := b.run(context.Background(), stderr)
	if err != nil {
		logger.Print(err)
		return exitError
	}

	if err := report(stdout, results, opts); err != nil {
		logger.Printf("output: %v", err)
		return exitError
	}
	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("millipede", flag.ContinueOnError)
	fs.SetOutput(stderr)
	incident := fs.String("incident", "", "CSV or XLSX file with Time and Incident signal as first two columns")
	fs.StringVar(&opts.parameters, "parameters", paramfile.DefaultPath, "TOML file with material and geometric parameters")
	fs.BoolVar(&opts.write, "write", false, `write results next to each incident file, with suffix "`+tableio.OutputSuffix+`"`)
	fs.StringVar(&opts.format, "format", "csv", "result file format: csv or xlsx")
	fs.BoolVar(&opts.summary, "summary", false, "print peak, RMS and energy of each waveform")
	fs.IntVar(&opts.workers, "workers", runtime.NumCPU(), "number of files evaluated in parallel")
	fs.Float64Var(&opts.tolerance, "tolerance", 0, "relative time-step tolerance for the uniform sampling check (0: default)")
	fs.BoolVar(&opts.progress, "progress", true, "show a progress bar when evaluating several files")
	fs.BoolVar(&opts.verbose, "v", false, "log derived model constants")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: millipede [flags] [incident-file ...]\n\n")
		fmt.Fprintf(stderr, "Reads incident waveforms and produces transmitted and reflected waveforms.\n")
		fmt.Fprintf(stderr, "All waveforms are normalized to the maximum incident signal.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  millipede -incident shot_07.csv\n")
		fmt.Fprintf(stderr, "  millipede -parameters bar.toml -write shot_07.csv shot_08.csv\n")
		fmt.Fprintf(stderr, "  millipede -write -format xlsx -summary data/*.csv\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if *incident != "" {
		opts.incidents = append(opts.incidents, *incident)
	}
	opts.incidents = append(opts.incidents, fs.Args()...)
	if len(opts.incidents) == 0 {
		fs.Usage()
		return opts, errors.New("no incident file given")
	}

	switch strings.ToLower(opts.format) {
	case "csv":
		opts.format = tableio.ExtCSV
	case "xlsx":
		opts.format = tableio.ExtXLSX
	default:
		return opts, fmt.Errorf("unknown format %q (want csv or xlsx)", opts.format)
	}

	if opts.workers < 1 {
		opts.workers = 1
	}
	if opts.tolerance < 0 {
		return opts, fmt.Errorf("tolerance must be >= 0: %g", opts.tolerance)
	}
	return opts, nil
}
