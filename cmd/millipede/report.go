package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/SubhashUFlorida/millipede-bar/junction"
	"github.com/SubhashUFlorida/millipede-bar/stats/wavestats"
)

// report prints the results: the path of each written file, or the merged
// table when nothing was written, followed by the summary if requested.
func report(w io.Writer, results []fileResult, opts options) error {
	for i, r := range results {
		if len(results) > 1 && !opts.write {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "== %s\n", r.path)
		}

		if opts.write {
			fmt.Fprintf(w, "%s -> %s\n", r.path, r.output)
		} else if err := printTable(w, r.result.Rows); err != nil {
			return err
		}

		if opts.summary {
			if err := printSummary(w, r); err != nil {
				return err
			}
		}
	}
	return nil
}

func printTable(w io.Writer, rows []junction.Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Time\tIncident\tReflected\tTransmitted\t\n")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n",
			strconv.FormatFloat(row.Time(), 'g', 9, 64),
			cell(row.Incident), cell(row.Reflected), cell(row.Transmitted))
	}
	return tw.Flush()
}

func cell(v junction.Value) string {
	if !v.Valid {
		return "NaN"
	}
	return strconv.FormatFloat(v.V, 'f', 6, 64)
}

func printSummary(w io.Writer, r fileResult) error {
	res := r.result
	b := wavestats.Compare(res.Incident, res.Reflected, res.Transmitted)

	fmt.Fprintf(w, "\n%s: c=%.2f m/s Tch=%.6g s delay=%d samples (%.6g s)\n",
		r.path, res.Constants.WaveSpeed, res.Constants.CharacteristicTime,
		res.Constants.DelaySteps, res.Constants.Delay())

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Wave\tPeak\tPeak Time [s]\tRMS\tEnergy\tPeak Ratio\tEnergy Ratio\n")
	fmt.Fprintf(tw, "----\t----\t-------------\t---\t------\t----------\t------------\n")
	lines := []struct {
		name         string
		s            wavestats.Summary
		time         []float64
		peak, energy float64
	}{
		{"incident", b.Incident, r.series.Time, 1, 1},
		{"reflected", b.Reflected, res.Time, b.ReflectionRatio, b.ReflectedEnergy},
		{"transmitted", b.Transmitted, res.Time, b.TransmissionRatio, b.TransmittedEnergy},
	}
	for _, l := range lines {
		fmt.Fprintf(tw, "%s\t%.6f\t%.6g\t%.6f\t%.6g\t%.4f\t%.4f\n",
			l.name, l.s.Peak, l.time[l.s.PeakPos], l.s.RMS, l.s.Energy, l.peak, l.energy)
	}
	return tw.Flush()
}
