package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-lti/simulate"
)

func writeReport(w io.Writer, name string, res simulate.Result, rows int) error {
	p := res.Params
	c := res.Coefficients
	a := res.Agreement

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Scenario\t%s\n", name)
	fmt.Fprintf(tw, "Parameters\t%s\n", p)
	fmt.Fprintf(tw, "Stable\t%t (margin %.6g, pole radius %.6g)\n", res.Stable, res.Margin, res.Radius)
	fmt.Fprintf(tw, "Coefficients\t%s\n", c)
	fmt.Fprintf(tw, "Max |error|\t%.3e at n=%d\n", a.MaxAbsError, a.MaxAbsPos)
	fmt.Fprintf(tw, "RMS error\t%.3e\n", a.RMSError)
	fmt.Fprintf(tw, "Agrees\t%t (tol %.0e)\n", a.Agrees(), a.Tolerance)
	if res.Spectrum != nil {
		bin, mag := res.Spectrum.Peak()
		fmt.Fprintf(tw, "Spectrum peak\tbin %d of %d (w=%.4f rad), |Y|=%.6g\n",
			bin, res.Spectrum.Size, res.Spectrum.Omega(bin), mag)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	n := min(max(rows, 0), res.Signals.Len())
	if n == 0 {
		return nil
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "n\tx(n)\ty theory\ty processed\terror\t\n")
	fmt.Fprintf(tw, "-\t----\t--------\t-----------\t-----\t\n")
	for i := range n {
		fmt.Fprintf(tw, "%d\t%.9f\t%.9f\t%.9f\t%.2e\t\n",
			res.Signals.Index[i], res.Signals.X[i], res.Signals.Theory[i], res.Processed[i],
			res.Processed[i]-res.Signals.Theory[i])
	}
	return tw.Flush()
}

func writeCSV(w io.Writer, res simulate.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"n", "x", "y_theory", "y_processed"}); err != nil {
		return err
	}
	for i := range res.Signals.Len() {
		rec := []string{
			strconv.Itoa(res.Signals.Index[i]),
			strconv.FormatFloat(res.Signals.X[i], 'g', -1, 64),
			strconv.FormatFloat(res.Signals.Theory[i], 'g', -1, 64),
			strconv.FormatFloat(res.Processed[i], 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeSummary(w io.Writer, outcomes []simulate.Outcome) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Scenario\tN\tStable\tMargin\tRadius\tMax |error|\tRMS error\tStatus\n")
	fmt.Fprintf(tw, "--------\t-\t------\t------\t------\t-----------\t---------\t------\n")
	for _, out := range outcomes {
		p := out.Scenario.Params
		if out.Err != nil {
			fmt.Fprintf(tw, "%s\t%d\t-\t-\t-\t-\t-\t%v\n", out.Scenario.Name, p.NPoints, out.Err)
			continue
		}
		res := out.Result
		status := "ok"
		if !res.Agreement.Agrees() {
			status = "diverged"
		}
		fmt.Fprintf(tw, "%s\t%d\t%t\t%.4g\t%.6f\t%.3e\t%.3e\t%s\n",
			out.Scenario.Name, p.NPoints, res.Stable, res.Margin, res.Radius,
			res.Agreement.MaxAbsError, res.Agreement.RMSError, status)
	}
	return tw.Flush()
}
