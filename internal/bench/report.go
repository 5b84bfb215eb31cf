package bench

import (
	"fmt"
	"io"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// writeDuration prints one elapsed-seconds line in the fixed-width
// 15-decimal format of the original flowgraph benchmark.
func writeDuration(w io.Writer, seconds float64) error {
	_, err := fmt.Fprintf(w, "%20.15f\n", seconds)
	return err
}

// writeSummary prints aggregate statistics over the per-run timings.
func writeSummary(w io.Writer, seconds []float64) error {
	sorted := slices.Clone(seconds)
	slices.Sort(sorted)

	mean, stddev := stat.MeanStdDev(sorted, nil)
	median := stat.Quantile(0.5, stat.Empirical, sorted, nil)

	_, err := fmt.Fprintf(w, "runs=%d mean=%.6fs median=%.6fs stddev=%.6fs min=%.6fs max=%.6fs\n",
		len(sorted), mean, median, stddev, sorted[0], sorted[len(sorted)-1])
	return err
}
