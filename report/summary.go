package report

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/kirillseva/syberiaStages/pipeline/eval"
)

// Summary describes the distribution of the model-minus-benchmark IRR spread
// across the validation rows.
type Summary struct {
	Count        int
	MeanSpread   float64
	MedianSpread float64
	P10Spread    float64
	P90Spread    float64
}

// Summarize computes summary statistics of the IRR spread.
func Summarize(comparisons []eval.Comparison) (Summary, error) {
	if len(comparisons) == 0 {
		return Summary{}, fmt.Errorf("nothing to summarize")
	}

	spreads := make([]float64, 0, len(comparisons))
	for _, c := range comparisons {
		spreads = append(spreads, c.ModelIRR-c.BenchmarkIRR)
	}

	mean, err := stats.Mean(spreads)
	if err != nil {
		return Summary{}, err
	}
	median, err := stats.Median(spreads)
	if err != nil {
		return Summary{}, err
	}
	p10, err := stats.Percentile(spreads, 10)
	if err != nil {
		return Summary{}, err
	}
	p90, err := stats.Percentile(spreads, 90)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Count:        len(comparisons),
		MeanSpread:   mean,
		MedianSpread: median,
		P10Spread:    p10,
		P90Spread:    p90,
	}, nil
}
