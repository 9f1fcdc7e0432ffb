package report

import (
	"fmt"
	"os"

	chart "github.com/wcharczuk/go-chart"

	"github.com/kirillseva/syberiaStages/pipeline/eval"
)

// WriteChart renders a PNG scatter of model IRR against benchmark IRR, with
// a y = x reference line.
func WriteChart(path string, comparisons []eval.Comparison) error {
	if len(comparisons) == 0 {
		return fmt.Errorf("nothing to chart")
	}

	xs := make([]float64, 0, len(comparisons))
	ys := make([]float64, 0, len(comparisons))
	lo, hi := comparisons[0].BenchmarkIRR, comparisons[0].BenchmarkIRR
	for _, c := range comparisons {
		xs = append(xs, c.BenchmarkIRR)
		ys = append(ys, c.ModelIRR)
		for _, v := range []float64{c.BenchmarkIRR, c.ModelIRR} {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}

	graph := chart.Chart{
		Title:      "Model vs benchmark IRR",
		TitleStyle: chart.StyleShow(),
		XAxis: chart.XAxis{
			Name:      "Benchmark IRR",
			NameStyle: chart.StyleShow(),
			Style:     chart.StyleShow(),
		},
		YAxis: chart.YAxis{
			Name:      "Model IRR",
			NameStyle: chart.StyleShow(),
			Style:     chart.StyleShow(),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "validation rows",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					Show:        true,
					StrokeWidth: chart.Disabled,
					DotWidth:    4,
				},
			},
			chart.ContinuousSeries{
				Name:    "y = x",
				XValues: []float64{lo, hi},
				YValues: []float64{lo, hi},
				Style: chart.Style{
					Show:            true,
					StrokeDashArray: []float64{4, 4},
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{
		chart.Legend(&graph),
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := graph.Render(chart.PNG, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
