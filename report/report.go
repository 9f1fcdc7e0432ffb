// Package report renders the outputs of the evaluation stage: a CSV of the
// scored validation rows, a chart comparing model and benchmark IRR, and a
// logged summary of the IRR spread.
package report

import (
	"encoding/csv"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/kirillseva/syberiaStages/pipelog"
	"github.com/kirillseva/syberiaStages/pipeline/eval"
)

// Row is one line of the evaluation CSV output. The id column is written
// under the configured column name, so the header row is built by WriteCSV
// rather than from tags.
type Row struct {
	DepVar float64 `csv:"dep_var"`
	DepVal float64 `csv:"dep_val"`
	ID     string  `csv:"id"`
}

// Writer implements eval.Reporter, writing <output>.csv and <output>.png and
// logging summary statistics.
type Writer struct {
	Logger pipelog.Interface
}

// Report implements eval.Reporter
func (w Writer) Report(output, idColumn string, records []eval.PredictionRecord, comparisons []eval.Comparison) error {
	if err := WriteCSV(output+".csv", idColumn, records); err != nil {
		return err
	}
	if err := WriteChart(output+".png", comparisons); err != nil {
		return err
	}

	if w.Logger != nil {
		summary, err := Summarize(comparisons)
		if err != nil {
			return err
		}
		w.Logger.Printf("evaluated %d rows: mean IRR spread %.4f, median %.4f, p10 %.4f, p90 %.4f",
			summary.Count, summary.MeanSpread, summary.MedianSpread, summary.P10Spread, summary.P90Spread)
	}
	return nil
}

// WriteCSV writes the per-row prediction output. idColumn names the id
// header; empty means the default "id".
func WriteCSV(path, idColumn string, records []eval.PredictionRecord) error {
	if idColumn == "" {
		idColumn = "id"
	}

	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, Row{
			DepVar: rec.DepVar,
			DepVal: rec.DepVal,
			ID:     rec.ID,
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	header := csv.NewWriter(f)
	if err := header.Write([]string{"dep_var", "dep_val", idColumn}); err != nil {
		f.Close()
		return err
	}
	header.Flush()
	if err := header.Error(); err != nil {
		f.Close()
		return err
	}

	if err := gocsv.MarshalWithoutHeaders(&rows, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
