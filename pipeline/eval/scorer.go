package eval

import (
	"math"

	"github.com/kirillseva/syberiaStages/dataset"
	"github.com/kirillseva/syberiaStages/errors"
	"github.com/kirillseva/syberiaStages/pipeline"
)

// Context result keys published by the evaluation stage.
const (
	// PredictionDataKey holds the []PredictionRecord produced by Score.
	PredictionDataKey = "prediction_data"
	// BaselineSurvivalKey holds the model's survival curve reference.
	BaselineSurvivalKey = "baseline_fcn"
	// ComparisonKey holds the []Comparison produced by CompareIRR.
	ComparisonKey = "irr_comparison"
)

// PredictionRecord is one scored validation row. Records are immutable after
// creation and live for the duration of the evaluation stage.
type PredictionRecord struct {
	DepVar      float64
	DepVal      float64
	Benchmark   float64
	Installment float64
	FundedAmnt  float64
	Term        int
	Score       float64
	ID          string
}

// Score slices the frame to the validation rows, predicts a score per row
// with the trained model, and assembles the prediction records. It publishes
// the records and the model's baseline survival curve into the evaluation
// sub-record of the context.
func Score(ctx *pipeline.Context, params Params, frame *dataset.Frame, validation []int) ([]PredictionRecord, error) {
	if ctx.ModelStage.Model == nil {
		return nil, pipeline.ConfigError{Field: "model", Reason: "no trained model in context"}
	}
	if len(validation) == 0 {
		return nil, dataset.DataError{Reason: "empty validation set"}
	}

	slice, err := frame.Slice(validation)
	if err != nil {
		return nil, err
	}

	scores, err := ctx.ModelStage.Model.Predict(slice)
	if err != nil {
		return nil, errors.Wrapf(err, "error predicting validation rows")
	}
	if len(scores) != slice.NumRows() {
		return nil, errors.Errorf("model returned %d scores for %d rows", len(scores), slice.NumRows())
	}

	columns := make(map[string][]float64, 6)
	for _, name := range []string{
		params.DepVar, params.DepVal, params.IDBenchmark,
		params.IDInstallment, params.IDFundedAmnt, params.IDTerm,
	} {
		values, err := slice.Numeric(name)
		if err != nil {
			return nil, err
		}
		columns[name] = values
	}

	// the id column is attached when the sliced data carries it
	var ids []string
	if params.IDColumn != "" && slice.HasColumn(params.IDColumn) {
		if ids, err = slice.Label(params.IDColumn); err != nil {
			return nil, err
		}
	}

	records := make([]PredictionRecord, slice.NumRows())
	for i := range records {
		records[i] = PredictionRecord{
			DepVar:      columns[params.DepVar][i],
			DepVal:      columns[params.DepVal][i],
			Benchmark:   columns[params.IDBenchmark][i],
			Installment: columns[params.IDInstallment][i],
			FundedAmnt:  columns[params.IDFundedAmnt][i],
			Term:        int(math.Round(columns[params.IDTerm][i])),
			Score:       scores[i],
		}
		if ids != nil {
			records[i].ID = ids[i]
		}
	}

	ctx.EvaluationStage.Put(PredictionDataKey, records)
	ctx.EvaluationStage.Put(BaselineSurvivalKey, ctx.ModelStage.Model.BaselineSurvival())
	return records, nil
}
