package eval

import (
	"testing"

	"github.com/kirillseva/syberiaStages/model"
	"github.com/kirillseva/syberiaStages/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReporter struct {
	output      string
	idColumn    string
	records     []PredictionRecord
	comparisons []Comparison
	calls       int
}

func (r *fakeReporter) Report(output, idColumn string, records []PredictionRecord, comparisons []Comparison) error {
	r.calls++
	r.output = output
	r.idColumn = idColumn
	r.records = records
	r.comparisons = comparisons
	return nil
}

func TestEvaluationStageEndToEnd(t *testing.T) {
	frame := loanFrame(t, 100)
	reporter := &fakeReporter{}

	ctx := &pipeline.Context{
		ModelStage: pipeline.ModelStage{
			Model: constModel{score: 0.1, baseline: flatCurve(36, 0.99)},
		},
		DataStage: pipeline.DataStage{Frame: frame},
	}
	ctx.EvaluationStage.Options = map[string]interface{}{
		"output":        "/tmp/eval",
		"train_percent": 0.8,
	}

	stage := BuildStage(reporter)
	assert.Equal(t, "Evaluate model", stage.Name)
	require.NoError(t, stage.Run(ctx))

	// no random sampling and no external key: rows 80..99 are held out
	require.Len(t, reporter.records, 20)
	assert.Equal(t, "loan-80", reporter.records[0].ID)
	assert.Equal(t, "loan-99", reporter.records[19].ID)

	require.Len(t, reporter.comparisons, 20)
	for _, c := range reporter.comparisons {
		assert.Equal(t, 0.12, c.Benchmark)
		// a positive score scales survival down, so the model-implied return
		// trails the contractual one
		assert.Less(t, c.ModelIRR, c.BenchmarkIRR)
	}

	assert.Equal(t, "/tmp/eval", reporter.output)
	assert.Equal(t, "id", reporter.idColumn)
	assert.Equal(t, 1, reporter.calls)

	published, ok := ctx.EvaluationStage.Get(ComparisonKey)
	require.True(t, ok)
	assert.Equal(t, reporter.comparisons, published)

	curve, ok := ctx.EvaluationStage.Get(BaselineSurvivalKey)
	require.True(t, ok)
	assert.Equal(t, model.SurvivalCurve(flatCurve(36, 0.99)), curve)
}

func TestEvaluationStageRejectsOutOfRangeTrainPercent(t *testing.T) {
	ctx := &pipeline.Context{
		ModelStage: pipeline.ModelStage{
			Model: constModel{baseline: flatCurve(36, 0.99)},
		},
		DataStage: pipeline.DataStage{Frame: loanFrame(t, 10)},
	}
	ctx.EvaluationStage.Options = map[string]interface{}{
		"output":        "/tmp/eval",
		"random_sample": true,
		"seed":          42,
		"train_percent": 1.5,
	}

	err := BuildStage(nil).Run(ctx)
	require.Error(t, err)
	cerr, ok := err.(pipeline.ConfigError)
	require.True(t, ok)
	assert.Equal(t, "train_percent", cerr.Field)
}

func TestEvaluationStageMissingOptions(t *testing.T) {
	ctx := &pipeline.Context{
		ModelStage: pipeline.ModelStage{Model: constModel{baseline: flatCurve(36, 0.99)}},
		DataStage:  pipeline.DataStage{Frame: loanFrame(t, 10)},
	}

	err := BuildStage(nil).Run(ctx)
	require.Error(t, err)
	_, ok := err.(pipeline.ConfigError)
	assert.True(t, ok)
}

func TestEvaluationStageMissingFrame(t *testing.T) {
	ctx := &pipeline.Context{
		ModelStage: pipeline.ModelStage{Model: constModel{baseline: flatCurve(36, 0.99)}},
	}
	ctx.EvaluationStage.Options = map[string]interface{}{"output": "/tmp/eval"}

	err := BuildStage(nil).Run(ctx)
	require.Error(t, err)
	_, ok := err.(pipeline.ConfigError)
	assert.True(t, ok)
}

func TestEvaluationStageNilReporter(t *testing.T) {
	ctx := &pipeline.Context{
		ModelStage: pipeline.ModelStage{
			Model: constModel{baseline: flatCurve(36, 0.99)},
		},
		DataStage: pipeline.DataStage{Frame: loanFrame(t, 10)},
	}
	ctx.EvaluationStage.Options = map[string]interface{}{"output": "/tmp/eval"}

	require.NoError(t, BuildStage(nil).Run(ctx))

	_, ok := ctx.EvaluationStage.Get(PredictionDataKey)
	assert.True(t, ok)
}
