// Package eval builds the pipeline stage that evaluates a trained survival
// model: it holds out a validation partition, scores it, and compares the
// model-implied IRR of each row against its benchmark.
package eval

import (
	"github.com/kirillseva/syberiaStages/pipeline"
)

// Reporter renders the evaluation outputs. Rendering mechanics (CSV, chart)
// are external to this package; see the report package for the standard
// implementation. idColumn is the configured name of the record id column.
type Reporter interface {
	Report(output, idColumn string, records []PredictionRecord, comparisons []Comparison) error
}

// StageName is the display name of the evaluation stage.
const StageName = "Evaluate model"

// BuildStage returns the evaluation stage action. The action resolves its
// parameters from the evaluation sub-record's options, selects the
// validation partition, scores it, computes the IRR comparison, publishes
// results into the context, and hands them to the reporter. The first failed
// precondition aborts the stage.
func BuildStage(reporter Reporter) pipeline.NamedAction {
	return pipeline.NamedAction{
		Name: StageName,
		Run: func(ctx *pipeline.Context) error {
			opts, ok := ctx.EvaluationStage.Options.(map[string]interface{})
			if !ok {
				return pipeline.ConfigError{Field: "evaluation", Reason: "stage options must be a mapping"}
			}

			params, err := ResolveParams(opts)
			if err != nil {
				return err
			}

			frame := ctx.DataStage.Frame
			if frame == nil {
				return pipeline.ConfigError{Field: "data", Reason: "no dataset in context"}
			}

			validation, err := SelectValidation(ctx, params, frame)
			if err != nil {
				return err
			}

			records, err := Score(ctx, params, frame, validation)
			if err != nil {
				return err
			}

			comparisons, err := CompareIRR(records, ctx.ModelStage.Model.BaselineSurvival())
			if err != nil {
				return err
			}
			ctx.EvaluationStage.Put(ComparisonKey, comparisons)

			if reporter == nil {
				return nil
			}
			return reporter.Report(params.Output, params.IDColumn, records, comparisons)
		},
	}
}
