package main

import (
	"log"
	"os"

	arg "github.com/alexflint/go-arg"
	"github.com/gocarina/gocsv"

	"github.com/kirillseva/syberiaStages/dataset"
	"github.com/kirillseva/syberiaStages/model"
	"github.com/kirillseva/syberiaStages/pipelog"
	"github.com/kirillseva/syberiaStages/pipeline"
	"github.com/kirillseva/syberiaStages/pipeline/eval"
	"github.com/kirillseva/syberiaStages/pipeline/export"
	"github.com/kirillseva/syberiaStages/report"
	"github.com/kirillseva/syberiaStages/storage"
)

func noErr(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

type loanRow struct {
	ID          string  `csv:"id"`
	DepVar      float64 `csv:"dep_var"`
	DepVal      float64 `csv:"dep_val"`
	Benchmark   float64 `csv:"benchmark"`
	Installment float64 `csv:"installment"`
	FundedAmnt  float64 `csv:"funded_amnt"`
	Term        float64 `csv:"term"`
}

func loadFrame(path string) (*dataset.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []loanRow
	if err := gocsv.Unmarshal(f, &rows); err != nil {
		return nil, err
	}

	n := len(rows)
	cols := map[string][]float64{
		"dep_var":     make([]float64, n),
		"dep_val":     make([]float64, n),
		"benchmark":   make([]float64, n),
		"installment": make([]float64, n),
		"funded_amnt": make([]float64, n),
		"term":        make([]float64, n),
	}
	ids := make([]string, n)
	for i, row := range rows {
		cols["dep_var"][i] = row.DepVar
		cols["dep_val"][i] = row.DepVal
		cols["benchmark"][i] = row.Benchmark
		cols["installment"][i] = row.Installment
		cols["funded_amnt"][i] = row.FundedAmnt
		cols["term"][i] = row.Term
		ids[i] = row.ID
	}

	frame := dataset.NewFrame(n)
	for _, name := range []string{"dep_var", "dep_val", "benchmark", "installment", "funded_amnt", "term"} {
		if err := frame.AddNumeric(name, cols[name]); err != nil {
			return nil, err
		}
	}
	if err := frame.AddLabel("id", ids); err != nil {
		return nil, err
	}
	return frame, nil
}

func main() {
	args := struct {
		Data         string `arg:"required" help:"path to the modeling dataset csv"`
		Model        string `arg:"required" help:"path to the trained model json"`
		Output       string `arg:"required" help:"output path prefix for the evaluation report"`
		ExportPath   string `help:"local path the model artifact is exported to"`
		ExportURI    string `help:"optional s3://bucket/key the model artifact is exported to"`
		ExportDSN    string `help:"optional sqlite dsn the model artifact is exported to"`
		TrainPercent float64
		RandomSample bool
		Seed         int64
	}{
		TrainPercent: 0.8,
		Seed:         42,
	}
	arg.MustParse(&args)

	mf, err := os.Open(args.Model)
	noErr(err)
	m, err := model.NewPHModelFromJSON(mf)
	mf.Close()
	noErr(err)

	frame, err := loadFrame(args.Data)
	noErr(err)

	ctx := &pipeline.Context{
		ModelStage: pipeline.ModelStage{Model: m},
		DataStage:  pipeline.DataStage{Frame: frame},
	}
	evalOpts := map[string]interface{}{
		"output":        args.Output,
		"train_percent": args.TrainPercent,
	}
	if args.RandomSample {
		evalOpts["random_sample"] = true
		evalOpts["seed"] = args.Seed
	}
	ctx.EvaluationStage.Options = evalOpts

	var targets []export.Target
	if args.ExportPath != "" {
		targets = append(targets, export.Target{Keyword: "file", Options: args.ExportPath})
	}
	if args.ExportURI != "" {
		targets = append(targets, export.Target{Keyword: "s3", Options: args.ExportURI})
	}
	if args.ExportDSN != "" {
		targets = append(targets, export.Target{
			Keyword: "db",
			Options: map[string]interface{}{"dsn": args.ExportDSN, "name": args.Model},
		})
	}
	ctx.ExportStage.Options = targets

	var actions []pipeline.NamedAction
	if len(targets) > 0 {
		exports, err := export.Build(
			storage.NewRegistry(storage.FileAdapter{}, storage.S3Adapter{}, storage.DBAdapter{}),
			ctx.ExportStage.Options,
		)
		noErr(err)
		actions = append(actions, exports...)
	}
	actions = append(actions, eval.BuildStage(report.Writer{Logger: pipelog.Basic}))

	runner := pipeline.NewRunner(pipeline.DefaultRunnerOpts)
	noErr(runner.Run(ctx, actions))
}
