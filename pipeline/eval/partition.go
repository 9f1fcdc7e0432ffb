package eval

import (
	"math"
	"math/rand"
	"sort"

	"github.com/kirillseva/syberiaStages/dataset"
	"github.com/kirillseva/syberiaStages/pipeline"
)

// SelectValidation decides which rows of the frame are held out for
// validation. Exactly one of four strategies applies, in this strict
// precedence order:
//  1. external validation key from the data stage,
//  2. explicit validation_rows from the parameters,
//  3. seeded random partition stratified by the dependent variable,
//  4. sequential tail split on TrainPercent.
//
// Row indices are zero-based.
func SelectValidation(ctx *pipeline.Context, params Params, frame *dataset.Frame) ([]int, error) {
	switch {
	case ctx.DataStage.ValidationPrimaryKey != nil:
		return selectByPrimaryKey(ctx.DataStage.ValidationPrimaryKey, params, frame)
	case params.ValidationRows != nil:
		return params.ValidationRows, nil
	case params.RandomSample:
		return selectRandom(params, frame)
	default:
		return selectTail(params.TrainPercent, frame.NumRows()), nil
	}
}

func selectByPrimaryKey(key map[string]struct{}, params Params, frame *dataset.Frame) ([]int, error) {
	ids, err := frame.Label(params.IDColumn)
	if err != nil {
		return nil, err
	}

	var rows []int
	for i, id := range ids {
		if _, ok := key[id]; ok {
			rows = append(rows, i)
		}
	}
	return rows, nil
}

func selectRandom(params Params, frame *dataset.Frame) ([]int, error) {
	if params.Seed == nil {
		return nil, pipeline.ConfigError{Field: "seed", Reason: "required when random_sample is set"}
	}
	if params.Times != 1 {
		return nil, pipeline.ConfigError{Field: "times", Reason: "only times = 1 is supported"}
	}

	depVals, err := frame.Numeric(params.DepVar)
	if err != nil {
		return nil, err
	}

	// group rows into strata by dependent-variable value, iterated in sorted
	// key order so the partition is fully determined by the seed
	strata := make(map[float64][]int)
	var keys []float64
	for i, v := range depVals {
		if _, ok := strata[v]; !ok {
			keys = append(keys, v)
		}
		strata[v] = append(strata[v], i)
	}
	sort.Float64s(keys)

	rng := rand.New(rand.NewSource(*params.Seed))
	training := make(map[int]struct{})
	for _, k := range keys {
		rows := append([]int(nil), strata[k]...)
		rng.Shuffle(len(rows), func(i, j int) {
			rows[i], rows[j] = rows[j], rows[i]
		})
		take := int(math.Round(params.TrainPercent * float64(len(rows))))
		for _, r := range rows[:take] {
			training[r] = struct{}{}
		}
	}

	var validation []int
	for i := 0; i < frame.NumRows(); i++ {
		if _, ok := training[i]; !ok {
			validation = append(validation, i)
		}
	}
	return validation, nil
}

// selectTail returns the last (1 - trainPercent) fraction of rows in their
// original order.
func selectTail(trainPercent float64, numRows int) []int {
	start := int(math.Round(trainPercent * float64(numRows)))
	var rows []int
	for i := start; i < numRows; i++ {
		rows = append(rows, i)
	}
	return rows
}
