package eval

import (
	"fmt"
	"math"

	"github.com/kirillseva/syberiaStages/pipeline"
)

// Params is the resolved evaluation stage configuration.
type Params struct {
	// Output is the destination path prefix for the evaluation report
	// (<Output>.csv and <Output>.png). Required.
	Output string
	// TrainPercent is the training fraction used by the partition strategies.
	TrainPercent float64
	// ValidationRows, when present, is an explicit zero-based row-index set.
	ValidationRows []int
	// Column selectors.
	DepVar        string
	DepVal        string
	IDColumn      string
	IDBenchmark   string
	IDInstallment string
	IDFundedAmnt  string
	IDTerm        string
	// RandomSample selects the seeded random partition strategy; Seed is
	// required when it is set.
	RandomSample bool
	Seed         *int64
	// Times is the number of evaluation repetitions; only 1 is supported.
	Times int
}

// DefaultParams holds the option defaults applied by ResolveParams.
var DefaultParams = Params{
	TrainPercent:  0.8,
	DepVar:        "dep_var",
	DepVal:        "dep_val",
	IDColumn:      "id",
	IDBenchmark:   "benchmark",
	IDInstallment: "installment",
	IDFundedAmnt:  "funded_amnt",
	IDTerm:        "term",
	Times:         1,
}

// ResolveParams applies defaults and validates the raw evaluation stage
// options. Unknown keys are ignored; "output" is the only strictly required
// key, plus "seed" when "random_sample" is set.
func ResolveParams(opts map[string]interface{}) (Params, error) {
	params := DefaultParams

	output, ok := stringOpt(opts, "output")
	if !ok || output == "" {
		return Params{}, pipeline.ConfigError{Field: "output", Reason: "required"}
	}
	params.Output = output

	if v, ok := opts["train_percent"]; ok {
		p, ok := floatOpt(v)
		if !ok {
			return Params{}, pipeline.ConfigError{Field: "train_percent", Reason: "must be a number"}
		}
		params.TrainPercent = p
	}
	if params.TrainPercent < 0 || params.TrainPercent > 1 {
		return Params{}, pipeline.ConfigError{Field: "train_percent", Reason: "must be between 0 and 1"}
	}

	if v, ok := opts["validation_rows"]; ok {
		rows, err := intSliceOpt(v)
		if err != nil {
			return Params{}, pipeline.ConfigError{Field: "validation_rows", Reason: err.Error()}
		}
		params.ValidationRows = rows
	}

	for key, dst := range map[string]*string{
		"dep_var":        &params.DepVar,
		"dep_val":        &params.DepVal,
		"id_column":      &params.IDColumn,
		"id_benchmark":   &params.IDBenchmark,
		"id_installment": &params.IDInstallment,
		"id_funded_amnt": &params.IDFundedAmnt,
		"id_term":        &params.IDTerm,
	} {
		if s, ok := stringOpt(opts, key); ok {
			*dst = s
		}
	}

	if v, ok := opts["random_sample"]; ok {
		b, ok := v.(bool)
		if !ok {
			return Params{}, pipeline.ConfigError{Field: "random_sample", Reason: "must be a boolean"}
		}
		params.RandomSample = b
	}

	if v, ok := opts["seed"]; ok {
		s, ok := floatOpt(v)
		if !ok || s != math.Trunc(s) {
			return Params{}, pipeline.ConfigError{Field: "seed", Reason: "must be an integer"}
		}
		seed := int64(s)
		params.Seed = &seed
	}
	if params.RandomSample && params.Seed == nil {
		return Params{}, pipeline.ConfigError{Field: "seed", Reason: "required when random_sample is set"}
	}

	if v, ok := opts["times"]; ok {
		n, ok := floatOpt(v)
		if !ok || n != math.Trunc(n) {
			return Params{}, pipeline.ConfigError{Field: "times", Reason: "must be an integer"}
		}
		params.Times = int(n)
	}
	if params.Times != 1 {
		return Params{}, pipeline.ConfigError{Field: "times", Reason: "only times = 1 is supported"}
	}

	return params, nil
}

func stringOpt(opts map[string]interface{}, key string) (string, bool) {
	v, ok := opts[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func floatOpt(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func intSliceOpt(v interface{}) ([]int, error) {
	switch rows := v.(type) {
	case []int:
		return rows, nil
	case []interface{}:
		out := make([]int, 0, len(rows))
		for _, r := range rows {
			n, ok := floatOpt(r)
			if !ok {
				return nil, fmt.Errorf("row index %v is not a number", r)
			}
			out = append(out, int(n))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("must be a list of row indices, got %T", v)
	}
}
