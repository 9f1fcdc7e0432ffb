package eval

import (
	"fmt"
	"math"

	"github.com/kirillseva/syberiaStages/dataset"
	"github.com/kirillseva/syberiaStages/model"
)

// Comparison is one model-vs-benchmark IRR pair, emitted per validation row
// for reporting.
type Comparison struct {
	// Benchmark is the row's benchmark column value.
	Benchmark float64
	// ModelIRR is the IRR of the installment stream discounted by the
	// model-implied survival probabilities.
	ModelIRR float64
	// BenchmarkIRR is the contractual IRR, ignoring survival.
	BenchmarkIRR float64
}

// CompareIRR computes the model-implied and benchmark IRR for every scored
// record, in input order. The model survival probabilities come from
// proportional-hazards scaling of the baseline curve:
//
//	survival[t] = curve[t] ^ exp(score)
//
// A record whose term exceeds the curve length is a data error.
func CompareIRR(records []PredictionRecord, curve model.SurvivalCurve) ([]Comparison, error) {
	if len(curve) == 0 {
		return nil, dataset.DataError{Column: "baseline_fcn", Reason: "empty survival curve"}
	}

	comparisons := make([]Comparison, 0, len(records))
	for i, rec := range records {
		if rec.Term < 1 || rec.Term > len(curve) {
			return nil, dataset.DataError{
				Column: "term",
				Reason: fmt.Sprintf("row %d: term %d is outside the survival curve range [1, %d]", i, rec.Term, len(curve)),
			}
		}

		survival := scaleSurvival(curve[:rec.Term], rec.Score)

		modelIRR, err := calcIRR(true, rec, survival)
		if err != nil {
			return nil, err
		}
		benchmarkIRR, err := calcIRR(false, rec, nil)
		if err != nil {
			return nil, err
		}

		comparisons = append(comparisons, Comparison{
			Benchmark:    rec.Benchmark,
			ModelIRR:     modelIRR,
			BenchmarkIRR: benchmarkIRR,
		})
	}
	return comparisons, nil
}

// scaleSurvival raises each baseline survival probability to the power
// exp(score).
func scaleSurvival(baseline model.SurvivalCurve, score float64) []float64 {
	scale := math.Exp(score)
	survival := make([]float64, len(baseline))
	for t, p := range baseline {
		survival[t] = math.Pow(p, scale)
	}
	return survival
}

// calcIRR computes the per-period internal rate of return of the record's
// installment stream against its funded amount. When useModel is set, each
// period's installment is discounted by the model survival probability for
// that period (the expected cashflow); otherwise the contractual stream is
// used.
func calcIRR(useModel bool, rec PredictionRecord, survival []float64) (float64, error) {
	cashflows := make([]float64, rec.Term)
	for t := range cashflows {
		cf := rec.Installment
		if useModel {
			cf *= survival[t]
		}
		cashflows[t] = cf
	}
	return solveIRR(rec.FundedAmnt, cashflows)
}

// solveIRR finds the rate r such that
//
//	-principal + sum(cashflows[t] / (1+r)^(t+1)) = 0
//
// by bisection. The rate is per period.
func solveIRR(principal float64, cashflows []float64) (float64, error) {
	if principal <= 0 {
		return 0, dataset.DataError{Column: "funded_amnt", Reason: "must be positive"}
	}
	var total float64
	for _, cf := range cashflows {
		if cf < 0 {
			return 0, dataset.DataError{Column: "installment", Reason: "negative cashflow"}
		}
		total += cf
	}
	if total == 0 {
		return 0, dataset.DataError{Column: "installment", Reason: "no cashflows"}
	}

	npv := func(r float64) float64 {
		v := -principal
		discount := 1.0
		for _, cf := range cashflows {
			discount *= 1 + r
			v += cf / discount
		}
		return v
	}

	lo, hi := -0.9999, 10.0
	if npv(hi) > 0 {
		return 0, dataset.DataError{Reason: "irr exceeds solver range"}
	}

	for i := 0; i < 200; i++ {
		mid := (lo + hi) / 2
		if npv(mid) > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, nil
}
