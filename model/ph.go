package model

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kirillseva/syberiaStages/dataset"
)

// PHModel is a linear proportional-hazards scorer. The score of a row is the
// inner product of the configured column weights with the row's values; the
// baseline survival curve is scaled per-row by exp(score) downstream.
type PHModel struct {
	Weights  map[string]float64 `json:"weights"`
	Baseline SurvivalCurve      `json:"baseline_fcn"`
}

// Predict implements Model
func (m *PHModel) Predict(data *dataset.Frame) ([]float64, error) {
	scores := make([]float64, data.NumRows())
	for col, weight := range m.Weights {
		values, err := data.Numeric(col)
		if err != nil {
			return nil, err
		}
		for i, v := range values {
			scores[i] += weight * v
		}
	}
	return scores, nil
}

// BaselineSurvival implements Model
func (m *PHModel) BaselineSurvival() SurvivalCurve {
	return m.Baseline
}

// Encode serializes the model as JSON, making it usable as an export artifact.
func (m *PHModel) Encode(w io.Writer) error {
	return json.NewEncoder(w).Encode(m)
}

// NewPHModelFromJSON loads a proportional-hazards model from json.
func NewPHModelFromJSON(r io.Reader) (*PHModel, error) {
	var m PHModel
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("error decoding model json: %v", err)
	}

	if len(m.Weights) == 0 {
		return nil, fmt.Errorf("model has no weights")
	}
	if len(m.Baseline) == 0 {
		return nil, fmt.Errorf("model has no baseline survival curve")
	}
	for i, p := range m.Baseline {
		if p <= 0 || p > 1 {
			return nil, fmt.Errorf("baseline survival probability %f at period %d is not in (0, 1]", p, i+1)
		}
	}

	return &m, nil
}
