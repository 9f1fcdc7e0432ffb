package model

import (
	"github.com/kirillseva/syberiaStages/dataset"
)

// SurvivalCurve holds per-period baseline survival probabilities. Index 0
// corresponds to period 1. The curve is owned by the model; consumers hold a
// reference and must not mutate it.
type SurvivalCurve []float64

// Model abstracts a trained survival-style model capable of scoring a dataset.
type Model interface {
	// Predict returns one linear score per row of the frame.
	Predict(data *dataset.Frame) ([]float64, error)
	// BaselineSurvival returns the model's baseline survival curve.
	BaselineSurvival() SurvivalCurve
}
