// Package model provides the predictor implementations behind the plan
// service: a linear model loaded from a weights artifact and an arithmetic
// heuristic used when no artifact is available.
package model

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// FeatureCount is the length of the input vector every predictor consumes.
const FeatureCount = 13

// outputWeights is one linear output head: a coefficient per feature plus an
// intercept.
type outputWeights struct {
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

type weightsFile struct {
	Diet    outputWeights `json:"diet"`
	Workout outputWeights `json:"workout"`
}

// LinearModel scores both outputs with a dot product over the feature vector.
type LinearModel struct {
	diet    outputWeights
	workout outputWeights
}

// LoadFromFile reads and validates a weights artifact.
func LoadFromFile(path string) (*LinearModel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read weights: %w", err)
	}

	var file weightsFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse weights: %w", err)
	}
	if err := file.Diet.validate("diet"); err != nil {
		return nil, err
	}
	if err := file.Workout.validate("workout"); err != nil {
		return nil, err
	}

	return &LinearModel{diet: file.Diet, workout: file.Workout}, nil
}

func (w outputWeights) validate(output string) error {
	if len(w.Coefficients) != FeatureCount {
		return fmt.Errorf("%s weights: expected %d coefficients, got %d", output, FeatureCount, len(w.Coefficients))
	}
	return nil
}

func (w outputWeights) apply(features []float64) float64 {
	sum := w.Intercept
	for i, c := range w.Coefficients {
		sum += c * features[i]
	}
	return sum
}

// Name implements domain.Predictor.
func (*LinearModel) Name() string { return "model" }

// Predict implements domain.Predictor.
func (m *LinearModel) Predict(_ context.Context, features []float64) (int, int, error) {
	if len(features) != FeatureCount {
		return 0, 0, fmt.Errorf("expected %d features, got %d", FeatureCount, len(features))
	}
	diet := int(math.Floor(m.diet.apply(features)))
	workout := int(math.Floor(m.workout.apply(features)))
	return diet, workout, nil
}
