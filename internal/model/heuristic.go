package model

import (
	"context"
	"fmt"
	"math"
)

// Feature slots consumed by the heuristic, matching the profile vector order.
const (
	bmrIndex      = 9
	activityIndex = 12
)

// Heuristic is the arithmetic stand-in used when no trained artifact is
// available: daily intake scales the basal metabolic rate, weekly frequency
// steps up from the activity level.
type Heuristic struct{}

// NewHeuristic constructs the fallback predictor.
func NewHeuristic() Heuristic { return Heuristic{} }

// Name implements domain.Predictor.
func (Heuristic) Name() string { return "heuristic" }

// Predict implements domain.Predictor.
func (Heuristic) Predict(_ context.Context, features []float64) (int, int, error) {
	if len(features) != FeatureCount {
		return 0, 0, fmt.Errorf("expected %d features, got %d", FeatureCount, len(features))
	}
	diet := int(math.Floor(features[bmrIndex] * 1.2))
	workout := int(math.Floor(features[activityIndex] + 3))
	return diet, workout, nil
}
