// Package domain implements the prediction and plan generation pipeline.
package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ujjol1234/Scale-Sense-AI-Model/internal/observability"
)

// Predictor produces the two model outputs for one feature vector. Features
// arrive in FeatureVector order. Implementations must be stateless and safe
// for concurrent calls.
type Predictor interface {
	Predict(ctx context.Context, features []float64) (dietKcal int, workoutDays int, err error)
	Name() string
}

// Plan is the per-request output before response shaping.
type Plan struct {
	DietKcalPerDay     int
	WorkoutDaysPerWeek int
	Meals              []MealSelection
	Workouts           []WorkoutSelection
}

// MealSelection is one emitted meal plan row.
type MealSelection struct {
	Slot        string
	Food        string
	Calories    string
	AllergySafe bool
}

// WorkoutSelection is one emitted workout plan row.
type WorkoutSelection struct {
	Exercise       string
	Category       string
	Prescription   string
	CaloriesBurned string
}

// Service runs the prediction pipeline against the static catalogs.
type Service struct {
	predictor Predictor
	meals     []MealCatalogEntry
	workouts  []WorkoutCatalogEntry
}

// NewService constructs a Service over the built-in catalogs.
func NewService(predictor Predictor) *Service {
	return &Service{
		predictor: predictor,
		meals:     DefaultMealCatalog(),
		workouts:  DefaultWorkoutCatalog(),
	}
}

// GeneratePlan feeds the profile's feature vector to the predictor and
// derives both plans from the catalogs. The plan depends only on the profile
// and the predictor outputs.
func (s *Service) GeneratePlan(ctx context.Context, profile UserProfile) (*Plan, error) {
	started := time.Now()

	dietKcal, workoutDays, err := s.predictor.Predict(ctx, profile.FeatureVector())
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}

	plan := &Plan{
		DietKcalPerDay:     dietKcal,
		WorkoutDaysPerWeek: workoutDays,
		Meals:              buildMealPlan(s.meals, profile.Allergy),
		Workouts:           buildWorkoutPlan(s.workouts, profile.Goal),
	}

	observability.RecordPrediction(s.predictor.Name(), time.Since(started))
	return plan, nil
}

// buildMealPlan walks the meal table in order, swapping in the substitute
// food when the allergy string appears in the entry's allergen tag. The
// AllergySafe flag is true on every row either way.
func buildMealPlan(entries []MealCatalogEntry, allergy string) []MealSelection {
	out := make([]MealSelection, 0, len(entries))
	for _, entry := range entries {
		food := entry.Food
		if allergy != "" && strings.Contains(strings.ToLower(entry.Allergen), allergy) {
			food = entry.Substitute
		}
		out = append(out, MealSelection{
			Slot:        entry.Slot,
			Food:        food,
			Calories:    entry.Calories,
			AllergySafe: true,
		})
	}
	return out
}

// buildWorkoutPlan filters the workout table by goal, keeping table order.
// Goals outside the three known values select nothing.
func buildWorkoutPlan(entries []WorkoutCatalogEntry, goal string) []WorkoutSelection {
	out := make([]WorkoutSelection, 0, len(entries))
	for _, entry := range entries {
		if !goalSelects(goal, strings.ToLower(entry.Category)) {
			continue
		}
		out = append(out, WorkoutSelection{
			Exercise:       entry.Exercise,
			Category:       entry.Category,
			Prescription:   entry.Prescription,
			CaloriesBurned: entry.CaloriesBurned,
		})
	}
	return out
}

func goalSelects(goal, category string) bool {
	switch goal {
	case "muscle-gain":
		return category == "strength"
	case "weight-loss":
		return category == "cardio"
	case "general-fitness":
		return true
	default:
		return false
	}
}
