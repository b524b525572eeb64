// Package api exposes HTTP handlers for the prediction API.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ujjol1234/Scale-Sense-AI-Model/internal/domain"
	"github.com/ujjol1234/Scale-Sense-AI-Model/internal/observability"
)

// welcomeMessage greets API consumers probing the root path.
const welcomeMessage = "Welcome to the Diet & Workout API. Use the /predict endpoint with a POST request to get predictions."

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the router.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.welcome).Methods(http.MethodGet)
	r.HandleFunc("/predict", h.predict).Methods(http.MethodPost)
	r.HandleFunc("/healthz", healthz).Methods(http.MethodGet)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": welcomeMessage})
}

func (h *Handler) predict(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "unable to parse request body")
		return
	}

	profile, err := domain.ProfileFromPayload(payload)
	if err != nil {
		var missing domain.MissingParameterError
		if errors.As(err, &missing) {
			observability.RecordMissingParameter(missing.Field)
			writeError(w, http.StatusBadRequest, missing.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	plan, err := h.service.GeneratePlan(r.Context(), profile)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toPredictResponse(plan))
}

// PredictResponse is the body for POST /predict. Key names and order are part
// of the API contract.
type PredictResponse struct {
	PredictedDiet    string            `json:"PredictedDiet"`
	PredictedWorkout string            `json:"PredictedWorkout"`
	MealPlan         []MealPlanItem    `json:"MealPlan"`
	WorkoutPlan      []WorkoutPlanItem `json:"WorkoutPlan"`
}

// MealPlanItem is one meal row in the response.
type MealPlanItem struct {
	Meal        string `json:"Meal"`
	Food        string `json:"Food"`
	Calories    string `json:"Calories"`
	AllergySafe bool   `json:"AllergySafe"`
}

// WorkoutPlanItem is one workout row in the response.
type WorkoutPlanItem struct {
	Exercise       string `json:"Exercise"`
	Type           string `json:"Type"`
	RepsSets       string `json:"Reps/Sets"`
	CaloriesBurned string `json:"CaloriesBurned"`
}

func toPredictResponse(plan *domain.Plan) PredictResponse {
	meals := make([]MealPlanItem, 0, len(plan.Meals))
	for _, meal := range plan.Meals {
		meals = append(meals, MealPlanItem{
			Meal:        meal.Slot,
			Food:        meal.Food,
			Calories:    meal.Calories,
			AllergySafe: meal.AllergySafe,
		})
	}

	workouts := make([]WorkoutPlanItem, 0, len(plan.Workouts))
	for _, workout := range plan.Workouts {
		workouts = append(workouts, WorkoutPlanItem{
			Exercise:       workout.Exercise,
			Type:           workout.Category,
			RepsSets:       workout.Prescription,
			CaloriesBurned: workout.CaloriesBurned,
		})
	}

	return PredictResponse{
		PredictedDiet:    fmt.Sprintf("%d kcal per day", plan.DietKcalPerDay),
		PredictedWorkout: fmt.Sprintf("%d workout days per week", plan.WorkoutDaysPerWeek),
		MealPlan:         meals,
		WorkoutPlan:      workouts,
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
