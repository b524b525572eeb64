package domain

import (
	"fmt"
	"strings"
)

// requiredFields lists the numeric payload keys in the order they are checked
// and packed into the feature vector. The order is part of the predictor
// contract.
var requiredFields = []string{
	"age",
	"gender",
	"height_cm",
	"weight_kg",
	"bmi",
	"body_fat_percent",
	"muscle_mass_kg",
	"bone_mass_kg",
	"water_percent",
	"bmr_kcal",
	"visceral_fat",
	"metabolic_age",
	"activity_level",
}

// UserProfile carries one request's biometric readings plus the
// personalization choices. DietType and WorkoutPreference are accepted but do
// not influence plan generation.
type UserProfile struct {
	Age            float64
	Gender         float64
	HeightCm       float64
	WeightKg       float64
	BMI            float64
	BodyFatPercent float64
	MuscleMassKg   float64
	BoneMassKg     float64
	WaterPercent   float64
	BMRKcal        float64
	VisceralFat    float64
	MetabolicAge   float64
	ActivityLevel  float64

	Allergy           string
	Preference        string
	DietType          string
	WorkoutPreference string
	Goal              string
}

// MissingParameterError reports the first required payload key that was
// absent.
type MissingParameterError struct {
	Field string
}

func (e MissingParameterError) Error() string {
	return fmt.Sprintf("Missing parameter: '%s'", e.Field)
}

// ProfileFromPayload extracts a UserProfile from a decoded JSON object.
// Required keys are checked in requiredFields order and the first absent one
// aborts extraction; values themselves are not range-checked. Allergy,
// Preference, and Goal are lower-cased; DietType and WorkoutPreference keep
// the caller's casing.
func ProfileFromPayload(payload map[string]any) (UserProfile, error) {
	values := make(map[string]float64, len(requiredFields))
	for _, field := range requiredFields {
		raw, ok := payload[field]
		if !ok {
			return UserProfile{}, MissingParameterError{Field: field}
		}
		num, ok := raw.(float64)
		if !ok {
			return UserProfile{}, fmt.Errorf("parameter %q is not numeric", field)
		}
		values[field] = num
	}

	profile := UserProfile{
		Age:            values["age"],
		Gender:         values["gender"],
		HeightCm:       values["height_cm"],
		WeightKg:       values["weight_kg"],
		BMI:            values["bmi"],
		BodyFatPercent: values["body_fat_percent"],
		MuscleMassKg:   values["muscle_mass_kg"],
		BoneMassKg:     values["bone_mass_kg"],
		WaterPercent:   values["water_percent"],
		BMRKcal:        values["bmr_kcal"],
		VisceralFat:    values["visceral_fat"],
		MetabolicAge:   values["metabolic_age"],
		ActivityLevel:  values["activity_level"],
	}

	allergy, err := optionalString(payload, "user_allergy", "")
	if err != nil {
		return UserProfile{}, err
	}
	preference, err := optionalString(payload, "user_preference", "")
	if err != nil {
		return UserProfile{}, err
	}
	dietType, err := optionalString(payload, "diet_type", "Regular")
	if err != nil {
		return UserProfile{}, err
	}
	workoutPreference, err := optionalString(payload, "workout_preference", "Gym")
	if err != nil {
		return UserProfile{}, err
	}
	goal, err := optionalString(payload, "user_goal", "general-fitness")
	if err != nil {
		return UserProfile{}, err
	}

	profile.Allergy = strings.ToLower(allergy)
	profile.Preference = strings.ToLower(preference)
	profile.DietType = dietType
	profile.WorkoutPreference = workoutPreference
	profile.Goal = strings.ToLower(goal)
	return profile, nil
}

func optionalString(payload map[string]any, key, fallback string) (string, error) {
	raw, ok := payload[key]
	if !ok {
		return fallback, nil
	}
	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("parameter %q is not a string", key)
	}
	return value, nil
}

// FeatureVector packs the numeric readings in the fixed predictor order.
func (p UserProfile) FeatureVector() []float64 {
	return []float64{
		p.Age,
		p.Gender,
		p.HeightCm,
		p.WeightKg,
		p.BMI,
		p.BodyFatPercent,
		p.MuscleMassKg,
		p.BoneMassKg,
		p.WaterPercent,
		p.BMRKcal,
		p.VisceralFat,
		p.MetabolicAge,
		p.ActivityLevel,
	}
}
