package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func validPayload() map[string]any {
	return map[string]any{
		"age":              30.0,
		"gender":           1.0,
		"height_cm":        172.0,
		"weight_kg":        68.0,
		"bmi":              23.0,
		"body_fat_percent": 18.5,
		"muscle_mass_kg":   31.2,
		"bone_mass_kg":     2.8,
		"water_percent":    55.4,
		"bmr_kcal":         1500.0,
		"visceral_fat":     7.0,
		"metabolic_age":    28.0,
		"activity_level":   2.0,
	}
}

func TestProfileFromPayloadReportsFirstMissingField(t *testing.T) {
	payload := validPayload()
	delete(payload, "weight_kg")
	delete(payload, "bmr_kcal")

	_, err := ProfileFromPayload(payload)

	var missing MissingParameterError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "weight_kg", missing.Field)
	require.Equal(t, "Missing parameter: 'weight_kg'", err.Error())
}

func TestProfileFromPayloadFlagsEveryRequiredField(t *testing.T) {
	for _, field := range requiredFields {
		payload := validPayload()
		delete(payload, field)

		_, err := ProfileFromPayload(payload)

		var missing MissingParameterError
		require.ErrorAs(t, err, &missing, "field %s", field)
		require.Equal(t, field, missing.Field)
	}
}

func TestProfileFromPayloadAppliesOptionalDefaults(t *testing.T) {
	profile, err := ProfileFromPayload(validPayload())
	require.NoError(t, err)

	require.Equal(t, "", profile.Allergy)
	require.Equal(t, "", profile.Preference)
	require.Equal(t, "Regular", profile.DietType)
	require.Equal(t, "Gym", profile.WorkoutPreference)
	require.Equal(t, "general-fitness", profile.Goal)
}

func TestProfileFromPayloadCasing(t *testing.T) {
	payload := validPayload()
	payload["user_allergy"] = "NUTS"
	payload["user_preference"] = "High-Protein"
	payload["diet_type"] = "KETO"
	payload["workout_preference"] = "home"
	payload["user_goal"] = "Muscle-Gain"

	profile, err := ProfileFromPayload(payload)
	require.NoError(t, err)

	require.Equal(t, "nuts", profile.Allergy)
	require.Equal(t, "high-protein", profile.Preference)
	require.Equal(t, "KETO", profile.DietType)
	require.Equal(t, "home", profile.WorkoutPreference)
	require.Equal(t, "muscle-gain", profile.Goal)
}

func TestProfileFromPayloadRejectsNonNumericField(t *testing.T) {
	payload := validPayload()
	payload["age"] = "thirty"

	_, err := ProfileFromPayload(payload)
	require.Error(t, err)

	var missing MissingParameterError
	require.False(t, errors.As(err, &missing))
}

func TestProfileFromPayloadRejectsNonStringOptional(t *testing.T) {
	payload := validPayload()
	payload["user_goal"] = 7.0

	_, err := ProfileFromPayload(payload)
	require.Error(t, err)
}

func TestFeatureVectorOrder(t *testing.T) {
	profile := UserProfile{
		Age:            1,
		Gender:         2,
		HeightCm:       3,
		WeightKg:       4,
		BMI:            5,
		BodyFatPercent: 6,
		MuscleMassKg:   7,
		BoneMassKg:     8,
		WaterPercent:   9,
		BMRKcal:        10,
		VisceralFat:    11,
		MetabolicAge:   12,
		ActivityLevel:  13,
	}

	require.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}, profile.FeatureVector())
}
