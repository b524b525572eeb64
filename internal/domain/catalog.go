package domain

// MealCatalogEntry is one row of the static meal reference table.
type MealCatalogEntry struct {
	Slot       string
	Food       string
	Calories   string
	Substitute string
	Allergen   string
}

// WorkoutCatalogEntry is one row of the static workout reference table.
type WorkoutCatalogEntry struct {
	Exercise       string
	Category       string
	Prescription   string
	CaloriesBurned string
}

// DefaultMealCatalog returns the built-in meal table. Row order is preserved
// in every generated plan; callers must not mutate the returned slice.
func DefaultMealCatalog() []MealCatalogEntry {
	return []MealCatalogEntry{
		{Slot: "Breakfast", Food: "Oatmeal + Nuts", Calories: "350 kcal", Substitute: "Whole Wheat Toast", Allergen: "nuts"},
		{Slot: "Lunch", Food: "Grilled Chicken + Peanut Sauce", Calories: "600 kcal", Substitute: "Tofu + Salad", Allergen: "nuts"},
		{Slot: "Dinner", Food: "Fish + Almond Quinoa", Calories: "500 kcal", Substitute: "Lentil Soup + Rice", Allergen: "nuts"},
	}
}

// DefaultWorkoutCatalog returns the built-in workout table in table order.
func DefaultWorkoutCatalog() []WorkoutCatalogEntry {
	return []WorkoutCatalogEntry{
		{Exercise: "Bench Press", Category: "Strength", Prescription: "4 sets x 8 reps", CaloriesBurned: "250 kcal"},
		{Exercise: "Deadlifts", Category: "Strength", Prescription: "4 sets x 6 reps", CaloriesBurned: "300 kcal"},
		{Exercise: "Cycling", Category: "Cardio", Prescription: "30 mins", CaloriesBurned: "400 kcal"},
		{Exercise: "Jump Rope", Category: "Cardio", Prescription: "15 mins", CaloriesBurned: "150 kcal"},
	}
}
