package models

// User is one record in the user document. Passwords are stored verbatim;
// the credential check is exact string equality.
type User struct {
	Email     string      `json:"email"`
	Password  string      `json:"password"`
	BMI       *float64    `json:"bmi"`
	BMIStatus string      `json:"bmiStatus"`
	Meals     []MealEntry `json:"meals,omitempty"`
}

// MealEntry is one logged day. Date is an opaque key chosen by the client
// and is never parsed here; it only has to be unique within a user's meals.
type MealEntry struct {
	Date          string  `json:"date"`
	TotalCalories float64 `json:"totalCalories"`
}
