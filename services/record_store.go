package services

import (
	"encoding/json"
	"errors"
	"io/fs"

	"github.com/Divyakd12/calorie-tracker/models"
	"github.com/Divyakd12/calorie-tracker/storage"

	"github.com/rs/zerolog"
)

// RecordStore is the sole authority over the user document: one account per
// email, at most one meal entry per user per date, and bmi/bmiStatus set
// together or not at all. Every operation re-reads the whole document and
// every mutating operation overwrites it; nothing is cached between calls,
// so two concurrent writers race at the level of the full collection and
// the last save wins.
type RecordStore struct {
	store storage.DocumentStore
	log   zerolog.Logger
}

func NewRecordStore(store storage.DocumentStore, log zerolog.Logger) *RecordStore {
	return &RecordStore{store: store, log: log}
}

// Load reads the full user collection. A missing document is created empty;
// an unreadable or malformed one degrades to an empty collection so a
// corrupt file never takes the service down.
func (rs *RecordStore) Load() []models.User {
	data, err := rs.store.ReadAll()
	if errors.Is(err, fs.ErrNotExist) {
		if werr := rs.store.WriteAll([]byte("[]")); werr != nil {
			rs.log.Error().Err(werr).Msg("could not initialize user document")
		}
		return []models.User{}
	}
	if err != nil {
		rs.log.Error().Err(err).Msg("error loading users")
		return []models.User{}
	}
	if len(data) == 0 {
		return []models.User{}
	}

	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		rs.log.Error().Err(err).Msg("error parsing users")
		return []models.User{}
	}
	return users
}

// Save serializes the full collection and overwrites the user document.
func (rs *RecordStore) Save(users []models.User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return err
	}
	return rs.store.WriteAll(data)
}

// persist applies the write policy for mutating operations: a failed save is
// logged and swallowed, never surfaced to the caller.
func (rs *RecordStore) persist(users []models.User) {
	if err := rs.Save(users); err != nil {
		rs.log.Error().Err(err).Msg("error saving users")
	}
}

// CreateAccount registers a new user with empty BMI state and no meals.
// Email matching is exact and case-sensitive.
func (rs *RecordStore) CreateAccount(email, password string) (*models.User, error) {
	users := rs.Load()
	for i := range users {
		if users[i].Email == email {
			return nil, ErrAccountExists
		}
	}

	user := models.User{Email: email, Password: password}
	users = append(users, user)
	rs.persist(users)

	rs.log.Info().Str("email", email).Msg("new user registered")
	return &user, nil
}

// VerifyCredentials succeeds only when both email and password match a
// record exactly. Unknown email and wrong password return the same error.
func (rs *RecordStore) VerifyCredentials(email, password string) (*models.User, error) {
	users := rs.Load()
	for i := range users {
		if users[i].Email == email && users[i].Password == password {
			return &users[i], nil
		}
	}
	return nil, ErrInvalidCredentials
}

// GetBMI returns the stored BMI and its status label. BMI stays nil and the
// status empty until the first SetBMI.
func (rs *RecordStore) GetBMI(email string) (*float64, string, error) {
	users := rs.Load()
	for i := range users {
		if users[i].Email == email {
			return users[i].BMI, users[i].BMIStatus, nil
		}
	}
	return nil, "", ErrUserNotFound
}

// SetBMI overwrites both BMI fields in place and persists the collection.
func (rs *RecordStore) SetBMI(email string, bmi float64, status string) (*models.User, error) {
	users := rs.Load()
	for i := range users {
		if users[i].Email == email {
			users[i].BMI = &bmi
			users[i].BMIStatus = status
			rs.persist(users)
			rs.log.Info().Str("email", email).Float64("bmi", bmi).Str("status", status).Msg("bmi updated")
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

// GetMeals returns the user's logged meals, oldest first. A user who has
// never logged a meal gets an empty sequence, not null.
func (rs *RecordStore) GetMeals(email string) ([]models.MealEntry, error) {
	users := rs.Load()
	for i := range users {
		if users[i].Email == email {
			if users[i].Meals == nil {
				return []models.MealEntry{}, nil
			}
			return users[i].Meals, nil
		}
	}
	return nil, ErrUserNotFound
}

// LogMeal appends one entry to the user's meals. A date that already has an
// entry is a hard rejection; nothing is mutated or persisted in that case.
func (rs *RecordStore) LogMeal(email, date string, totalCalories float64) ([]models.MealEntry, error) {
	users := rs.Load()
	for i := range users {
		if users[i].Email != email {
			continue
		}
		for _, meal := range users[i].Meals {
			if meal.Date == date {
				return nil, ErrDuplicateMealDate
			}
		}

		users[i].Meals = append(users[i].Meals, models.MealEntry{Date: date, TotalCalories: totalCalories})
		rs.persist(users)

		rs.log.Info().Str("email", email).Str("date", date).Float64("calories", totalCalories).Msg("meal logged")
		return users[i].Meals, nil
	}
	return nil, ErrUserNotFound
}

// ListUsers returns the full collection, passwords included. Debug only.
func (rs *RecordStore) ListUsers() []models.User {
	return rs.Load()
}
