package repository

import (
	"steptember/backend/models"
)

// StepRepository is the persistence port for per-user per-day step totals.
// Dates are ISO YYYY-MM-DD strings; date ranges are inclusive. Sum methods
// return 0 when no rows match.
type StepRepository interface {
	SumDay(userID uint, day string) (int, error)
	SumRange(userID uint, from, to string) (int, error)
	SumMonth(userID uint, prefix string) (int, error)
	Upsert(userID uint, day string, steps int) error
}

// UserRepository is the persistence port for accounts.
type UserRepository interface {
	Create(user *models.User) error
	FindByUsername(username string) (*models.User, error)
	FindByID(id uint) (*models.User, error)
	// All returns every registered user ordered by id, i.e. registration
	// order. The leaderboard relies on this for its tie-break behavior.
	All() ([]models.User, error)
}
