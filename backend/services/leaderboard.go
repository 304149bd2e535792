package services

import (
	"sort"
	"time"

	"steptember/backend/models"
	"steptember/backend/repository"
)

// LeaderboardRanker computes every registered user's daily, trailing-week and
// current-month aggregates and ranks them by monthly step sum.
type LeaderboardRanker struct {
	Users repository.UserRepository
	Calc  *Calculator
}

func NewLeaderboardRanker(users repository.UserRepository, calc *Calculator) *LeaderboardRanker {
	return &LeaderboardRanker{Users: users, Calc: calc}
}

func (r *LeaderboardRanker) Build(today time.Time) ([]models.UserAggregate, error) {
	users, err := r.Users.All()
	if err != nil {
		return nil, err
	}

	goals := r.Calc.Goals
	monthlyGoal := goals.MonthlyFor(today.Year(), today.Month())
	weekStart, weekEnd := TrailingWeek(today)

	rows := make([]models.UserAggregate, 0, len(users))
	for _, u := range users {
		todaySteps, err := r.Calc.DaySum(u.ID, today)
		if err != nil {
			return nil, err
		}
		weekSteps, err := r.Calc.RangeSum(u.ID, weekStart, weekEnd)
		if err != nil {
			return nil, err
		}
		monthSteps, err := r.Calc.MonthSum(u.ID, today)
		if err != nil {
			return nil, err
		}

		rows = append(rows, models.UserAggregate{
			Username:       u.Username,
			TodaySteps:     todaySteps,
			DailyPercent:   PercentOfGoal(todaySteps, goals.Daily),
			WeekSteps:      weekSteps,
			WeeklyPercent:  PercentOfGoal(weekSteps, goals.Weekly()),
			MonthSteps:     monthSteps,
			MonthlyPercent: PercentOfGoal(monthSteps, monthlyGoal),
		})
	}

	// Stable: users with equal monthly sums keep their registration order.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].MonthSteps > rows[j].MonthSteps
	})

	if len(rows) == 0 {
		rows = append(rows, models.UserAggregate{Username: "No users"})
	}
	return rows, nil
}
