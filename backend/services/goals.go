package services

import (
	"time"

	"steptember/backend/repository"
)

// Goals holds the daily step target; weekly and monthly targets derive from it.
type Goals struct {
	Daily int
}

func (g Goals) Weekly() int {
	return g.Daily * 7
}

// MonthlyFor uses the actual day count of the month (28-31), not a fixed 30.
func (g Goals) MonthlyFor(year int, month time.Month) int {
	return g.Daily * daysIn(year, month)
}

func daysIn(year int, month time.Month) int {
	// day 0 of the following month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// PercentOfGoal returns floor(min(sum/goal, 1) * 100). The result never
// exceeds 100, even when the sum does. Goals are positive by construction.
func PercentOfGoal(sum, goal int) int {
	if sum >= goal {
		return 100
	}
	return sum * 100 / goal
}

// TrailingWeek is the [today-6, today] window the leaderboard uses. The
// dashboard uses the Monday-anchored window from Policy.ResolveWeekStart
// instead; the two are deliberately distinct.
func TrailingWeek(today time.Time) (time.Time, time.Time) {
	return today.AddDate(0, 0, -6), today
}

// Calculator turns sparse step records into window sums. Dates arrive as
// midnight-UTC values and are formatted to ISO strings at the repository
// boundary.
type Calculator struct {
	Steps repository.StepRepository
	Goals Goals
}

func NewCalculator(steps repository.StepRepository, goals Goals) *Calculator {
	return &Calculator{Steps: steps, Goals: goals}
}

func (c *Calculator) DaySum(userID uint, day time.Time) (int, error) {
	return c.Steps.SumDay(userID, day.Format(time.DateOnly))
}

func (c *Calculator) RangeSum(userID uint, from, to time.Time) (int, error) {
	return c.Steps.SumRange(userID, from.Format(time.DateOnly), to.Format(time.DateOnly))
}

// MonthSum sums every record whose date falls in ref's calendar month,
// matched by the YYYY-MM prefix of the stored ISO dates.
func (c *Calculator) MonthSum(userID uint, ref time.Time) (int, error) {
	return c.Steps.SumMonth(userID, ref.Format("2006-01"))
}
