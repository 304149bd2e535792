package services

import (
	"time"

	"steptember/backend/models"
)

// DashboardAssembler builds the per-user dashboard view: today's, the
// resolved week's and the month's sums and goal percentages, plus a dense
// day-by-day trend over the week window.
type DashboardAssembler struct {
	Calc   *Calculator
	Policy Policy
}

func NewDashboardAssembler(calc *Calculator, policy Policy) *DashboardAssembler {
	return &DashboardAssembler{Calc: calc, Policy: policy}
}

func (a *DashboardAssembler) Build(userID uint, username string, today time.Time, requestedWeekStart *time.Time) (*models.Dashboard, error) {
	weekStart, weekEnd := a.Policy.ResolveWeekStart(requestedWeekStart, today)

	todaySteps, err := a.Calc.DaySum(userID, today)
	if err != nil {
		return nil, err
	}

	weekSteps, err := a.Calc.RangeSum(userID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	monthSteps, err := a.Calc.RangeSum(userID, a.Policy.Start, a.Policy.End)
	if err != nil {
		return nil, err
	}

	// One entry per calendar day of the window, ascending, zero days included.
	var trend []models.DayPoint
	for day := weekStart; !day.After(weekEnd); day = day.AddDate(0, 0, 1) {
		steps, err := a.Calc.DaySum(userID, day)
		if err != nil {
			return nil, err
		}
		trend = append(trend, models.DayPoint{Label: day.Format("Mon 02"), Steps: steps})
	}

	goals := a.Calc.Goals
	return &models.Dashboard{
		Username:       username,
		Today:          today.Format(time.DateOnly),
		WeekStart:      weekStart.Format(time.DateOnly),
		WeekEnd:        weekEnd.Format(time.DateOnly),
		PeriodStart:    a.Policy.Start.Format(time.DateOnly),
		PeriodEnd:      a.Policy.End.Format(time.DateOnly),
		TodaySteps:     todaySteps,
		DailyPercent:   PercentOfGoal(todaySteps, goals.Daily),
		WeekSteps:      weekSteps,
		WeeklyPercent:  PercentOfGoal(weekSteps, goals.Weekly()),
		MonthSteps:     monthSteps,
		MonthlyPercent: PercentOfGoal(monthSteps, goals.MonthlyFor(a.Policy.Start.Year(), a.Policy.Start.Month())),
		Trend:          trend,
	}, nil
}
