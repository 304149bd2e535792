package services_test

import (
	"testing"
	"time"

	"steptember/backend/models"
	"steptember/backend/services"

	"github.com/stretchr/testify/assert"
)

func TestLeaderboard_RanksByMonthlySum(t *testing.T) {
	users := &fakeUserRepo{users: []models.User{
		{Model: gormModel(1), Username: "alice"},
		{Model: gormModel(2), Username: "bob"},
		{Model: gormModel(3), Username: "carol"},
	}}

	steps := newFakeStepRepo()
	steps.set(1, "2025-09-10", 5000)
	steps.set(2, "2025-09-01", 4000)
	steps.set(2, "2025-09-16", 5000)
	steps.set(3, "2025-09-12", 3000)
	steps.set(3, "2025-09-17", 2000)
	// August records never count toward the current month
	steps.set(1, "2025-08-20", 99999)

	calc := services.NewCalculator(steps, services.Goals{Daily: 15000})
	ranker := services.NewLeaderboardRanker(users, calc)

	today := date(2025, time.September, 17)
	rows, err := ranker.Build(today)
	assert.NoError(t, err)
	assert.Len(t, rows, 3)

	assert.Equal(t, "bob", rows[0].Username)
	assert.Equal(t, 9000, rows[0].MonthSteps)

	// alice and carol tie at 5000; registration order breaks the tie
	assert.Equal(t, "alice", rows[1].Username)
	assert.Equal(t, "carol", rows[2].Username)

	for i := 0; i+1 < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i].MonthSteps, rows[i+1].MonthSteps)
	}

	// trailing week [Sep 11, Sep 17]
	assert.Equal(t, 5000, rows[0].WeekSteps) // bob's Sep 16 only
	assert.Equal(t, 5000, rows[2].WeekSteps) // carol's Sep 12 + Sep 17

	// daily is today only
	assert.Equal(t, 2000, rows[2].TodaySteps)
	assert.Equal(t, 13, rows[2].DailyPercent)

	// monthly goal uses September's true day count (30)
	assert.Equal(t, 2, rows[0].MonthlyPercent) // floor(9000/450000*100)
}

func TestLeaderboard_NoUsersPlaceholder(t *testing.T) {
	calc := services.NewCalculator(newFakeStepRepo(), services.Goals{Daily: 15000})
	ranker := services.NewLeaderboardRanker(&fakeUserRepo{}, calc)

	rows, err := ranker.Build(date(2025, time.September, 17))
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "No users", rows[0].Username)
	assert.Zero(t, rows[0].TodaySteps)
	assert.Zero(t, rows[0].WeekSteps)
	assert.Zero(t, rows[0].MonthSteps)
	assert.Zero(t, rows[0].DailyPercent)
	assert.Zero(t, rows[0].WeeklyPercent)
	assert.Zero(t, rows[0].MonthlyPercent)
}
