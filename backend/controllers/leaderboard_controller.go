package controllers

import (
	"time"

	"steptember/backend/config"
	"steptember/backend/repository"
	"steptember/backend/services"
	"steptember/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type LeaderboardController struct {
	Users repository.UserRepository
	Steps repository.StepRepository
	Cfg   *config.Config
}

func NewLeaderboardController(users repository.UserRepository, steps repository.StepRepository, cfg *config.Config) *LeaderboardController {
	return &LeaderboardController{Users: users, Steps: steps, Cfg: cfg}
}

// GetLeaderboard godoc
// @Summary Cross-user leaderboard
// @Description Every registered user's daily/weekly/monthly aggregates ranked
// by monthly step sum. Public, no session required.
// @Tags leaderboard
// @Router /leaderboard [get]
func (lc *LeaderboardController) GetLeaderboard(c *fiber.Ctx) error {
	today := lc.Cfg.Today()
	calc := services.NewCalculator(lc.Steps, services.Goals{Daily: lc.Cfg.DailyStepGoal})
	ranker := services.NewLeaderboardRanker(lc.Users, calc)

	rows, err := ranker.Build(today)
	if err != nil {
		return utils.InternalServerError(c, "could not build leaderboard")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"leaderboard": rows,
		"month":       today.Month().String(),
		"year":        today.Year(),
		"today":       today.Format(time.DateOnly),
	})
}
