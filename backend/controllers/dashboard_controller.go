package controllers

import (
	"errors"
	"time"

	"steptember/backend/config"
	"steptember/backend/middleware"
	"steptember/backend/repository"
	"steptember/backend/services"
	"steptember/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	Users repository.UserRepository
	Steps repository.StepRepository
	Cfg   *config.Config
}

func NewDashboardController(users repository.UserRepository, steps repository.StepRepository, cfg *config.Config) *DashboardController {
	return &DashboardController{Users: users, Steps: steps, Cfg: cfg}
}

// GetDashboard godoc
// @Summary Per-user dashboard
// @Description Today's, the selected week's and the month's totals and goal
// percentages, plus the day-by-day trend for the selected week. The optional
// week_start query parameter navigates between weeks of the reporting month.
// @Tags dashboard
// @Router /dashboard [get]
func (dc *DashboardController) GetDashboard(c *fiber.Ctx) error {
	userID := middleware.SessionUserID(c)

	user, err := dc.Users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Redirect("/login")
		}
		return utils.InternalServerError(c, "could not query database")
	}

	var requestedWeekStart *time.Time
	if raw := c.Query("week_start"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return utils.BadRequest(c, "invalid week_start date")
		}
		requestedWeekStart = &parsed
	}

	today := dc.Cfg.Today()
	policy := services.ReportingPeriod(today.Year(), dc.Cfg.ReportMonth)
	calc := services.NewCalculator(dc.Steps, services.Goals{Daily: dc.Cfg.DailyStepGoal})
	assembler := services.NewDashboardAssembler(calc, policy)

	dashboard, err := assembler.Build(user.ID, user.Username, today, requestedWeekStart)
	if err != nil {
		return utils.InternalServerError(c, "could not build dashboard")
	}

	return utils.Success(c, fiber.StatusOK, dashboard)
}
