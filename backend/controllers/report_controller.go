package controllers

import (
	"strconv"
	"time"

	"steptember/backend/config"
	"steptember/backend/middleware"
	"steptember/backend/repository"
	"steptember/backend/services"
	"steptember/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ReportController struct {
	Steps repository.StepRepository
	Cfg   *config.Config
}

func NewReportController(steps repository.StepRepository, cfg *config.Config) *ReportController {
	return &ReportController{Steps: steps, Cfg: cfg}
}

func (rc *ReportController) policy(today time.Time) services.Policy {
	return services.ReportingPeriod(today.Year(), rc.Cfg.ReportMonth)
}

// ReportForm godoc
// @Summary Report form data
// @Tags report
// @Router /report [get]
func (rc *ReportController) ReportForm(c *fiber.Ctx) error {
	today := rc.Cfg.Today()
	policy := rc.policy(today)
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"today":        today.Format(time.DateOnly),
		"period_start": policy.Start.Format(time.DateOnly),
		"period_end":   policy.End.Format(time.DateOnly),
	})
}

// SubmitReport godoc
// @Summary Submit a day's step count
// @Description Validates the date against the reporting window and upserts
// the (user, date) record. Validation failures come back as plain-text 400s.
// @Tags report
// @Router /report [post]
func (rc *ReportController) SubmitReport(c *fiber.Ctx) error {
	userID := middleware.SessionUserID(c)
	today := rc.Cfg.Today()
	policy := rc.policy(today)

	steps, err := strconv.Atoi(c.FormValue("steps"))
	if err != nil || steps < 0 {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid number of steps")
	}

	dateStr := c.FormValue("date")
	if dateStr == "" {
		dateStr = today.Format(time.DateOnly)
	}
	reportDate, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid date")
	}

	if err := policy.ValidateReportDate(reportDate, today); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	if err := rc.Steps.Upsert(userID, reportDate.Format(time.DateOnly), steps); err != nil {
		return utils.InternalServerError(c, "could not save steps")
	}

	return c.Redirect("/dashboard")
}
