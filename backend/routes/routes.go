package routes

import (
	"steptember/backend/config"
	"steptember/backend/controllers"
	"steptember/backend/middleware"
	"steptember/backend/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	users := repository.NewUserRepository(db)
	steps := repository.NewStepRepository(db)

	authMiddleware := middleware.AuthMiddleware(cfg)

	// Auth routes
	authController := controllers.NewAuthController(users, cfg)
	app.Get("/register", authController.RegisterForm)
	app.Post("/register", authController.Register)
	app.Get("/login", authController.LoginForm)
	app.Post("/login", authController.Login)
	app.Get("/logout", authController.Logout)

	// Report routes
	reportController := controllers.NewReportController(steps, cfg)
	app.Get("/report", authMiddleware, reportController.ReportForm)
	app.Post("/report", authMiddleware, reportController.SubmitReport)

	// Dashboard routes
	dashboardController := controllers.NewDashboardController(users, steps, cfg)
	app.Get("/dashboard", authMiddleware, dashboardController.GetDashboard)

	// Leaderboard is public
	leaderboardController := controllers.NewLeaderboardController(users, steps, cfg)
	app.Get("/leaderboard", leaderboardController.GetLeaderboard)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/leaderboard")
	})
}
