package controllers

import (
	"errors"
	"strings"
	"time"

	"steptember/backend/config"
	"steptember/backend/models"
	"steptember/backend/repository"
	"steptember/backend/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	Users repository.UserRepository
	Cfg   *config.Config
}

func NewAuthController(users repository.UserRepository, cfg *config.Config) *AuthController {
	return &AuthController{Users: users, Cfg: cfg}
}

// RegisterForm godoc
// @Summary Registration form data
// @Tags auth
// @Router /register [get]
func (ac *AuthController) RegisterForm(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"registration_code_required": ac.Cfg.RegistrationCode != "",
	})
}

// Register godoc
// @Summary Register a new user
// @Description Creates an account; rejects duplicate usernames and, when a
// registration code is configured, submissions without the right code.
// @Tags auth
// @Router /register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")
	regCode := strings.TrimSpace(c.FormValue("registration_code"))

	if username == "" || password == "" {
		return utils.BadRequest(c, "username and password are required")
	}

	if ac.Cfg.RegistrationCode != "" && regCode != ac.Cfg.RegistrationCode {
		return utils.Forbidden(c, "invalid registration code")
	}

	// Check if username already exists
	if _, err := ac.Users.FindByUsername(username); err == nil {
		return utils.BadRequest(c, "username already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.InternalServerError(c, "could not query database")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return utils.InternalServerError(c, "could not hash password")
	}

	user := models.User{Username: username, PasswordHash: string(hashedPassword)}
	if err := ac.Users.Create(&user); err != nil {
		// The unique constraint closes the gap between the check above and
		// the insert.
		return utils.BadRequest(c, "username already taken")
	}

	return c.Redirect("/login")
}

// Login godoc
// @Summary User login
// @Description Verifies credentials and sets the session cookie.
// @Tags auth
// @Router /login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")

	user, err := ac.Users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Unauthorized(c, "invalid login")
		}
		return utils.InternalServerError(c, "could not query database")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return utils.Unauthorized(c, "invalid login")
	}

	token, err := utils.GenerateSessionToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "could not generate token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     utils.SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(utils.SessionTTL),
		HTTPOnly: true,
	})

	return c.Redirect("/report")
}

func (ac *AuthController) LoginForm(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, fiber.Map{})
}

// Logout clears the session and sends the user back to the login page.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     utils.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.Redirect("/login")
}
