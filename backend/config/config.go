package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	JWTSecret        string
	ServerPort       string
	Timezone         string
	DailyStepGoal    int
	ReportMonth      time.Month
	RegistrationCode string // empty disables the registration gate

	location *time.Location
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	cfg := &Config{
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", "postgres"),
		DBName:           getEnv("DB_NAME", "steptember"),
		JWTSecret:        getEnv("JWT_SECRET", "secret"),
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		Timezone:         getEnv("TIMEZONE", "Australia/Sydney"),
		DailyStepGoal:    getEnvInt("DAILY_STEP_GOAL", 15000),
		ReportMonth:      time.Month(getEnvInt("REPORT_MONTH", int(time.September))),
		RegistrationCode: getEnv("REGISTRATION_CODE", ""),
	}

	cfg.location, err = time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Location returns the reference time zone that decides what "today" means.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		loc, err := time.LoadLocation(c.Timezone)
		if err != nil {
			loc = time.Local
		}
		c.location = loc
	}
	return c.location
}

// Today returns the current date in the reference time zone, normalized to
// midnight UTC so it compares cleanly with parsed ISO dates.
func (c *Config) Today() time.Time {
	now := time.Now().In(c.Location())
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("Invalid value for %s, using default %d", key, defaultValue)
	}
	return defaultValue
}
