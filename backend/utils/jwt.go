package utils

import (
	"errors"
	"time"

	"steptember/backend/config"

	"github.com/golang-jwt/jwt/v4"
)

// SessionCookie is the cookie the signed session token travels in.
const SessionCookie = "session"

// SessionTTL bounds how long a login stays valid.
const SessionTTL = 72 * time.Hour

func GenerateSessionToken(userID uint, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(SessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ParseSessionToken verifies the token signature and returns the user id it
// carries.
func ParseSessionToken(tokenString string, cfg *config.Config) (uint, error) {
	if tokenString == "" {
		return 0, errors.New("missing session token")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, errors.New("invalid token claims")
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, errors.New("invalid user ID in token")
	}

	return uint(userIDFloat), nil
}
