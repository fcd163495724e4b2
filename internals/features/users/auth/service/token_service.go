package service

import (
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"bytequiz_backend/internals/configs"
	model "bytequiz_backend/internals/features/users/auth/model"
)

const accessTTLDefault = 24 * time.Hour

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

func nowUTC() time.Time { return time.Now().UTC() }

func buildAccessClaims(user *model.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"email":   user.Email,
		"role":    user.Role,
		"user_id": user.ID,
		"iat":     now.Unix(),
		"exp":     now.Add(accessTTLDefault).Unix(),
	}
}

// CreateToken menerbitkan access token HS256 dengan klaim
// {email, role, user_id}, kedaluwarsa 24 jam. Tanpa iss/aud.
func CreateToken(user *model.UserModel) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}
	claims := buildAccessClaims(user, nowUTC())
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken memverifikasi signature + expiry dan mengembalikan klaim.
func ParseToken(tokenString string) (jwt.MapClaims, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return nil, err
	}
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	}); err != nil {
		return nil, err
	}
	return claims, nil
}
