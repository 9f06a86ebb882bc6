package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sumia12/StockpileDS/config"
)

// Claims is the session value issued at login and carried on every
// authenticated request. Invalidated by expiry; no server-side state.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	secret := config.AppConfig.Server.JWTSecret
	if secret == "" {
		secret = "default-secret-key"
	}
	return []byte(secret)
}

func GenerateToken(userID uint, username, role string) (string, error) {
	expHours := config.AppConfig.Server.JWTExpirationHours
	if expHours <= 0 {
		expHours = 24
	}
	claims := Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

func ValidateToken(signedToken string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(signedToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret(), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
