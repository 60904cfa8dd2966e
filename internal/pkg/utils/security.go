package utils

import (
	"time"

	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateSessionJWT wraps a redis session id into the bearer token a
// client holds. Expiry mirrors the session TTL so the token and the
// session die together.
func GenerateSessionJWT(sessionID, secret string, jwtExpiryTimeInHour int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": sessionID,
		"exp":        time.Now().Add(time.Duration(jwtExpiryTimeInHour) * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}
	return tokenString, nil
}

func ParseSessionJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, exceptions.WrapWithoutError(constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthSigningMethod)
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if sessionID, ok := claims["session_id"].(string); ok {
			return sessionID, nil
		}
	}
	return "", exceptions.ErrTokenInvalidOrExpired(nil)
}
