package utils

import (
	"errors"
	"strings"

	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
)

// ParseSessionJWT verifies an HS256 session token and returns its session_id
// claim.
func ParseSessionJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, exceptions.ErrTokenSigningMethod(nil)
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if sessionID, ok := claims[constvars.JWTClaimSessionID].(string); ok && sessionID != "" {
			return sessionID, nil
		}
	}

	return "", exceptions.ErrTokenInvalidOrExpired(errors.New("session_id claim missing"))
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func BearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, constvars.AuthorizationBearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, constvars.AuthorizationBearerPrefix))
	return token, token != ""
}
