package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/riderlink/riderlink/internal/pkg/models"
)

// SessionClaims is the identity carried by a session token.
type SessionClaims struct {
	UserID int64
	Role   models.Role
}

// GenerateToken mints an HS256 session token for the given user.
func GenerateToken(userID int64, role models.Role, cfg models.JWTConfig) (string, int64, error) {
	expiresAt := time.Now().Add(time.Duration(cfg.Expiration) * time.Minute).Unix()

	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"exp":     expiresAt,
		"iss":     cfg.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken verifies a session token and extracts its claims.
func ValidateToken(tokenString, secret string) (*SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	rawID, ok := claims["user_id"]
	if !ok {
		return nil, fmt.Errorf("missing user_id claim")
	}
	userID, ok := rawID.(float64)
	if !ok {
		return nil, fmt.Errorf("malformed user_id claim")
	}

	role, ok := claims["role"].(string)
	if !ok {
		return nil, fmt.Errorf("missing role claim")
	}

	return &SessionClaims{UserID: int64(userID), Role: models.Role(role)}, nil
}
