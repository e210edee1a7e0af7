package auth

import (
	"errors"
	"os"
	"time"

	"project-management-api/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtSecret   = []byte(getEnv("JWT_SECRET", "development-insecure-secret-change-me"))
	jwtIssuer   = getEnv("JWT_ISSUER", "project-management-api")
	jwtAudience = getEnv("JWT_AUDIENCE", "project-management-clients")
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Claims represents the JWT claims. Role travels inside the token so the
// policy check never needs a user lookup.
type Claims struct {
	UserID   uint        `json:"user_id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	Refresh  bool        `json:"refresh,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken generates an access token for the given user
func GenerateToken(userID uint, username string, role models.Role) (string, error) {
	return sign(userID, username, role, accessTokenTTL, false)
}

// GenerateRefreshToken generates a longer-lived token that can only be
// exchanged for a new access token, not used to call the API directly.
func GenerateRefreshToken(userID uint, username string, role models.Role) (string, error) {
	return sign(userID, username, role, refreshTokenTTL, true)
}

func sign(userID uint, username string, role models.Role, ttl time.Duration, refresh bool) (string, error) {
	claims := Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		Refresh:  refresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    jwtIssuer,
			Audience:  jwt.ClaimStrings{jwtAudience},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ValidateToken validates a JWT token and returns the claims
func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.Issuer != jwtIssuer {
		return nil, errors.New("invalid token issuer")
	}
	// Manually check audience for compatibility with jwt v5 types
	audValid := false
	for _, aud := range claims.Audience {
		if aud == jwtAudience {
			audValid = true
			break
		}
	}
	if !audValid {
		return nil, errors.New("invalid token audience")
	}
	return claims, nil
}

// ValidateRefreshToken validates a token and requires the refresh flag.
func ValidateRefreshToken(tokenString string) (*Claims, error) {
	claims, err := ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	if !claims.Refresh {
		return nil, errors.New("not a refresh token")
	}
	return claims, nil
}
