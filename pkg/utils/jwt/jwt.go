package jwt

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	RoleUser  = "User"
	RoleAdmin = "Admin"

	sessionTTL    = 24 * time.Hour
	persistentTTL = 30 * 24 * time.Hour
)

// Claims carries the four session claims trusted downstream for
// authorization. Role is exactly "User" or "Admin".
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

var jwtSecret []byte

// Init sets the signing secret from config. Must run at startup before
// any token is issued or validated.
func Init(secret string) {
	jwtSecret = []byte(secret)
}

// signingSecret falls back to the environment so tokens keep working
// when Init was never called (tests, one-off tools).
func signingSecret() []byte {
	if len(jwtSecret) == 0 {
		jwtSecret = []byte(secretFromEnv())
	}
	return jwtSecret
}

func secretFromEnv() string {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return s
	}
	return "estatedesk-dev-secret"
}

// GenerateToken issues a signed session token. Persistent sessions
// ("remember me") last 30 days, others 24 hours.
func GenerateToken(userID uint, email, name, role string, persistent bool) (string, error) {
	ttl := sessionTTL
	if persistent {
		ttl = persistentTTL
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		Email:  email,
		Name:   name,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})

	return token.SignedString(signingSecret())
}

func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return signingSecret(), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
