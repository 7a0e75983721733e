package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenUseAccess marks a token accepted by the /v1/ai endpoints
const TokenUseAccess = "access"

// Claims carries the caller identity in an access token
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	Use    string    `json:"use"`
	jwt.RegisteredClaims
}

func newAccessClaims(userID uuid.UUID, email, role, issuer string, now time.Time, ttl time.Duration) *Claims {
	return &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		Use:    TokenUseAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   userID.String(),
		},
	}
}
