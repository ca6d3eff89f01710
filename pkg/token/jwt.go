package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type jwtClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type jwtSigner struct {
	secret []byte
	expiry time.Duration
}

// NewJWTSigner builds an HS256 signer with the given secret and token lifetime.
func NewJWTSigner(secret string, expiry time.Duration) Signer {
	return &jwtSigner{
		secret: []byte(secret),
		expiry: expiry,
	}
}

func (s *jwtSigner) Generate(claims Claims) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiry)

	jc := jwtClaims{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			Subject:   claims.Username,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jc).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, expiresAt, nil
}

func (s *jwtSigner) Parse(tokenString string) (*Claims, error) {
	claims := &jwtClaims{}

	tok, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !tok.Valid {
		return nil, fmt.Errorf("token is not valid")
	}

	return &Claims{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}
