package jwtutil

import (
	"errors"
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

var (
	// ErrExpired reports a token whose expiry instant has been reached.
	ErrExpired = errors.New("token expired")
	// ErrInvalid covers bad signatures, malformed tokens and bad claims.
	ErrInvalid = errors.New("token invalid")
)

type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// Signer issues and validates HS256 identity tokens. The secret is fixed at
// process start and never rotated.
type Signer struct {
	Secret []byte
	Issuer string
	ExpMin int
}

func (s *Signer) Sign(userID int64) (string, error) {
	now := time.Now()
	exp := now.Add(time.Duration(s.ExpMin) * time.Minute)
	claims := Claims{
		UserID: strconv.FormatInt(userID, 10),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

// Parse verifies the token and returns the encoded user id. A token checked
// at or after its expiry instant fails with ErrExpired; every other failure
// is ErrInvalid.
func (s *Signer) Parse(tokenStr string) (int64, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) { return s.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrExpired
		}
		return 0, ErrInvalid
	}
	if !token.Valid {
		return 0, ErrInvalid
	}
	userID, err := strconv.ParseInt(claims.UserID, 10, 64)
	if err != nil {
		return 0, ErrInvalid
	}
	return userID, nil
}
