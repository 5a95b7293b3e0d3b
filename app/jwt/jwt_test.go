package jwtutil

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func newSigner() *Signer {
	return &Signer{Secret: []byte("test-secret"), Issuer: "coursehub", ExpMin: 60}
}

func TestSignParse_RoundTrip(t *testing.T) {
	t.Parallel()

	s := newSigner()
	token, err := s.Sign(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := s.Parse(token)
	require.NoError(t, err)
	require.Equal(t, int64(42), userID)
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	s := &Signer{Secret: []byte("test-secret"), Issuer: "coursehub", ExpMin: -1}
	token, err := s.Sign(7)
	require.NoError(t, err)

	_, err = s.Parse(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestParse_AtExpiryInstant(t *testing.T) {
	t.Parallel()

	// A token whose expiry equals the validation instant is already expired.
	s := newSigner()
	claims := Claims{
		UserID: "9",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	require.NoError(t, err)

	_, err = s.Parse(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	s := newSigner()
	token, err := s.Sign(1)
	require.NoError(t, err)

	other := &Signer{Secret: []byte("other-secret"), ExpMin: 60}
	_, err = other.Parse(token)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	s := newSigner()
	_, err := s.Parse("not.a.jwt")
	require.ErrorIs(t, err, ErrInvalid)
}

func TestParse_NonNumericSubject(t *testing.T) {
	t.Parallel()

	s := newSigner()
	claims := Claims{
		UserID: "abc",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	require.NoError(t, err)

	_, err = s.Parse(token)
	require.ErrorIs(t, err, ErrInvalid)
}
