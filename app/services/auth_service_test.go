package services

import (
	"testing"

	"coursehub/app/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSignup_AssignsSequentialIDs(t *testing.T) {
	auth, _ := newAuthService(t)

	u1, err := auth.Signup("ann", "ann@x.com", "secret1", "", models.RoleStudent)
	require.NoError(t, err)
	require.Equal(t, int64(1), u1.UserID)

	u2, err := auth.Signup("bob", "bob@x.com", "secret2", "", models.RoleInstructor)
	require.NoError(t, err)
	require.Equal(t, int64(2), u2.UserID)
	require.Equal(t, models.RoleInstructor, u2.Role)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	auth, _ := newAuthService(t)

	_, err := auth.Signup("ann", "a@x.com", "secret", "", models.RoleStudent)
	require.NoError(t, err)

	_, err = auth.Signup("other", "a@x.com", "secret", "", models.RoleStudent)
	require.ErrorIs(t, err, ErrConflict)
}

func TestSignup_FreshSaltPerHash(t *testing.T) {
	auth, _ := newAuthService(t)

	u1, err := auth.Signup("ann", "ann@x.com", "same-password", "", models.RoleStudent)
	require.NoError(t, err)
	u2, err := auth.Signup("bob", "bob@x.com", "same-password", "", models.RoleStudent)
	require.NoError(t, err)

	// Same plaintext, different hashes, both verifiable.
	require.NotEqual(t, u1.PasswordHash, u2.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u1.PasswordHash), []byte("same-password")))
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u2.PasswordHash), []byte("same-password")))
}

func TestLogin_RoundTrip(t *testing.T) {
	auth, _ := newAuthService(t)

	u, err := auth.Signup("ann", "ann@x.com", "secret", "", models.RoleStudent)
	require.NoError(t, err)

	logged, token, err := auth.Login("ann@x.com", "secret")
	require.NoError(t, err)
	require.Equal(t, u.UserID, logged.UserID)
	require.NotEmpty(t, token)

	userID, err := newTestSigner().Parse(token)
	require.NoError(t, err)
	require.Equal(t, u.UserID, userID)
}

func TestLogin_WrongPassword(t *testing.T) {
	auth, _ := newAuthService(t)

	_, err := auth.Signup("ann", "ann@x.com", "secret", "", models.RoleStudent)
	require.NoError(t, err)

	_, _, err = auth.Login("ann@x.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	auth, _ := newAuthService(t)

	_, _, err := auth.Login("nobody@x.com", "secret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
