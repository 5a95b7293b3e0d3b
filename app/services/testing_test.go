package services

import (
	"path/filepath"
	"testing"

	"coursehub/app/db"
	jwtutil "coursehub/app/jwt"
	"coursehub/app/models"
	"coursehub/app/repo"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Connect(db.Config{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&models.User{}, &models.Counter{}, &models.Course{},
		&models.Enrollment{}, &models.Assessment{}, &models.Submission{},
		&models.Payment{},
	))
	return gdb
}

func newTestSigner() *jwtutil.Signer {
	return &jwtutil.Signer{Secret: []byte("test-secret"), Issuer: "coursehub", ExpMin: 60}
}

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	gdb := newTestDB(t)
	return NewAuthService(repo.NewUserRepository(gdb), repo.NewCounterRepository(gdb), newTestSigner()), gdb
}
