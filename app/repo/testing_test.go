package repo

import (
	"path/filepath"
	"testing"

	"coursehub/app/db"
	"coursehub/app/models"

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
