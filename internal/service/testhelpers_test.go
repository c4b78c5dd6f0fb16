package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shivamraghav1010/Player/internal/model"
)

// setupDB opens a throwaway SQLite database with the full schema. A single
// connection keeps SQLite's writer model out of the way in concurrent tests.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(
		sqlite.Open(filepath.Join(t.TempDir(), "test.db")),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Follow{},
		&model.Notification{},
		&model.Video{},
		&model.Comment{},
		&model.VideoLike{},
		&model.Sport{},
	))

	return db
}

func newUser(t *testing.T, db *gorm.DB, username, role string) *model.User {
	t.Helper()

	user := &model.User{
		Username:     username,
		Email:        username + "@player.dev",
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func ctx() context.Context {
	return context.Background()
}
