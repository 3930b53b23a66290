package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"factshub/internal/db"
	"factshub/internal/models"
	"factshub/internal/utils"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testDBCounter int64

// setupTestDB points the package database at a fresh in-memory sqlite
// instance. Tests share the same global the services use, so they must not
// run in parallel.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:servicetest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	g, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := g.DB()
	require.NoError(t, err)
	// A single connection keeps the in-memory database alive for the test.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(g))
	db.DB = g

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
}

func createCategory(t *testing.T, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name}
	require.NoError(t, db.DB.Create(&category).Error)
	return category
}

func createUser(t *testing.T, username string, role models.Role) (models.User, Identity) {
	t.Helper()
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	user := models.User{
		Username: username,
		Email:    username + "@factshub.pl",
		Password: hash,
		Role:     role,
	}
	require.NoError(t, db.DB.Create(&user).Error)
	return user, Identity{UserID: user.ID, Username: user.Username, Role: user.Role}
}

// createPublishedFact inserts a published fact directly, with an explicit
// publication time so list ordering is deterministic.
func createPublishedFact(t *testing.T, title string, categoryID uint, publishedAt time.Time) models.Fact {
	t.Helper()
	fact := models.Fact{
		Title:       title,
		Content:     "content of " + title,
		CategoryID:  &categoryID,
		Status:      models.FactStatusPublished,
		PublishedAt: &publishedAt,
	}
	require.NoError(t, db.DB.Create(&fact).Error)
	return fact
}
