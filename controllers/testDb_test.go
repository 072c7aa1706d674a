package controllers

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/seoulglow/seoulglow-api/initializers"
	"github.com/seoulglow/seoulglow-api/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB swaps the shared connection for an in-memory database so
// handlers run against real transactions and unique indexes.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.WebhookEvent{},
	))

	previous := initializers.DB
	initializers.DB = db
	t.Cleanup(func() { initializers.DB = previous })
	return db
}

// newTestCache stands in for Redis so cache invalidation is observable.
func newTestCache(t *testing.T) *miniredis.Miniredis {
	t.Helper()

	server := miniredis.RunT(t)
	previous := initializers.Cache
	initializers.Cache = redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() {
		initializers.Cache.Close()
		initializers.Cache = previous
	})
	return server
}
