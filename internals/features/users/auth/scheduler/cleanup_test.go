package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	database "swimmingfish_backend/internals/databases"
	authRepo "swimmingfish_backend/internals/features/users/auth/repository"
)

func newDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestCleanupPurgesExpiredRowsAndStopsOnCancel(t *testing.T) {
	db := newDB(t)
	require.NoError(t, authRepo.BlacklistToken(db, "stale-token", -time.Minute))
	require.NoError(t, authRepo.BlacklistToken(db, "live-token", time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		runBlacklistCleanup(ctx, db, 5*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool {
		listed, err := authRepo.IsTokenBlacklisted(db, "stale-token")
		return err == nil && !listed
	}, 2*time.Second, 10*time.Millisecond, "expired row should be purged")

	live, err := authRepo.IsTokenBlacklisted(db, "live-token")
	require.NoError(t, err)
	assert.True(t, live, "unexpired row must survive cleanup")

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("cleanup goroutine did not stop after cancel")
	}
}
