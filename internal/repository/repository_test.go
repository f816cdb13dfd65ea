package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bestconstruction/internal/db"
	"github.com/bestconstruction/internal/revalidate"
)

// setupTestDB opens an isolated in-memory database with all tables migrated.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")

	require.NoError(t, gdb.AutoMigrate(
		&db.Service{},
		&db.Project{},
		&db.BlogPost{},
		&db.Message{},
		&db.Page{},
	), "failed to migrate test database")

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return gdb
}

// closeStore force-closes the underlying connection so the next query fails.
func closeStore(t *testing.T, gdb *gorm.DB) {
	t.Helper()
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

func boolPtr(v bool) *bool {
	return &v
}

// recordingNotifier returns a notifier plus the flat list of every path
// it has invalidated so far.
func recordingNotifier() (*revalidate.Notifier, *[]string) {
	var paths []string
	notifier := &revalidate.Notifier{}
	notifier.Subscribe(func(p []string) {
		paths = append(paths, p...)
	})
	return notifier, &paths
}
