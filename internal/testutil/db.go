package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Leganyst/session-scheduler/internal/config"
	"github.com/Leganyst/session-scheduler/internal/db"
	"github.com/Leganyst/session-scheduler/internal/model"
)

// NewDB открывает чистую SQLite в памяти с применёнными миграциями.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	gdb, err := db.NewGormDB(&config.DBConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	gdb.Logger = gormlogger.Discard

	require.NoError(t, model.AutoMigrate(gdb))

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return gdb
}
