// Package testutil provides an in-memory SQLite schema for tests.
package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLite has no uuid type or gen_random_uuid(), so the tables are created by hand.
var schema = []string{
	`CREATE TABLE matches (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		owner_id TEXT NOT NULL,
		title TEXT NOT NULL,
		sport TEXT,
		location TEXT,
		scheduled_at DATETIME NOT NULL,
		max_players INTEGER NOT NULL CHECK (max_players >= 2),
		current_players INTEGER NOT NULL DEFAULT 0 CHECK (current_players >= 0 AND current_players <= max_players),
		status TEXT NOT NULL,
		details TEXT,
		published_at DATETIME,
		started_at DATETIME,
		finished_at DATETIME,
		canceled_at DATETIME
	)`,
	`CREATE TABLE participations (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		match_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		team_id TEXT,
		status TEXT NOT NULL,
		joined_at DATETIME NOT NULL,
		UNIQUE(match_id, user_id)
	)`,
	`CREATE TABLE invitations (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		match_id TEXT NOT NULL,
		inviter_id TEXT NOT NULL,
		invitee_id TEXT NOT NULL,
		team_id TEXT,
		status TEXT NOT NULL,
		expires_at DATETIME NOT NULL,
		responded_at DATETIME
	)`,
	`CREATE UNIQUE INDEX uq_invitations_pending ON invitations(match_id, invitee_id) WHERE status = 'pending'`,
}

// NewSQLiteDB opens a fresh in-memory database with the match schema.
// The pool is pinned to one connection so every query sees the same database,
// which also serializes concurrent transactions.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err, "Failed to connect to test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, stmt := range schema {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}
