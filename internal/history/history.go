// Package history persists the shell's command-line history in a sqlite
// database, one row per submitted line, tagged by session.
package history

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type Manager struct {
	db *gorm.DB
}

type Entry struct {
	ID        uint      `gorm:"primarykey"`
	CreatedAt time.Time `gorm:"index;index:idx_session_created,priority:2"`

	Line      string `gorm:"index"`
	SessionID string `gorm:"index:idx_session_created,priority:1"`
}

// Open opens (creating if needed) the history database at dbFilePath and
// migrates the schema.
func Open(dbFilePath string) (*Manager, error) {
	// PRAGMA settings tuned for a small single-writer file database:
	// - busy_timeout(5000): wait out transient locks from other sessions
	// - synchronous(1): NORMAL mode, durability/performance balance
	// - temp_store(2): keep temp files in memory
	connectionString := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=synchronous(1)&_pragma=temp_store(2)", dbFilePath)

	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// SQLite serializes writes anyway, so multiple connections add overhead.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Manager{db: db}, nil
}

// Close closes the database connection.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Record stores one submitted line.
func (m *Manager) Record(line string, sessionID string) (*Entry, error) {
	entry := Entry{
		Line:      line,
		SessionID: sessionID,
	}

	result := m.db.Create(&entry)
	if result.Error != nil {
		return nil, result.Error
	}

	return &entry, nil
}

// Recent returns up to limit of the newest entries, ordered oldest first so
// they read top to bottom like a transcript.
func (m *Manager) Recent(limit int) ([]Entry, error) {
	var entries []Entry
	result := m.db.Order("created_at desc, id desc").Limit(limit).Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	lo.Reverse(entries)
	return entries, nil
}

// RecentByPrefix returns up to limit of the newest entries whose line starts
// with prefix, newest first.
func (m *Manager) RecentByPrefix(prefix string, limit int) ([]Entry, error) {
	var entries []Entry
	result := m.db.Where("line LIKE ?", prefix+"%").
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}

// All returns every entry, newest first.
func (m *Manager) All() ([]Entry, error) {
	var entries []Entry
	result := m.db.Order("created_at desc, id desc").Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}
	return entries, nil
}

// Reset deletes all history entries.
func (m *Manager) Reset() error {
	result := m.db.Exec("DELETE FROM entries")
	return result.Error
}
